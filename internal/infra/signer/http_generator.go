// Package signer implements the client for the external pass signing service.
package signer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/service"

	"github.com/pkg/errors"
)

// signRequest is the payload handed to the signing service. It carries the
// pass state the renderer needs; certificate handling stays on the far side.
type signRequest struct {
	SerialNumber        string         `json:"serial_number"`
	PassTypeIdentifier  string         `json:"pass_type_identifier"`
	AuthenticationToken string         `json:"authentication_token"`
	Klass               string         `json:"klass"`
	Data                map[string]any `json:"data"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// httpGenerator implements service.PassGenerator by delegating rendering and
// signing to an external HTTP service.
type httpGenerator struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPGenerator creates a new signing-service client
func NewHTTPGenerator(endpoint string, timeout time.Duration, logger *slog.Logger) service.PassGenerator {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &httpGenerator{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// GenerateAndSign posts the pass state to the signing service and returns the
// signed .pkpass bundle bytes.
func (g *httpGenerator) GenerateAndSign(ctx context.Context, pass *entity.Pass) ([]byte, error) {
	body, err := json.Marshal(signRequest{
		SerialNumber:        pass.SerialNumber,
		PassTypeIdentifier:  pass.PassTypeIdentifier,
		AuthenticationToken: pass.AuthenticationToken,
		Klass:               pass.Klass,
		Data:                pass.Data,
		UpdatedAt:           pass.UpdatedAt,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	g.logger.Debug("requesting signed pass bundle",
		slog.String("endpoint", g.endpoint),
		slog.String("serial_number", pass.SerialNumber),
	)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "signing service request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("signing service returned status %d", resp.StatusCode)
	}

	bundle, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read signed bundle")
	}

	return bundle, nil
}
