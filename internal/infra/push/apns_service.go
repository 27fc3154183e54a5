// Package push implements the APNs gateway for pass-update notifications.
package push

import (
	"context"
	"crypto/tls"
	"io"
	"log/slog"
	"net"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"walletpass/config"
	"walletpass/internal/domain/service"
	"walletpass/internal/errors"

	"github.com/sideshow/apns2"
	"github.com/sideshow/apns2/certificate"
	"github.com/sideshow/apns2/payload"
)

type apnsService struct {
	cfg    *config.APNsConfig
	logger *slog.Logger

	once    sync.Once
	client  *apns2.Client
	initErr error
}

// NewAPNsGateway creates the certificate-authenticated APNs gateway.
// The certificate is loaded lazily, once per process, and validated up front
// by Ready before each dispatch.
func NewAPNsGateway(cfg *config.Config, logger *slog.Logger) service.PushGateway {
	return &apnsService{
		cfg:    cfg.APNs,
		logger: logger,
	}
}

// Ready loads and validates the client certificate and key.
func (s *apnsService) Ready(ctx context.Context) error {
	_, err := s.ensureClient()

	return err
}

// Send delivers one background (content-available) notification.
func (s *apnsService) Send(ctx context.Context, notification *service.PushNotification) error {
	client, err := s.ensureClient()
	if err != nil {
		return err
	}

	n := &apns2.Notification{
		DeviceToken: notification.PushToken,
		Topic:       notification.Topic,
		PushType:    apns2.PushTypeBackground,
		Priority:    apns2.PriorityLow,
		Payload:     payload.NewPayload().ContentAvailable(),
	}

	res, err := client.PushWithContext(ctx, n)
	if err != nil {
		if isTransientTransport(err) {
			return &service.TransientPushError{Err: err}
		}

		return errors.Wrap(err, "apns push failed")
	}

	if res.Sent() {
		return nil
	}

	return &service.GatewayRejectionError{
		StatusCode: res.StatusCode,
		Reason:     res.Reason,
	}
}

// ensureClient loads the certificate and builds the HTTP/2 client exactly once.
func (s *apnsService) ensureClient() (*apns2.Client, error) {
	s.once.Do(func() {
		if s.cfg == nil || s.cfg.CertificatePath == "" {
			s.initErr = &service.CertificateError{Err: errors.New("apns certificate not configured")}

			return
		}

		cert, err := loadCertificate(s.cfg.CertificatePath, s.cfg.CertificatePassword)
		if err != nil {
			s.initErr = &service.CertificateError{Err: err}

			return
		}

		client := apns2.NewClient(cert)
		if s.cfg.Environment == config.APNsEnvironmentProduction {
			client = client.Production()
		} else {
			client = client.Development()
		}
		client.HTTPClient.Timeout = s.cfg.RequestTimeout

		s.logger.Info("APNs client initialized",
			slog.String("environment", s.cfg.Environment),
			slog.String("certificate_path", s.cfg.CertificatePath),
		)

		s.client = client
	})

	return s.client, s.initErr
}

func loadCertificate(path, password string) (tls.Certificate, error) {
	if strings.EqualFold(filepath.Ext(path), ".p12") {
		return certificate.FromP12File(path, password)
	}

	return certificate.FromPemFile(path, password)
}

// isTransientTransport classifies transport faults worth retrying: timeouts,
// connection resets, and short/aborted reads. Everything else is terminal.
func isTransientTransport(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}

	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return true
	}

	return false
}
