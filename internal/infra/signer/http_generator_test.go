package signer

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"walletpass/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHTTPGenerator_GenerateAndSign(t *testing.T) {
	bundle := []byte("PK\x03\x04 signed bundle")

	var received signRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/vnd.apple.pkpass")
		_, _ = w.Write(bundle)
	}))
	defer srv.Close()

	generator := NewHTTPGenerator(srv.URL, 5*time.Second, testLogger())

	pass := &entity.Pass{
		SerialNumber:        "b1c2d3e4",
		PassTypeIdentifier:  "pass.com.example.loyalty",
		AuthenticationToken: "deadbeef",
		Klass:               "loyalty",
		Data:                map[string]any{"points": float64(42)},
		UpdatedAt:           time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	got, err := generator.GenerateAndSign(t.Context(), pass)
	require.NoError(t, err)
	assert.Equal(t, bundle, got)

	assert.Equal(t, pass.SerialNumber, received.SerialNumber)
	assert.Equal(t, pass.PassTypeIdentifier, received.PassTypeIdentifier)
	assert.Equal(t, pass.AuthenticationToken, received.AuthenticationToken)
	assert.Equal(t, pass.Data, received.Data)
}

func TestHTTPGenerator_GenerateAndSign_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "signing key unavailable", http.StatusInternalServerError)
	}))
	defer srv.Close()

	generator := NewHTTPGenerator(srv.URL, 5*time.Second, testLogger())

	_, err := generator.GenerateAndSign(t.Context(), &entity.Pass{SerialNumber: "b1c2d3e4"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestHTTPGenerator_GenerateAndSign_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	generator := NewHTTPGenerator(srv.URL, time.Second, testLogger())

	_, err := generator.GenerateAndSign(t.Context(), &entity.Pass{SerialNumber: "b1c2d3e4"})
	require.Error(t, err)
}
