package push

import (
	"io"
	"log/slog"
	"net"
	"os"
	"syscall"
	"testing"
	"time"

	"walletpass/config"
	"walletpass/internal/domain/service"
	"walletpass/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

var _ net.Error = timeoutError{}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIsTransientTransport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "network timeout", err: timeoutError{}, want: true},
		{name: "wrapped timeout", err: errors.Wrap(timeoutError{}, "push"), want: true},
		{name: "connection reset", err: syscall.ECONNRESET, want: true},
		{name: "broken pipe", err: syscall.EPIPE, want: true},
		{name: "short read", err: io.ErrUnexpectedEOF, want: true},
		{name: "aborted read", err: io.EOF, want: true},
		{name: "gateway rejection", err: &service.GatewayRejectionError{StatusCode: 410, Reason: "Unregistered"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTransientTransport(tt.err))
		})
	}
}

func TestAPNsGateway_Ready_MissingCertificate(t *testing.T) {
	gateway := NewAPNsGateway(&config.Config{
		APNs: &config.APNsConfig{
			Environment:    config.APNsEnvironmentSandbox,
			RequestTimeout: time.Second,
		},
	}, testLogger())

	err := gateway.Ready(t.Context())
	require.Error(t, err)
	assert.True(t, service.IsCertificateError(err))
}

func TestAPNsGateway_Ready_UnparsableCertificate(t *testing.T) {
	certFile, err := os.CreateTemp(t.TempDir(), "cert-*.pem")
	require.NoError(t, err)
	_, err = certFile.WriteString("not a certificate")
	require.NoError(t, err)
	require.NoError(t, certFile.Close())

	gateway := NewAPNsGateway(&config.Config{
		APNs: &config.APNsConfig{
			Environment:     config.APNsEnvironmentSandbox,
			CertificatePath: certFile.Name(),
			RequestTimeout:  time.Second,
		},
	}, testLogger())

	err = gateway.Ready(t.Context())
	require.Error(t, err)
	assert.True(t, service.IsCertificateError(err))

	// The failure is cached; a second probe reports the same error.
	assert.Error(t, gateway.Ready(t.Context()))
}
