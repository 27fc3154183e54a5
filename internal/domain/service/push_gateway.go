package service

import (
	"context"
	"fmt"

	"walletpass/internal/errors"
)

// PushNotification is one background (content-available) push addressed to a
// single device token. It carries no visible alert; it only tells the wallet
// app to refetch the pass.
type PushNotification struct {
	PushToken string // APNs device token to route the notification to.
	Topic     string // Push topic, equal to the pass type identifier.
}

// PushGateway sends background notifications through the platform push gateway.
type PushGateway interface {
	// Ready validates the channel credential material (client certificate and
	// key). A *CertificateError from Ready is fatal for a whole dispatch: no
	// channel can be opened, so it is reported once, not per device.
	Ready(ctx context.Context) error

	// Send delivers one notification. Errors are classified: a
	// *GatewayRejectionError means the gateway explicitly refused the token or
	// payload and the send must not be retried; an error matching IsTransient
	// is a transport fault worth retrying; anything else is terminal.
	Send(ctx context.Context, notification *PushNotification) error
}

// CertificateError reports missing or unparsable push credential material.
type CertificateError struct {
	Err error
}

func (e *CertificateError) Error() string {
	return fmt.Sprintf("push credential material unusable: %v", e.Err)
}

func (e *CertificateError) Unwrap() error {
	return e.Err
}

// IsCertificateError reports whether err is a push credential failure.
func IsCertificateError(err error) bool {
	var certErr *CertificateError

	return errors.As(err, &certErr)
}

// GatewayRejectionError reports an explicit rejection from the push gateway,
// e.g. an invalid or expired device token.
type GatewayRejectionError struct {
	StatusCode int    // HTTP status returned by the gateway.
	Reason     string // Gateway reason string, e.g. "BadDeviceToken".
}

func (e *GatewayRejectionError) Error() string {
	return fmt.Sprintf("push gateway rejected notification: status=%d reason=%s", e.StatusCode, e.Reason)
}

// IsGatewayRejection reports whether err is an explicit gateway rejection.
func IsGatewayRejection(err error) bool {
	var rejection *GatewayRejectionError

	return errors.As(err, &rejection)
}

// TransientPushError marks a transport fault (timeout, connection reset,
// short read) that may succeed on retry.
type TransientPushError struct {
	Err error
}

func (e *TransientPushError) Error() string {
	return fmt.Sprintf("transient push error: %v", e.Err)
}

func (e *TransientPushError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is a retryable transport fault.
func IsTransient(err error) bool {
	var transient *TransientPushError

	return errors.As(err, &transient)
}
