package resilience

import (
	"context"
	"errors"
	"net"
)

// ErrorKind classifies a failed external call for retry decisions.
type ErrorKind string

const (
	KindTimeout     ErrorKind = "timeout"
	KindNetwork     ErrorKind = "network"
	KindRateLimited ErrorKind = "rate_limited"
	KindServer      ErrorKind = "server"
	KindPermanent   ErrorKind = "permanent"
)

// ExternalError wraps a content-source failure with its retry class.
// Clients producing these decide the kind at the HTTP boundary.
type ExternalError struct {
	Kind ErrorKind
	Err  error
}

func NewExternalError(kind ErrorKind, err error) *ExternalError {
	return &ExternalError{Kind: kind, Err: err}
}

func (e *ExternalError) Error() string {
	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *ExternalError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether the error is worth another attempt.
// Timeouts, transient network failures, rate limiting and transient
// server errors retry; anything else surfaces immediately.
func IsRetryable(err error) bool {
	var ext *ExternalError
	if errors.As(err, &ext) {
		switch ext.Kind {
		case KindTimeout, KindNetwork, KindRateLimited, KindServer:
			return true
		default:
			return false
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return errors.Is(err, context.DeadlineExceeded)
}
