package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// CallError is the classifiable failure a provider returns. Status is an
// HTTP-like code when the backend answered with one, Code a network
// errno-style name when the call never reached it, and Message whatever
// textual detail is available. Any field may be zero.
type CallError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *CallError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("model call failed with status %d: %s", e.Status, e.Message)
	case e.Code != "":
		return fmt.Sprintf("model call failed with %s: %s", e.Code, e.Message)
	case e.Message != "":
		return "model call failed: " + e.Message
	}
	return "model call failed"
}

func (e *CallError) Unwrap() error { return e.Err }

// networkCode maps a transport-level error chain to an errno-style name,
// or "" when the failure is not one of the recognized network cases.
func networkCode(err error) string {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "ENOTFOUND"
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return "ECONNREFUSED"
	}
	if errors.Is(err, syscall.ECONNRESET) {
		return "ECONNRESET"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "ETIMEDOUT"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "ETIMEDOUT"
	}
	return ""
}
