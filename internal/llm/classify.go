package llm

import (
	"errors"
	"fmt"
	"net/http"
)

// Fixed diagnostics returned by Classify. Exported so handler tests can
// assert exact messages.
const (
	MsgMissingCredential = "No API key is configured. Set GEMINI_API_KEY (or OPENAI_API_KEY for the openai provider) and restart the server."
	MsgAuthFailed        = "The model provider rejected the API key. Verify that the key is valid and active."
	MsgRateLimited       = "The model provider rate limit or quota was exceeded. Wait a moment and try again."
	MsgServerError       = "The model provider returned a server error. This is usually transient; try again shortly."
	MsgUnknown           = "Unknown error. Check the server logs for details."
)

// knownNetworkCodes is the closed set of transport failures that get a
// connectivity diagnostic.
var knownNetworkCodes = map[string]bool{
	"ENOTFOUND":    true,
	"ECONNREFUSED": true,
	"ECONNRESET":   true,
	"ETIMEDOUT":    true,
}

// Classify turns a raw invocation failure into a human-readable
// diagnostic. It is sent to clients as the debug field next to a generic
// error string, never as the only surfaced message. Precedence: missing
// credential, HTTP-like status, network code, textual message, unknown.
func Classify(err error, credentialPresent bool) string {
	if !credentialPresent {
		return MsgMissingCredential
	}

	var callErr *CallError
	if errors.As(err, &callErr) {
		switch {
		case callErr.Status == http.StatusUnauthorized:
			return MsgAuthFailed
		case callErr.Status == http.StatusTooManyRequests:
			return MsgRateLimited
		case callErr.Status >= http.StatusInternalServerError:
			return MsgServerError
		case callErr.Status != 0:
			return fmt.Sprintf("The model provider returned status %d. Check the server logs for details.", callErr.Status)
		}
		if knownNetworkCodes[callErr.Code] {
			return fmt.Sprintf("Could not reach the model provider (%s). Check network connectivity and DNS.", callErr.Code)
		}
		if callErr.Message != "" {
			return "Unexpected error: " + callErr.Message
		}
	}

	if err != nil && err.Error() != "" {
		return "Unexpected error: " + err.Error()
	}
	return MsgUnknown
}
