package robot

import (
	"errors"
	"net/http"
)

// Result codes, one per outcome class and identical for every message type
const (
	CodeOK         = http.StatusOK
	CodeValidation = http.StatusBadRequest
	CodeCrypto     = http.StatusInternalServerError
	CodeRemoteSend = http.StatusBadGateway
	SuccessMessage = "message sent"
)

/* Result is the outcome of one send attempt
 * Err is nil on success, otherwise a *ValidationError, *CryptoError or *RemoteSendError
 * RequestID matches the request_id field of the send log event
 */
type Result struct {
	Code      int
	Message   string
	Err       error
	RequestID string
}

// OK reports whether the message was accepted
func (r Result) OK() bool {
	return r.Err == nil && r.Code == CodeOK
}

// Outcome is a short label used for logs and metrics
func (r Result) Outcome() string {
	switch {
	case r.Err == nil:
		return "success"
	case errors.Is(r.Err, ErrValidation):
		return "validation_error"
	case errors.Is(r.Err, ErrCrypto):
		return "crypto_failure"
	case errors.Is(r.Err, ErrRemoteSend):
		return "remote_send_failure"
	default:
		return "unknown"
	}
}

func success() Result {
	return Result{Code: CodeOK, Message: SuccessMessage}
}

// failure maps a typed error onto its result code
func failure(err error) Result {
	code := CodeRemoteSend
	switch {
	case errors.Is(err, ErrValidation):
		code = CodeValidation
	case errors.Is(err, ErrCrypto):
		code = CodeCrypto
	}
	return Result{Code: code, Message: err.Error(), Err: err}
}
