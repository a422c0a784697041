package robot

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is on the typed send errors
var (
	ErrValidation = errors.New("validation failed")
	ErrCrypto     = errors.New("signature acquisition failed")
	ErrRemoteSend = errors.New("remote send failed")
)

// ValidationError reports the first required field found empty
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// CryptoError reports that the signature could not be produced
type CryptoError struct {
	Err error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("%s: %v", ErrCrypto, e.Err)
}

func (e *CryptoError) Unwrap() error { return e.Err }

func (e *CryptoError) Is(target error) bool {
	return target == ErrCrypto
}

// RemoteSendError reports that the transport failed to deliver the message
type RemoteSendError struct {
	Err error
}

func (e *RemoteSendError) Error() string {
	return fmt.Sprintf("%s: %v", ErrRemoteSend, e.Err)
}

func (e *RemoteSendError) Unwrap() error { return e.Err }

func (e *RemoteSendError) Is(target error) bool {
	return target == ErrRemoteSend
}
