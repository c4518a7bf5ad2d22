package domain

import "fmt"

// ValidationError reports caller input or sender configuration that makes a
// send impossible before any network or storage work happens.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// GatewayError means the carrier rejected the submission or could not be
// reached. Detail carries the raw provider payload verbatim; this service
// never interprets carrier error codes.
type GatewayError struct {
	Detail string
	Err    error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return "carrier gateway: " + e.Err.Error()
	}
	return "carrier gateway: " + e.Detail
}

func (e *GatewayError) Unwrap() error { return e.Err }

// StorageError means the persistence layer rejected a write or was
// unavailable.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }
