package client

import (
	"errors"
	"fmt"
)

// CodeUnknown is returned by Code for errors the engine did not report.
const CodeUnknown int32 = -1

// APIError is a failure reported by the engine in response to a request.
type APIError struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// Error returns the engine's code and message.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

// DecodeError is a local failure to interpret a response payload. The
// payload is carried verbatim for diagnosis.
type DecodeError struct {
	// ExpectedType is the name of the type the response should have
	// decoded into.
	ExpectedType string

	// Payload is the raw response text.
	Payload string

	cause error
}

// Error describes the expected type and the underlying decode failure.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.ExpectedType, e.cause)
}

// Unwrap returns the underlying decode failure.
func (e *DecodeError) Unwrap() error {
	return e.cause
}

// Code returns the engine-reported code carried by err, or CodeUnknown
// when err is not an APIError. Callers branch on one integer without
// caring which failure kind they hold.
func Code(err error) int32 {
	var api *APIError
	if errors.As(err, &api) {
		return api.Code
	}
	return CodeUnknown
}
