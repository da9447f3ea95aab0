package client

import (
	"encoding/json"
	"fmt"
)

// envelope is the part of every payload the router and decoders inspect.
type envelope struct {
	Type     string  `json:"@type"`
	Extra    *uint64 `json:"@extra"`
	ClientID *int32  `json:"@client_id"`
}

// ParseAPIError probes raw for the engine error shape. The shape is
// {code, message}: both keys must be present, no "@type" is required.
// Returns nil when raw is not error-shaped.
func ParseAPIError(raw []byte) *APIError {
	var probe struct {
		Code    *int32  `json:"code"`
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil
	}
	if probe.Code == nil || probe.Message == nil {
		return nil
	}
	return &APIError{Code: *probe.Code, Message: *probe.Message}
}

// DecodeResult decodes raw into dst, first checking that the payload's
// "@type" discriminator names the expected constructor. The check keeps
// lenient JSON decoding from accepting arbitrary payloads as a
// zero-valued result.
func DecodeResult(raw []byte, schemaName string, dst any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return err
	}
	if env.Type != schemaName {
		return fmt.Errorf("unexpected @type %q, want %q", env.Type, schemaName)
	}
	return json.Unmarshal(raw, dst)
}

// ResponseError converts a failed result decode into the caller-facing
// error. Responses are decoded as the success type first; only when
// that fails is the error shape probed, so a valid result that happens
// to also look like an error still succeeds. Anything that satisfies
// neither shape becomes a DecodeError carrying the payload verbatim.
func ResponseError(raw []byte, expectedType string, cause error) error {
	if api := ParseAPIError(raw); api != nil {
		return api
	}
	return &DecodeError{ExpectedType: expectedType, Payload: string(raw), cause: cause}
}

// UnitResult interprets a response to an operation that returns no
// value: an error-shaped payload fails with the APIError, anything else
// is success.
func UnitResult(raw []byte) error {
	if api := ParseAPIError(raw); api != nil {
		return api
	}
	return nil
}
