package client

import (
	"encoding/json"
	"strconv"

	"github.com/josharian/intern"
)

// SharedString is a string that interns itself on decode: equal values
// decoded anywhere in a process share one backing allocation. Long
// sessions decode the same usernames, titles and language codes many
// thousands of times; interning keeps one copy of each. Selected by the
// generator's "shared" text representation.
type SharedString string

// String returns the plain string value.
func (s SharedString) String() string {
	return string(s)
}

// UnmarshalJSON decodes and interns the value.
func (s *SharedString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = SharedString(intern.String(v))
	return nil
}

// Int64String is a 64-bit integer that transits as a quoted decimal
// string. Values of this width exceed the integer precision of many
// JSON consumers, so the wire format quotes them.
type Int64String int64

// MarshalJSON renders the value as a quoted decimal.
func (i Int64String) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, strconv.FormatInt(int64(i), 10)), nil
}

// UnmarshalJSON accepts both quoted and bare decimals.
func (i *Int64String) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*i = Int64String(v)
	return nil
}
