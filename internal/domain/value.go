package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// RawValue is a loosely typed JSON scalar kept in its textual form.
// Strings are unquoted, numbers keep their literal, null and absence are empty.
type RawValue string

// UnmarshalJSON accepts strings, numbers, booleans and null.
func (v *RawValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = RawValue(s)
		return nil
	}
	*v = RawValue(data)
	return nil
}

// String returns the raw text
func (v RawValue) String() string {
	return string(v)
}

// Present reports whether the value carries any non-blank text
func (v RawValue) Present() bool {
	return strings.TrimSpace(string(v)) != ""
}

// Or returns the raw text, or fallback when the value is absent
func (v RawValue) Or(fallback string) string {
	if !v.Present() {
		return fallback
	}
	return string(v)
}
