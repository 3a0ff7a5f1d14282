package usecase

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// NullableFloat distinguishes an absent JSON key from an explicit null in PATCH bodies.
// Set is true whenever the key was present; Value is nil for null.
type NullableFloat struct {
	Set   bool
	Value *float64
}

// UnmarshalJSON implements json.Unmarshaler; it only runs when the key is present.
func (n *NullableFloat) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		n.Value = nil

		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v

	return nil
}

// NullableString is the string counterpart of NullableFloat.
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		n.Value = nil

		return nil
	}

	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v

	return nil
}
