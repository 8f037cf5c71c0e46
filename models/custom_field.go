// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Filali Empire

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CustomValueKind discriminates the scalar type held by a [CustomValue].
type CustomValueKind int

const (
	// CustomString marks a free-text custom value.
	CustomString CustomValueKind = iota

	// CustomNumber marks a numeric custom value.
	CustomNumber
)

// CustomValue is one user-defined scalar attached to a client: either a
// string or a number. The wire form is the bare JSON scalar; the kind is
// recovered on decode.
type CustomValue struct {
	Kind CustomValueKind
	Str  string
	Num  float64
}

// StringValue builds a string-kinded custom value.
func StringValue(s string) CustomValue {
	return CustomValue{Kind: CustomString, Str: s}
}

// NumberValue builds a number-kinded custom value.
func NumberValue(n float64) CustomValue {
	return CustomValue{Kind: CustomNumber, Num: n}
}

// Equal reports structural equality: same kind and same scalar value.
func (v CustomValue) Equal(other CustomValue) bool {
	if v.Kind != other.Kind {
		return false
	}
	if v.Kind == CustomNumber {
		return v.Num == other.Num
	}
	return v.Str == other.Str
}

// String renders the scalar as text regardless of kind.
func (v CustomValue) String() string {
	if v.Kind == CustomNumber {
		return trimFloat(v.Num)
	}
	return v.Str
}

// MarshalJSON emits the bare scalar.
func (v CustomValue) MarshalJSON() ([]byte, error) {
	if v.Kind == CustomNumber {
		return json.Marshal(v.Num)
	}
	return json.Marshal(v.Str)
}

// UnmarshalJSON accepts a JSON string or number and tags the value with the
// matching kind. Any other JSON type is rejected.
func (v *CustomValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = StringValue(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumberValue(n)
		return nil
	}

	return fmt.Errorf("custom field value must be a string or a number, got %s", string(data))
}

func trimFloat(n float64) string {
	b, _ := json.Marshal(n)
	return string(b)
}

// CustomFields is the open string-keyed map of custom values on a client,
// stored as a JSONB column.
type CustomFields map[string]CustomValue

// Equal reports structural equality of two custom-field maps.
func (c CustomFields) Equal(other CustomFields) bool {
	if len(c) != len(other) {
		return false
	}
	for key, val := range c {
		otherVal, ok := other[key]
		if !ok || !val.Equal(otherVal) {
			return false
		}
	}
	return true
}

// Value implements [driver.Valuer] for JSONB storage.
func (c CustomFields) Value() (driver.Value, error) {
	if c == nil {
		c = CustomFields{}
	}
	return json.Marshal(c)
}

// Scan implements [sql.Scanner] for JSONB storage.
func (c *CustomFields) Scan(src any) error {
	return scanJSON(src, c)
}
