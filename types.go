/*
Copyright 2016 Alex Baden

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package plyfile

import (
	"math"
	"strconv"
)

// ScalarType is one of the scalar data types supported by the PLY format.
// The numbering follows the PLY_CHAR ... PLY_DOUBLE constants of the C
// plyfile library.
type ScalarType int

const (
	InvalidType ScalarType = iota
	Int8                   // char
	Int16                  // short
	Int32                  // int
	Uint8                  // uchar
	Uint16                 // ushort
	Uint32                 // uint
	Float32                // float
	Float64                // double
)

var typeNames = [...]string{
	InvalidType: "invalid",
	Int8:        "char",
	Int16:       "short",
	Int32:       "int",
	Uint8:       "uchar",
	Uint16:      "ushort",
	Uint32:      "uint",
	Float32:     "float",
	Float64:     "double",
}

var typesByName = map[string]ScalarType{
	"char":   Int8,
	"uchar":  Uint8,
	"short":  Int16,
	"ushort": Uint16,
	"int":    Int32,
	"uint":   Uint32,
	"float":  Float32,
	"double": Float64,

	// sized names written by newer exporters
	"int8":    Int8,
	"uint8":   Uint8,
	"int16":   Int16,
	"uint16":  Uint16,
	"int32":   Int32,
	"uint32":  Uint32,
	"float32": Float32,
	"float64": Float64,
}

// ParseScalarType maps a header type token onto a ScalarType.
func ParseScalarType(name string) (ScalarType, bool) {
	t, ok := typesByName[name]
	return t, ok
}

// String returns the classic PLY name of the type (char, uchar, ... double).
func (t ScalarType) String() string {
	if t < InvalidType || int(t) >= len(typeNames) {
		return typeNames[InvalidType]
	}
	return typeNames[t]
}

// IsFloat reports whether values of t use the floating point decoding rule.
func (t ScalarType) IsFloat() bool {
	return t == Float32 || t == Float64
}

func (t ScalarType) bitSize() int {
	switch t {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Float32, Int32, Uint32:
		return 32
	default:
		return 64
	}
}

func (t ScalarType) signed() bool {
	return t == Int8 || t == Int16 || t == Int32
}

// Parse decodes one data token under t. Integral types accept base-10
// integers within the type's range; floating types accept finite decimal
// numbers within the type's range.
func (t ScalarType) Parse(tok string) (Value, error) {
	switch {
	case t.IsFloat():
		f, err := strconv.ParseFloat(tok, t.bitSize())
		if err != nil {
			return Value{}, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, strconv.ErrSyntax
		}
		return Value{Type: t, f: f}, nil
	case t.signed():
		i, err := strconv.ParseInt(tok, 10, t.bitSize())
		if err != nil {
			return Value{}, err
		}
		return Value{Type: t, i: i}, nil
	case t == Uint8 || t == Uint16 || t == Uint32:
		u, err := strconv.ParseUint(tok, 10, t.bitSize())
		if err != nil {
			return Value{}, err
		}
		return Value{Type: t, i: int64(u)}, nil
	default:
		return Value{}, strconv.ErrSyntax
	}
}

// Value is one decoded scalar. The zero Value is invalid.
type Value struct {
	Type ScalarType
	i    int64
	f    float64
}

// IntValue builds an integral Value of type t.
func IntValue(t ScalarType, v int64) Value {
	if t.IsFloat() {
		return Value{Type: t, f: float64(v)}
	}
	return Value{Type: t, i: v}
}

// FloatValue builds a Value of type t from a float. Integral types truncate.
func FloatValue(t ScalarType, v float64) Value {
	if t.IsFloat() {
		return Value{Type: t, f: v}
	}
	return Value{Type: t, i: int64(v)}
}

// Int returns the value as an integer, truncating floating values.
func (v Value) Int() int64 {
	if v.Type.IsFloat() {
		return int64(v.f)
	}
	return v.i
}

// Float returns the value as a float64.
func (v Value) Float() float64 {
	if v.Type.IsFloat() {
		return v.f
	}
	return float64(v.i)
}

func (v Value) String() string {
	return string(v.appendText(nil))
}

// MarshalJSON encodes integral values as JSON integers and floating values as
// decimals that always carry a fractional part or exponent (0.0, not 0).
func (v Value) MarshalJSON() ([]byte, error) {
	return v.appendText(nil), nil
}

func (v Value) appendText(b []byte) []byte {
	if !v.Type.IsFloat() {
		return strconv.AppendInt(b, v.i, 10)
	}
	bits := v.Type.bitSize()
	abs := math.Abs(v.f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	start := len(b)
	b = strconv.AppendFloat(b, v.f, format, -1, bits)
	for _, c := range b[start:] {
		if c == '.' || c == 'e' {
			return b
		}
	}
	return append(b, '.', '0')
}
