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
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Array is the flat export of one element.
type Array struct {
	Key    string
	Values []Value
}

// Arrays is the flattened export of a document, in element order.
type Arrays []Array

// Get returns the values stored under key.
func (a Arrays) Get(key string) ([]Value, bool) {
	for i := range a {
		if a[i].Key == key {
			return a[i].Values, true
		}
	}
	return nil, false
}

// Keys returns the output keys in element order.
func (a Arrays) Keys() []string {
	keys := make([]string, len(a))
	for i := range a {
		keys[i] = a[i].Key
	}
	return keys
}

// MarshalJSON encodes the arrays as one JSON object whose members keep
// element order.
func (a Arrays) MarshalJSON() ([]byte, error) {
	seen := make(map[string]bool, len(a))
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := range a {
		if seen[a[i].Key] {
			return nil, fmt.Errorf("plyfile: key %q exported twice", a[i].Key)
		}
		seen[a[i].Key] = true
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a[i].Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(":[")
		b := buf.AvailableBuffer()
		for j, v := range a[i].Values {
			if j > 0 {
				b = append(b, ',')
			}
			b = v.appendText(b)
		}
		buf.Write(b)
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Vec3 reads the array under key as consecutive 3-component vectors, the way
// a renderer walks a vertex buffer with stride 3.
func (a Arrays) Vec3(key string) ([]mgl64.Vec3, error) {
	values, err := a.strided(key, 3)
	if err != nil {
		return nil, err
	}
	out := make([]mgl64.Vec3, len(values)/3)
	for i := range out {
		out[i] = mgl64.Vec3{values[3*i].Float(), values[3*i+1].Float(), values[3*i+2].Float()}
	}
	return out, nil
}

// Vec3f is Vec3 with single precision components.
func (a Arrays) Vec3f(key string) ([]mgl32.Vec3, error) {
	values, err := a.strided(key, 3)
	if err != nil {
		return nil, err
	}
	out := make([]mgl32.Vec3, len(values)/3)
	for i := range out {
		out[i] = mgl32.Vec3{
			float32(values[3*i].Float()),
			float32(values[3*i+1].Float()),
			float32(values[3*i+2].Float()),
		}
	}
	return out, nil
}

// Indices reads the array under key as an index buffer. Every value must be
// a non-negative integer that fits in 32 bits.
func (a Arrays) Indices(key string) ([]uint32, error) {
	values, err := a.strided(key, 1)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, len(values))
	for i, v := range values {
		f := v.Float()
		if f < 0 || f > math.MaxUint32 || f != math.Trunc(f) {
			return nil, fmt.Errorf("plyfile: %s[%d] = %s is not a valid index", key, i, v)
		}
		out[i] = uint32(v.Int())
	}
	return out, nil
}

func (a Arrays) strided(key string, stride int) ([]Value, error) {
	values, ok := a.Get(key)
	if !ok {
		return nil, fmt.Errorf("plyfile: no array %q", key)
	}
	if len(values)%stride != 0 {
		return nil, fmt.Errorf("plyfile: array %q holds %d values, not a multiple of %d", key, len(values), stride)
	}
	return values, nil
}
