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
	"strings"

	"github.com/cobaltgray/go-plyascii/internal/monitoring"
)

// Options tunes how strictly a PLY file is read. The zero value reads files
// the way the reference reader does.
type Options struct {
	// StrictProperties rejects an element that mixes a list property with
	// other properties. By default a list property replaces the properties
	// declared before it, and a scalar property after a list drops the list.
	StrictProperties bool

	// StrictElements rejects an element whose name repeats an earlier one.
	// Repeated names are accepted otherwise, though their exported arrays
	// then share a key and cannot be encoded as JSON.
	StrictElements bool

	// StrictTrailing rejects non-blank lines after the last element instead
	// of logging and ignoring them.
	StrictTrailing bool
}

/* Parse reads a complete ASCII PLY 1.0 file held in text */
func Parse(text string) (*Document, error) {
	return ParseWithOptions(text, Options{})
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(text string, opts Options) (*Document, error) {
	lines := SplitLines(text)
	header, first, err := parseHeader(lines, opts)
	if err != nil {
		return nil, err
	}
	return decode(lines, first, header, opts)
}

// Convert parses text and flattens it with MeshPolicy.
func Convert(text string, opts Options) (Arrays, error) {
	doc, err := ParseWithOptions(text, opts)
	if err != nil {
		return nil, err
	}
	return Flatten(doc), nil
}

// SplitLines splits text on newlines. A final newline does not produce an
// empty last line; carriage returns are left for the whitespace splitting
// done on every line.
func SplitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// SetLogger redirects the diagnostics the package emits for non-fatal
// conditions. Passing nil mutes them.
func SetLogger(f func(format string, v ...any)) {
	monitoring.SetLogger(f)
}
