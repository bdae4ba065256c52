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
	"strings"

	"github.com/cobaltgray/go-plyascii/internal/monitoring"
)

// Decode reads the data section starting at lines[first] using the elements
// declared in header. Rows of each element are read in declaration order
// from a single cursor; line numbers in errors count from the start of lines.
func Decode(lines []string, first int, header *Header) (*Document, error) {
	return decode(lines, first, header, Options{})
}

func decode(lines []string, first int, header *Header, opts Options) (*Document, error) {
	doc := &Document{
		Header:   header,
		Elements: make([]ElementData, 0, len(header.Elements)),
	}

	cursor := first
	for i := range header.Elements {
		e := &header.Elements[i]
		// the declared length is untrusted; never reserve more rows than
		// there are lines left
		data := ElementData{Element: *e, Rows: make([]Row, 0, min(e.Length, len(lines)-cursor))}
		for n := 0; n < e.Length; n++ {
			if cursor >= len(lines) {
				return nil, newFormatError(ErrTruncatedData, cursor+1, e.Name,
					"element %q declares %d rows, input ended after %d", e.Name, e.Length, n)
			}
			row, err := decodeRow(e, strings.Fields(lines[cursor]), cursor+1)
			if err != nil {
				return nil, err
			}
			data.Rows = append(data.Rows, row)
			cursor++
		}
		if len(data.Rows) != e.Length {
			return nil, newFormatError(ErrElementLengthMismatch, cursor, e.Name,
				"element %q declares %d rows, decoded %d", e.Name, e.Length, len(data.Rows))
		}
		doc.Elements = append(doc.Elements, data)
	}

	if err := checkTrailing(lines, cursor, opts); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeRow(e *Element, tokens []string, lineNo int) (Row, error) {
	if e.Kind == KindList {
		return decodeList(&e.List, tokens, lineNo)
	}
	if len(tokens) != len(e.Properties) {
		return nil, newFormatError(ErrPropertyCountMismatch, lineNo, "",
			"element %q has %d properties, line holds %d values", e.Name, len(e.Properties), len(tokens))
	}
	row := make(Row, len(tokens))
	for k, p := range e.Properties {
		v, err := p.Type.Parse(tokens[k])
		if err != nil {
			return nil, newFormatError(ErrBadScalar, lineNo, tokens[k],
				"property %q is not a valid %s", p.Name, p.Type)
		}
		row[k] = v
	}
	return row, nil
}

func decodeList(l *ListProperty, tokens []string, lineNo int) (Row, error) {
	if len(tokens) == 0 {
		return nil, newFormatError(ErrListLengthMismatch, lineNo, "", "list %q is missing its count", l.Name)
	}
	count, err := l.CountType.Parse(tokens[0])
	if err != nil {
		return nil, newFormatError(ErrBadScalar, lineNo, tokens[0],
			"count of list %q is not a valid %s", l.Name, l.CountType)
	}
	n := count.Float()
	if n < 0 || n != math.Trunc(n) {
		return nil, newFormatError(ErrListLengthMismatch, lineNo, tokens[0],
			"count of list %q must be a non-negative integer", l.Name)
	}
	entries := tokens[1:]
	if int(n) != len(entries) {
		return nil, newFormatError(ErrListLengthMismatch, lineNo, tokens[0],
			"list %q declares %d entries, line holds %d", l.Name, int(n), len(entries))
	}
	row := make(Row, len(entries))
	for k, tok := range entries {
		v, err := l.ValueType.Parse(tok)
		if err != nil {
			return nil, newFormatError(ErrBadScalar, lineNo, tok,
				"entry %d of list %q is not a valid %s", k, l.Name, l.ValueType)
		}
		row[k] = v
	}
	return row, nil
}

func checkTrailing(lines []string, cursor int, opts Options) error {
	first, count := 0, 0
	for i := cursor; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		if count == 0 {
			first = i + 1
		}
		count++
	}
	if count == 0 {
		return nil
	}
	if opts.StrictTrailing {
		return newFormatError(ErrTrailingData, first, "", "%d data line(s) after the last element", count)
	}
	monitoring.Logf("plyfile: ignoring %d data line(s) after the last element, first at line %d", count, first)
	return nil
}
