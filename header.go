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
	"strconv"
	"strings"
)

const (
	magic         = "ply"
	formatASCII   = "ascii"
	formatVersion = "1.0"
)

// ParseHeader scans the header of a PLY file split into lines. It returns
// the header and the index into lines of the first data line.
func ParseHeader(lines []string) (*Header, int, error) {
	return parseHeader(lines, Options{})
}

// headerScan is the state folded over the header lines: the header being
// built, the element currently receiving properties and the line each
// element was declared on.
type headerScan struct {
	opts   Options
	header *Header
	cur    int
	decl   []int
}

func parseHeader(lines []string, opts Options) (*Header, int, error) {
	if len(lines) == 0 || !hasMagic(lines[0]) {
		tok := ""
		if len(lines) > 0 {
			tok = firstToken(lines[0])
		}
		return nil, 0, newFormatError(ErrBadMagic, 1, tok, "input does not start with %q", magic)
	}
	header, err := parseFormatLine(lines)
	if err != nil {
		return nil, 0, err
	}

	s := &headerScan{opts: opts, header: header, cur: -1}
	for i := 2; i < len(lines); i++ {
		lineNo := i + 1
		fields := strings.Fields(lines[i])
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "comment":
			header.Comments = append(header.Comments, restOfLine(lines[i], fields[0]))
		case "obj_info":
			header.ObjInfo = append(header.ObjInfo, restOfLine(lines[i], fields[0]))
		case "element":
			if err := s.element(fields, lineNo); err != nil {
				return nil, 0, err
			}
		case "property":
			if err := s.property(fields, lineNo); err != nil {
				return nil, 0, err
			}
		case "end_header":
			if err := s.finish(); err != nil {
				return nil, 0, err
			}
			return header, i + 1, nil
		default:
			return nil, 0, newFormatError(ErrUnknownCommand, lineNo, fields[0],
				"unknown command, expected comment, obj_info, element, property or end_header")
		}
	}
	return nil, 0, newFormatError(ErrMissingEndHeader, len(lines), "", "input ended before end_header")
}

func parseFormatLine(lines []string) (*Header, error) {
	if len(lines) < 2 {
		return nil, newFormatError(ErrUnsupportedFormat, 2, "", "missing format line")
	}
	fields := strings.Fields(lines[1])
	if len(fields) != 3 || fields[0] != "format" {
		return nil, newFormatError(ErrUnsupportedFormat, 2, strings.TrimSpace(lines[1]),
			"expected \"format %s %s\"", formatASCII, formatVersion)
	}
	if fields[1] != formatASCII {
		return nil, newFormatError(ErrUnsupportedFormat, 2, fields[1], "only the ascii format is supported")
	}
	if fields[2] != formatVersion {
		return nil, newFormatError(ErrUnsupportedFormat, 2, fields[2], "only version %s is supported", formatVersion)
	}
	return &Header{Format: fields[1], Version: fields[2]}, nil
}

func (s *headerScan) element(fields []string, lineNo int) error {
	if len(fields) != 3 {
		return newFormatError(ErrMalformedLine, lineNo, "", "malformed element, expected \"element <name> <length>\"")
	}
	length, err := strconv.Atoi(fields[2])
	if err != nil || length < 0 {
		return newFormatError(ErrBadElementLength, lineNo, fields[2], "element length must be a non-negative integer")
	}
	if _, dup := s.header.Element(fields[1]); dup && s.opts.StrictElements {
		return newFormatError(ErrDuplicateElement, lineNo, fields[1], "element declared twice")
	}
	s.header.Elements = append(s.header.Elements, Element{Name: fields[1], Length: length})
	s.decl = append(s.decl, lineNo)
	s.cur = len(s.header.Elements) - 1
	return nil
}

func (s *headerScan) property(fields []string, lineNo int) error {
	if s.cur < 0 {
		return newFormatError(ErrNoCurrentElement, lineNo, "", "property declared before any element")
	}
	e := &s.header.Elements[s.cur]

	switch {
	case len(fields) == 3:
		t, ok := ParseScalarType(fields[1])
		if !ok {
			return newFormatError(ErrUnknownType, lineNo, fields[1], "unknown type")
		}
		if e.Kind == KindList {
			if s.opts.StrictProperties {
				return newFormatError(ErrMixedProperties, lineNo, fields[2],
					"element %q mixes a list property with scalar properties", e.Name)
			}
			e.List = ListProperty{}
		}
		e.Kind = KindNormal
		e.Properties = append(e.Properties, Property{Name: fields[2], Type: t})
		return nil

	case len(fields) == 5 && fields[1] == "list":
		count, ok := ParseScalarType(fields[2])
		if !ok {
			return newFormatError(ErrUnknownType, lineNo, fields[2], "unknown list count type")
		}
		value, ok := ParseScalarType(fields[3])
		if !ok {
			return newFormatError(ErrUnknownType, lineNo, fields[3], "unknown list value type")
		}
		if s.opts.StrictProperties && e.hasProperties() {
			return newFormatError(ErrMixedProperties, lineNo, fields[4],
				"element %q already has properties", e.Name)
		}
		// a list replaces whatever the element held before
		e.Kind = KindList
		e.Properties = nil
		e.List = ListProperty{Name: fields[4], CountType: count, ValueType: value}
		return nil

	default:
		return newFormatError(ErrMalformedLine, lineNo, "",
			"malformed property, expected \"property <type> <name>\" or \"property list <count> <type> <name>\"")
	}
}

func (s *headerScan) finish() error {
	for i := range s.header.Elements {
		e := &s.header.Elements[i]
		if !e.hasProperties() {
			return newFormatError(ErrNoProperties, s.decl[i], e.Name, "element has no properties")
		}
	}
	return nil
}

// hasMagic reports whether "ply" occurs within the first four characters of
// the input, so a single leading byte such as a space is tolerated.
func hasMagic(first string) bool {
	if len(first) > 4 {
		first = first[:4]
	}
	return strings.Contains(first, magic)
}

func firstToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func restOfLine(line, keyword string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), keyword))
}
