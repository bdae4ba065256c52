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

// Kind tells whether an element carries scalar properties or a single list.
type Kind int

const (
	KindNormal Kind = iota /* one or more scalar properties */
	KindList               /* exactly one list property */
)

func (k Kind) String() string {
	if k == KindList {
		return "list"
	}
	return "normal"
}

// Property is a scalar column of an element.
type Property struct {
	Name string
	Type ScalarType
}

// ListProperty is a variable length column. Each row starts with a count of
// CountType followed by that many entries of ValueType.
type ListProperty struct {
	Name      string
	CountType ScalarType
	ValueType ScalarType
}

// Element describes one element declared in the header. Properties is used
// when Kind is KindNormal, List when Kind is KindList.
type Element struct {
	Name       string
	Length     int
	Kind       Kind
	Properties []Property
	List       ListProperty
}

// Width returns the number of tokens a Normal row holds, or 1 for a list
// element (a single list value).
func (e *Element) Width() int {
	if e.Kind == KindList {
		return 1
	}
	return len(e.Properties)
}

// LeadType returns the declared type of the element's first property, the
// value type for list elements.
func (e *Element) LeadType() ScalarType {
	if e.Kind == KindList {
		return e.List.ValueType
	}
	if len(e.Properties) == 0 {
		return InvalidType
	}
	return e.Properties[0].Type
}

func (e *Element) hasProperties() bool {
	return e.Kind == KindList || len(e.Properties) > 0
}

// Header is the parsed PLY header.
type Header struct {
	Format   string
	Version  string
	Comments []string
	ObjInfo  []string
	Elements []Element
}

// Element looks up a declared element by name.
func (h *Header) Element(name string) (*Element, bool) {
	for i := range h.Elements {
		if h.Elements[i].Name == name {
			return &h.Elements[i], true
		}
	}
	return nil, false
}

// Row is one decoded record: one value per scalar property, or the entries
// of the list for list elements.
type Row []Value

// ElementData holds the decoded rows of one element.
type ElementData struct {
	Element Element
	Rows    []Row
}

// Document is the decoded content of a PLY file, one ElementData per
// declared element in file order.
type Document struct {
	Header   *Header
	Elements []ElementData
}

// Element looks up decoded element data by name.
func (d *Document) Element(name string) (*ElementData, bool) {
	for i := range d.Elements {
		if d.Elements[i].Element.Name == name {
			return &d.Elements[i], true
		}
	}
	return nil, false
}
