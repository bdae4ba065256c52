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

// FaceElement is the element name whose quad rows are split into triangles.
const FaceElement = "face"

// Policy decides how an element is exported: the output key, and the rows
// that are concatenated into its flat array.
type Policy interface {
	Key(e *Element) string
	Rows(data *ElementData) []Row
}

// MeshPolicy is the default export policy. Quads of the face element are
// split into two triangles, every other element is cut down to 3-tuples
// (positions, normals, colors).
type MeshPolicy struct{}

// Key returns "face" for the face element and the name of any other list
// element as is. Normal elements get "<name>_3<t>" where t is the first
// letter of their first property's type, e.g. vertex_3f.
func (MeshPolicy) Key(e *Element) string {
	if e.Name == FaceElement || e.Kind == KindList {
		return e.Name
	}
	return e.Name + "_3" + e.LeadType().String()[:1]
}

// Rows applies the quad split to face rows and the 3-value truncation to
// rows of every other element.
func (MeshPolicy) Rows(data *ElementData) []Row {
	if data.Element.Name == FaceElement {
		return SplitQuads(data.Rows)
	}
	rows := make([]Row, len(data.Rows))
	for i, row := range data.Rows {
		if len(row) > 3 {
			row = row[:3:3]
		}
		rows[i] = row
	}
	return rows
}

// SplitQuads replaces every 4-entry row [v0 v1 v2 v3] by [v0 v1 v2] and
// [v0 v2 v3]. Rows of any other length pass through.
func SplitQuads(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if len(row) != 4 {
			out = append(out, row)
			continue
		}
		out = append(out,
			Row{row[0], row[1], row[2]},
			Row{row[0], row[2], row[3]},
		)
	}
	return out
}

// Flatten exports doc with MeshPolicy.
func Flatten(doc *Document) Arrays {
	return FlattenWith(doc, MeshPolicy{})
}

// FlattenWith exports doc with policy p, one Array per element in element
// order. Values keep row order, then within-row order.
func FlattenWith(doc *Document, p Policy) Arrays {
	out := make(Arrays, 0, len(doc.Elements))
	for i := range doc.Elements {
		data := &doc.Elements[i]
		rows := p.Rows(data)

		n := 0
		for _, row := range rows {
			n += len(row)
		}
		values := make([]Value, 0, n)
		for _, row := range rows {
			values = append(values, row...)
		}
		out = append(out, Array{Key: p.Key(&data.Element), Values: values})
	}
	return out
}
