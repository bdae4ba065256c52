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

/*
Package plyfile reads ASCII PLY files and exports their elements as flat
per-attribute arrays. Everything is native Go; the earlier cgo binding to Greg
Turk's C plyfile library and its manual memory management are gone.

Basics

Reading happens in three steps, each taking ownership of the previous step's
output:

  lines := plyfile.SplitLines(text)
  header, first, err := plyfile.ParseHeader(lines)   // element schemas
  doc, err := plyfile.Decode(lines, first, header)    // typed rows
  arrays := plyfile.Flatten(doc)                      // flat arrays

Parse runs the first two steps and Convert runs all three.

The Header

ParseHeader accepts "format ascii 1.0" only; binary files and other versions
are rejected. Elements are either normal (one or more scalar properties) or
list elements (exactly one list property, e.g. the vertex_index list of a
face). Declaring a list property on an element replaces the properties
declared before it; Options.StrictProperties rejects such headers instead.
Comments and obj_info lines are kept on the Header.

The Data Section

Decode reads exactly the declared number of rows for every element, in
declaration order. Token counts are checked against the schema on every line,
and every token must parse as its declared type within that type's range.

Exporting

Flatten uses MeshPolicy: rows of the face element that hold 4 indices are
split into two triangles, rows of every other element are cut to 3 values.
Keys are "face" for faces and "<name>_3<t>" for normal elements, t being the
first letter of the first property's type:

  {"vertex_3f": [0.0, 1.0, 2.0], "face": [0, 1, 2, 0, 2, 3]}

Arrays.MarshalJSON keeps element order. Vec3, Vec3f and Indices read a flat
array back as vectors or an index buffer. A different Policy can be passed to
FlattenWith.

Errors

Every failure is a *FormatError carrying an ErrorCode, the 1-based line number
and the offending token. Codes are errors, so

  if errors.Is(err, plyfile.ErrUnsupportedFormat) { ... }

works on anything Parse returns. No partial document is ever returned.
*/
package plyfile
