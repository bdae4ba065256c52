package plyfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeText(t *testing.T, text string) (*Document, error) {
	t.Helper()
	lines := SplitLines(text)
	header, first, err := ParseHeader(lines)
	require.NoError(t, err)
	return Decode(lines, first, header)
}

const vertexHeader = `ply
format ascii 1.0
element vertex 2
property float x
property float y
property uchar red
end_header
`

func TestDecodeNormalRows(t *testing.T) {
	doc, err := decodeText(t, vertexHeader+"0.5 -1.5 255\n2 3e2 0\n")
	require.NoError(t, err)

	require.Len(t, doc.Elements, 1)
	rows := doc.Elements[0].Rows
	require.Len(t, rows, 2)
	assert.Equal(t, Row{FloatValue(Float32, 0.5), FloatValue(Float32, -1.5), IntValue(Uint8, 255)}, rows[0])
	assert.Equal(t, Row{FloatValue(Float32, 2), FloatValue(Float32, 300), IntValue(Uint8, 0)}, rows[1])
}

func TestDecodePropertyCountMismatch(t *testing.T) {
	for _, data := range []string{"1 2\n3 4 5\n", "1 2 3 4\n3 4 5\n", "\n3 4 5\n"} {
		doc, err := decodeText(t, vertexHeader+data)
		require.ErrorIs(t, err, ErrPropertyCountMismatch)
		assert.Nil(t, doc)

		fe, _ := AsFormatError(err)
		assert.Equal(t, 8, fe.Line)
	}
}

func TestDecodeBadScalar(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		token string
		line  int
	}{
		{"not a number", "x 2 3\n1 2 3\n", "x", 8},
		{"uchar overflow", "1 2 3\n1 2 256\n", "256", 9},
		{"uchar negative", "1 2 -1\n1 2 3\n", "-1", 8},
		{"fraction in integer", "1 2 3.5\n1 2 3\n", "3.5", 8},
		{"float not finite", "nan 2 3\n1 2 3\n", "nan", 8},
		{"float32 overflow", "1e39 2 3\n1 2 3\n", "1e39", 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeText(t, vertexHeader+tt.data)
			require.ErrorIs(t, err, ErrBadScalar)
			fe, _ := AsFormatError(err)
			assert.Equal(t, tt.line, fe.Line)
			assert.Equal(t, tt.token, fe.Token)
		})
	}
}

func TestDecodeTruncated(t *testing.T) {
	_, err := decodeText(t, vertexHeader+"1 2 3\n")
	require.ErrorIs(t, err, ErrTruncatedData)
	fe, _ := AsFormatError(err)
	assert.Equal(t, 9, fe.Line)
	assert.Equal(t, "vertex", fe.Token)
}

const faceHeader = `ply
format ascii 1.0
element face 3
property list uchar int vertex_index
end_header
`

func TestDecodeHugeDeclaredLength(t *testing.T) {
	text := `ply
format ascii 1.0
element vertex 100000000000000
property float x
end_header
1.0
`
	var err error
	require.NotPanics(t, func() { _, err = decodeText(t, text) })
	require.ErrorIs(t, err, ErrTruncatedData)
	fe, _ := AsFormatError(err)
	assert.Equal(t, 7, fe.Line)
	assert.Equal(t, "vertex", fe.Token)
}

func TestDecodeListRows(t *testing.T) {
	doc, err := decodeText(t, faceHeader+"3 0 1 2\n4 0 1 2 3\n0\n")
	require.NoError(t, err)

	rows := doc.Elements[0].Rows
	require.Len(t, rows, 3)
	assert.Equal(t, Row(vals(Int32, 0, 1, 2)), rows[0])
	assert.Equal(t, Row(vals(Int32, 0, 1, 2, 3)), rows[1])
	assert.Empty(t, rows[2])
}

func TestDecodeListLengthMismatch(t *testing.T) {
	tests := []struct {
		name string
		data string
		line int
	}{
		{"too few entries", "3 0 1\n3 0 1 2\n3 0 1 2\n", 6},
		{"too many entries", "3 0 1 2\n3 0 1 2 3\n3 0 1 2\n", 7},
		{"missing count", "3 0 1 2\n3 0 1 2\n\n", 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeText(t, faceHeader+tt.data)
			require.ErrorIs(t, err, ErrListLengthMismatch)
			fe, _ := AsFormatError(err)
			assert.Equal(t, tt.line, fe.Line)
		})
	}
}

func TestDecodeListFloatCount(t *testing.T) {
	text := `ply
format ascii 1.0
element face 1
property list float int vertex_index
end_header
`
	doc, err := decodeText(t, text+"2.0 7 8\n")
	require.NoError(t, err)
	assert.Equal(t, Row(vals(Int32, 7, 8)), doc.Elements[0].Rows[0])

	_, err = decodeText(t, text+"1.5 7 8\n")
	assert.ErrorIs(t, err, ErrListLengthMismatch)
}

func TestDecodeBadListCount(t *testing.T) {
	_, err := decodeText(t, faceHeader+"three 0 1 2\n")
	require.ErrorIs(t, err, ErrBadScalar)
	fe, _ := AsFormatError(err)
	assert.Equal(t, "three", fe.Token)
}

func TestDecodeElementsInOrder(t *testing.T) {
	text := `ply
format ascii 1.0
element vertex 2
property double x
element face 1
property list ushort uint vertex_index
element empty 0
property char c
end_header
1.25
2.5
2 10 20
`
	doc, err := decodeText(t, text)
	require.NoError(t, err)

	require.Len(t, doc.Elements, 3)
	for _, data := range doc.Elements {
		assert.Len(t, data.Rows, data.Element.Length, data.Element.Name)
	}
	assert.Equal(t, Row{FloatValue(Float64, 2.5)}, doc.Elements[0].Rows[1])
	assert.Equal(t, Row{IntValue(Uint32, 10), IntValue(Uint32, 20)}, doc.Elements[1].Rows[0])
	assert.Empty(t, doc.Elements[2].Rows)
}

func TestDecodeTruncatedSecondElement(t *testing.T) {
	text := `ply
format ascii 1.0
element vertex 1
property float x
element face 2
property list uchar int vertex_index
end_header
1
3 0 1 2
`
	_, err := decodeText(t, text)
	require.ErrorIs(t, err, ErrTruncatedData)
	fe, _ := AsFormatError(err)
	assert.Equal(t, "face", fe.Token)
	assert.Equal(t, 10, fe.Line)
}
