package plyfile

import (
	"encoding/json"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArraysVec3(t *testing.T) {
	arrays, err := Convert(cubeFile, Options{})
	require.NoError(t, err)

	verts, err := arrays.Vec3("vertex_3f")
	require.NoError(t, err)
	require.Len(t, verts, 8)
	assert.Equal(t, mgl64.Vec3{1, 1, 0}, verts[2])
	assert.Equal(t, mgl64.Vec3{0, 1, 1}, verts[7])

	vertsf, err := arrays.Vec3f("vertex_3f")
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{1, 0, 1}, vertsf[5])

	// triangles index into the vertex buffer
	idx, err := arrays.Indices("face")
	require.NoError(t, err)
	for _, i := range idx {
		assert.Less(t, int(i), len(verts))
	}
}

func TestArraysErrors(t *testing.T) {
	arrays := Arrays{
		{Key: "pair", Values: vals(Float32, 1, 2)},
		{Key: "neg", Values: vals(Int32, 1, -1)},
	}

	_, err := arrays.Vec3("missing")
	assert.Error(t, err)
	_, err = arrays.Vec3("pair")
	assert.Error(t, err)
	_, err = arrays.Vec3f("pair")
	assert.Error(t, err)
	_, err = arrays.Indices("neg")
	assert.Error(t, err)

	arrays = Arrays{{Key: "frac", Values: []Value{FloatValue(Float32, 0.5)}}}
	_, err = arrays.Indices("frac")
	assert.Error(t, err)
}

func TestArraysMarshalJSON(t *testing.T) {
	arrays := Arrays{
		{Key: "z_3d", Values: vals(Float64, 1.5)},
		{Key: "a \"quoted\" key", Values: nil},
		{Key: "face", Values: vals(Int32, 0, 1, 2)},
	}
	out, err := json.Marshal(arrays)
	require.NoError(t, err)
	assert.Equal(t, `{"z_3d":[1.5],"a \"quoted\" key":[],"face":[0,1,2]}`, string(out))

	var decoded map[string][]float64
	require.NoError(t, json.Unmarshal(out, &decoded))
	want := map[string][]float64{"z_3d": {1.5}, "a \"quoted\" key": {}, "face": {0, 1, 2}}
	if diff := cmp.Diff(want, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	doc, err := Parse(`ply
format ascii 1.0
element vertex 1
property float x
element vertex 1
property float y
end_header
1
2
`)
	require.NoError(t, err)
	_, err = Flatten(doc).MarshalJSON()
	assert.ErrorContains(t, err, "vertex_3f")

	empty, err := Arrays{}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(empty))
}
