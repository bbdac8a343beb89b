package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGeometry(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			g := Generate(kind)
			require.NotEmpty(t, g.Vertices)
			require.NotEmpty(t, g.Indices)
			require.Zero(t, len(g.Indices)%3)

			for i, v := range g.Vertices {
				assert.InDelta(t, 1.0, v.Normal.Len(), 1e-5, "vertex %d normal", i)
			}

			for i := 0; i < len(g.Indices); i += 3 {
				for _, idx := range g.Indices[i : i+3] {
					require.Less(t, int(idx), len(g.Vertices))
				}
				v0 := g.Vertices[g.Indices[i]]
				v1 := g.Vertices[g.Indices[i+1]]
				v2 := g.Vertices[g.Indices[i+2]]
				face := v1.Pos.Sub(v0.Pos).Cross(v2.Pos.Sub(v0.Pos))
				assert.Greater(t, face.Len(), float32(0), "triangle %d is degenerate", i/3)
				assert.Greater(t, face.Dot(v0.Normal.Add(v1.Normal).Add(v2.Normal)), float32(0),
					"triangle %d faces inward", i/3)
			}
		})
	}
}

func TestUnitBounds(t *testing.T) {
	var tests = []struct {
		kind     Kind
		min, max [3]float32
	}{
		{Plane, [3]float32{-1, 0, -1}, [3]float32{1, 0, 1}},
		{Box, [3]float32{-0.5, -0.5, -0.5}, [3]float32{0.5, 0.5, 0.5}},
		{Cylinder, [3]float32{-1, 0, -1}, [3]float32{1, 1, 1}},
		{Prism, [3]float32{-0.5, -0.5, -0.5}, [3]float32{0.5, 0.5, 0.5}},
		{Sphere, [3]float32{-1, -1, -1}, [3]float32{1, 1, 1}},
	}

	for _, test := range tests {
		g := Generate(test.kind)
		lo, hi := g.Vertices[0].Pos, g.Vertices[0].Pos
		for _, v := range g.Vertices {
			for c := 0; c < 3; c++ {
				if v.Pos[c] < lo[c] {
					lo[c] = v.Pos[c]
				}
				if v.Pos[c] > hi[c] {
					hi[c] = v.Pos[c]
				}
			}
		}
		for c := 0; c < 3; c++ {
			assert.InDelta(t, test.min[c], lo[c], 1e-5, "%v min[%d]", test.kind, c)
			assert.InDelta(t, test.max[c], hi[c], 1e-5, "%v max[%d]", test.kind, c)
		}
	}
}

func TestHalfSphereIsUpperHemisphere(t *testing.T) {
	g := Generate(HalfSphere)
	first, count := HalfSphere.IndexRange(len(g.Indices))
	require.Equal(t, 0, first)
	require.Equal(t, len(g.Indices)/2, count)
	require.Zero(t, count%3)

	for _, idx := range g.Indices[first : first+count] {
		assert.GreaterOrEqual(t, g.Vertices[idx].Pos.Y(), float32(-1e-5))
	}
	for _, idx := range g.Indices[first+count:] {
		assert.LessOrEqual(t, g.Vertices[idx].Pos.Y(), float32(1e-5))
	}
}

func TestParseKind(t *testing.T) {
	var tests = []struct {
		in   string
		kind Kind
		err  bool
	}{
		{"plane", Plane, false},
		{"Box", Box, false},
		{" cylinder ", Cylinder, false},
		{"prism", Prism, false},
		{"sphere", Sphere, false},
		{"half-sphere", HalfSphere, false},
		{"half_sphere", HalfSphere, false},
		{"torus", 0, true},
		{"", 0, true},
	}

	for _, test := range tests {
		kind, err := ParseKind(test.in)
		if test.err {
			assert.Error(t, err, "ParseKind(%q)", test.in)
			continue
		}
		if assert.NoError(t, err, "ParseKind(%q)", test.in) {
			assert.Equal(t, test.kind, kind)
		}
	}
}

func TestGeometryKind(t *testing.T) {
	assert.Equal(t, Sphere, HalfSphere.Geometry())
	assert.Equal(t, Box, Box.Geometry())

	first, count := Box.IndexRange(36)
	assert.Equal(t, 0, first)
	assert.Equal(t, 36, count)
}
