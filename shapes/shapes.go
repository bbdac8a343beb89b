package shapes

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	cylinderSegments = 36
	sphereStacks     = 18 // must stay even, see HalfSphere
	sphereSlices     = 36
)

type Vertex struct {
	Pos    mgl32.Vec3
	Normal mgl32.Vec3
	UV     mgl32.Vec2
}

// Geometry is an indexed triangle list with interleaved vertices.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
}

// Generate builds unit geometry for kind.
// Half sphere returns the full sphere, use Kind.IndexRange to draw the upper part.
func Generate(kind Kind) Geometry {
	var b builder
	switch kind.Geometry() {
	case Plane:
		b.plane()
	case Box:
		b.box()
	case Cylinder:
		b.cylinder(cylinderSegments)
	case Prism:
		b.prism()
	case Sphere:
		b.sphere(sphereStacks, sphereSlices)
	}
	return b.g
}

type builder struct {
	g Geometry
}

func (b *builder) vertex(pos, normal mgl32.Vec3, uv mgl32.Vec2) uint32 {
	b.g.Vertices = append(b.g.Vertices, Vertex{Pos: pos, Normal: normal, UV: uv})
	return uint32(len(b.g.Vertices) - 1)
}

// triangle appends a triangle wound counter-clockwise when seen from the side its normals face.
func (b *builder) triangle(i0, i1, i2 uint32) {
	v0, v1, v2 := b.g.Vertices[i0], b.g.Vertices[i1], b.g.Vertices[i2]
	face := v1.Pos.Sub(v0.Pos).Cross(v2.Pos.Sub(v0.Pos))
	if face.Dot(v0.Normal.Add(v1.Normal).Add(v2.Normal)) < 0 {
		i1, i2 = i2, i1
	}
	b.g.Indices = append(b.g.Indices, i0, i1, i2)
}

// quad expects the corners in perimeter order.
func (b *builder) quad(i0, i1, i2, i3 uint32) {
	b.triangle(i0, i1, i2)
	b.triangle(i0, i2, i3)
}

func (b *builder) plane() {
	up := mgl32.Vec3{0, 1, 0}
	b.quad(
		b.vertex(mgl32.Vec3{-1, 0, -1}, up, mgl32.Vec2{0, 1}),
		b.vertex(mgl32.Vec3{-1, 0, 1}, up, mgl32.Vec2{0, 0}),
		b.vertex(mgl32.Vec3{1, 0, 1}, up, mgl32.Vec2{1, 0}),
		b.vertex(mgl32.Vec3{1, 0, -1}, up, mgl32.Vec2{1, 1}),
	)
}

func (b *builder) box() {
	faces := [...]struct{ n, u, v mgl32.Vec3 }{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}
	for _, f := range faces {
		c := f.n.Mul(0.5)
		u, v := f.u.Mul(0.5), f.v.Mul(0.5)
		b.quad(
			b.vertex(c.Sub(u).Sub(v), f.n, mgl32.Vec2{0, 0}),
			b.vertex(c.Add(u).Sub(v), f.n, mgl32.Vec2{1, 0}),
			b.vertex(c.Add(u).Add(v), f.n, mgl32.Vec2{1, 1}),
			b.vertex(c.Sub(u).Add(v), f.n, mgl32.Vec2{0, 1}),
		)
	}
}

func (b *builder) cylinder(segments int) {
	ring := func(i int) (x, z float32) {
		a := 2 * math.Pi * float64(i) / float64(segments)
		return float32(math.Cos(a)), float32(math.Sin(a))
	}

	// side, the seam vertex is duplicated for uv wrapping
	first := uint32(len(b.g.Vertices))
	for i := 0; i <= segments; i++ {
		x, z := ring(i)
		n := mgl32.Vec3{x, 0, z}
		u := float32(i) / float32(segments)
		b.vertex(mgl32.Vec3{x, 0, z}, n, mgl32.Vec2{u, 0})
		b.vertex(mgl32.Vec3{x, 1, z}, n, mgl32.Vec2{u, 1})
	}
	for i := uint32(0); i < uint32(segments); i++ {
		bottom, top := first+i*2, first+i*2+1
		b.quad(bottom, bottom+2, top+2, top)
	}

	for _, y := range []float32{0, 1} {
		n := mgl32.Vec3{0, 1, 0}
		if y == 0 {
			n = mgl32.Vec3{0, -1, 0}
		}
		center := b.vertex(mgl32.Vec3{0, y, 0}, n, mgl32.Vec2{0.5, 0.5})
		for i := 0; i < segments; i++ {
			x0, z0 := ring(i)
			x1, z1 := ring(i + 1)
			b.triangle(center,
				b.vertex(mgl32.Vec3{x0, y, z0}, n, mgl32.Vec2{0.5 + 0.5*x0, 0.5 + 0.5*z0}),
				b.vertex(mgl32.Vec3{x1, y, z1}, n, mgl32.Vec2{0.5 + 0.5*x1, 0.5 + 0.5*z1}))
		}
	}
}

func (b *builder) prism() {
	tri := [3]mgl32.Vec2{{-0.5, -0.5}, {0.5, -0.5}, {0, 0.5}}
	uvs := [3]mgl32.Vec2{{0, 0}, {1, 0}, {0.5, 1}}

	for _, z := range []float32{0.5, -0.5} {
		n := mgl32.Vec3{0, 0, 1}
		if z < 0 {
			n = mgl32.Vec3{0, 0, -1}
		}
		var idx [3]uint32
		for i, p := range tri {
			idx[i] = b.vertex(mgl32.Vec3{p.X(), p.Y(), z}, n, uvs[i])
		}
		b.triangle(idx[0], idx[1], idx[2])
	}

	for i := range tri {
		p0, p1 := tri[i], tri[(i+1)%len(tri)]
		edge := p1.Sub(p0)
		n := mgl32.Vec3{edge.Y(), -edge.X(), 0}.Normalize()
		b.quad(
			b.vertex(mgl32.Vec3{p0.X(), p0.Y(), 0.5}, n, mgl32.Vec2{0, 0}),
			b.vertex(mgl32.Vec3{p1.X(), p1.Y(), 0.5}, n, mgl32.Vec2{1, 0}),
			b.vertex(mgl32.Vec3{p1.X(), p1.Y(), -0.5}, n, mgl32.Vec2{1, 1}),
			b.vertex(mgl32.Vec3{p0.X(), p0.Y(), -0.5}, n, mgl32.Vec2{0, 1}),
		)
	}
}

// sphere emits stack bands from the top pole down, so the first half of
// the index buffer covers exactly the upper hemisphere.
func (b *builder) sphere(stacks, slices int) {
	first := uint32(len(b.g.Vertices))
	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			p := mgl32.Vec3{
				float32(math.Sin(phi) * math.Cos(theta)),
				float32(math.Cos(phi)),
				float32(math.Sin(phi) * math.Sin(theta)),
			}
			b.vertex(p, p.Normalize(), mgl32.Vec2{
				float32(j) / float32(slices),
				1 - float32(i)/float32(stacks),
			})
		}
	}

	row := uint32(slices + 1)
	at := func(i, j int) uint32 { return first + uint32(i)*row + uint32(j) }
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			switch i {
			case 0:
				b.triangle(at(0, j), at(1, j), at(1, j+1))
			case stacks - 1:
				b.triangle(at(i, j), at(i+1, j), at(i, j+1))
			default:
				b.quad(at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1))
			}
		}
	}
}
