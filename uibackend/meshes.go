package uibackend

import (
	"log"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/pkg/errors"

	"github.com/cs330/deskscene/shapes"
)

// vertex attribute locations, see shaders/scene.vert
const (
	attribPosition = 0
	attribNormal   = 1
	attribUV       = 2
)

type mesh struct {
	vao, vbo, ebo uint32
	indexCount    int
}

// Meshes keeps one vertex array per primitive geometry, implements scene.MeshProvider.
// Half sphere shares the sphere buffers.
type Meshes struct {
	meshes map[shapes.Kind]*mesh
}

func NewMeshes() *Meshes {
	return &Meshes{meshes: make(map[shapes.Kind]*mesh)}
}

// Load uploads the geometry of kind unless it is already on the gpu.
func (m *Meshes) Load(kind shapes.Kind) error {
	geomKind := kind.Geometry()
	if _, ok := m.meshes[geomKind]; ok {
		return nil
	}

	g := shapes.Generate(geomKind)
	if len(g.Vertices) == 0 || len(g.Indices) == 0 {
		return errors.Errorf("no geometry for %v", kind)
	}

	me := &mesh{indexCount: len(g.Indices)}
	gl.GenVertexArrays(1, &me.vao)
	gl.BindVertexArray(me.vao)

	stride := int32(unsafe.Sizeof(shapes.Vertex{}))

	gl.GenBuffers(1, &me.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, me.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*int(stride), gl.Ptr(g.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &me.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, me.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointerWithOffset(attribPosition, 3, gl.FLOAT, false, stride, unsafe.Offsetof(shapes.Vertex{}.Pos))
	gl.EnableVertexAttribArray(attribNormal)
	gl.VertexAttribPointerWithOffset(attribNormal, 3, gl.FLOAT, false, stride, unsafe.Offsetof(shapes.Vertex{}.Normal))
	gl.EnableVertexAttribArray(attribUV)
	gl.VertexAttribPointerWithOffset(attribUV, 2, gl.FLOAT, false, stride, unsafe.Offsetof(shapes.Vertex{}.UV))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	m.meshes[geomKind] = me
	log.Printf("Uploaded %v mesh: %d vertices, %d triangles", geomKind, len(g.Vertices), len(g.Indices)/3)
	return nil
}

func (m *Meshes) Draw(kind shapes.Kind) {
	me, ok := m.meshes[kind.Geometry()]
	if !ok {
		log.Printf("ERROR: mesh %v is not loaded", kind)
		return
	}
	first, count := kind.IndexRange(me.indexCount)

	gl.BindVertexArray(me.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, uintptr(first*4))
	gl.BindVertexArray(0)
}

func (m *Meshes) Destroy() {
	for kind, me := range m.meshes {
		gl.DeleteBuffers(1, &me.vbo)
		gl.DeleteBuffers(1, &me.ebo)
		gl.DeleteVertexArrays(1, &me.vao)
		delete(m.meshes, kind)
	}
}
