package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/render3d/engine/core"
)

// VertexArray owns one VAO.
type VertexArray struct {
	id uint32
}

func NewVertexArray() *VertexArray {
	va := &VertexArray{}
	call("glGenVertexArrays", func() { gl.GenVertexArrays(1, &va.id) })
	return va
}

// AddBuffer records vb's attribute pointers in the VAO according to layout.
func (va *VertexArray) AddBuffer(vb *VertexBuffer, layout core.VertexLayout) {
	va.Bind()
	vb.Bind()
	for _, a := range layout.Attributes {
		a := a
		call("glEnableVertexAttribArray", func() { gl.EnableVertexAttribArray(a.Location) })
		call("glVertexAttribPointer", func() {
			gl.VertexAttribPointerWithOffset(a.Location, int32(a.Size), glType(a.Type), a.Normalized, int32(layout.Stride), uintptr(a.Offset))
		})
	}
}

func (va *VertexArray) Bind()   { call("glBindVertexArray", func() { gl.BindVertexArray(va.id) }) }
func (va *VertexArray) Unbind() { call("glBindVertexArray", func() { gl.BindVertexArray(0) }) }

func (va *VertexArray) Release() {
	if va.id != 0 {
		call("glDeleteVertexArrays", func() { gl.DeleteVertexArrays(1, &va.id) })
		va.id = 0
	}
}

func glType(t core.AttribType) uint32 {
	switch t {
	case core.AttribFloat32:
		return gl.FLOAT
	default:
		return gl.FLOAT
	}
}

// Mesh is a vertex array bound to its own vertex and index buffers.
type Mesh struct {
	VA *VertexArray
	VB *VertexBuffer
	IB *IndexBuffer
}

// NewMesh uploads desc and leaves nothing bound.
func NewMesh(desc core.MeshDesc) *Mesh {
	m := &Mesh{VA: NewVertexArray()}
	m.VB = NewVertexBuffer(desc.Vertices)
	m.VA.AddBuffer(m.VB, desc.Layout)
	m.IB = NewIndexBuffer(desc.Indices)

	m.VA.Unbind()
	m.VB.Unbind()
	m.IB.Unbind()
	return m
}

func (m *Mesh) Release() {
	m.IB.Release()
	m.VB.Release()
	m.VA.Release()
}
