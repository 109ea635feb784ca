package glbackend

import "github.com/go-gl/gl/v3.3-core/gl"

// VertexBuffer owns one GL_ARRAY_BUFFER filled once at construction.
type VertexBuffer struct {
	id uint32
}

func NewVertexBuffer(data []float32) *VertexBuffer {
	vb := &VertexBuffer{}
	call("glGenBuffers", func() { gl.GenBuffers(1, &vb.id) })
	vb.Bind()
	if len(data) > 0 {
		call("glBufferData", func() { gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW) })
	}
	return vb
}

func (vb *VertexBuffer) Bind()   { call("glBindBuffer", func() { gl.BindBuffer(gl.ARRAY_BUFFER, vb.id) }) }
func (vb *VertexBuffer) Unbind() { call("glBindBuffer", func() { gl.BindBuffer(gl.ARRAY_BUFFER, 0) }) }

func (vb *VertexBuffer) Release() {
	if vb.id != 0 {
		call("glDeleteBuffers", func() { gl.DeleteBuffers(1, &vb.id) })
		vb.id = 0
	}
}

// IndexBuffer owns one GL_ELEMENT_ARRAY_BUFFER of uint32 triangle indices.
type IndexBuffer struct {
	id    uint32
	count int32
}

func NewIndexBuffer(indices []uint32) *IndexBuffer {
	ib := &IndexBuffer{count: int32(len(indices))}
	call("glGenBuffers", func() { gl.GenBuffers(1, &ib.id) })
	ib.Bind()
	if len(indices) > 0 {
		call("glBufferData", func() { gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW) })
	}
	return ib
}

func (ib *IndexBuffer) Count() int32 { return ib.count }

func (ib *IndexBuffer) Bind() {
	call("glBindBuffer", func() { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.id) })
}
func (ib *IndexBuffer) Unbind() {
	call("glBindBuffer", func() { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0) })
}

func (ib *IndexBuffer) Release() {
	if ib.id != 0 {
		call("glDeleteBuffers", func() { gl.DeleteBuffers(1, &ib.id) })
		ib.id = 0
	}
}
