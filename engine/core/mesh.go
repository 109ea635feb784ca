package core

// AttribType is the component type of a vertex attribute.
type AttribType int

const (
	AttribFloat32 AttribType = iota
)

// Size of one component in bytes.
func (t AttribType) Size() int {
	switch t {
	case AttribFloat32:
		return 4
	default:
		return 0
	}
}

type VertexAttrib struct {
	Location   uint32
	Size       int // components
	Type       AttribType
	Normalized bool
	Offset     int // bytes from the start of the vertex
}

// VertexLayout describes one interleaved vertex buffer.
type VertexLayout struct {
	Stride     int // bytes
	Attributes []VertexAttrib
}

// PushFloat appends an attribute of n float32 components at the next
// location, growing the stride. Returns the layout for chaining.
func (l *VertexLayout) PushFloat(n int) *VertexLayout {
	l.Attributes = append(l.Attributes, VertexAttrib{
		Location: uint32(len(l.Attributes)),
		Size:     n,
		Type:     AttribFloat32,
		Offset:   l.Stride,
	})
	l.Stride += n * AttribFloat32.Size()
	return l
}

// Floats returns how many float32 values one vertex occupies.
func (l VertexLayout) Floats() int { return l.Stride / AttribFloat32.Size() }

// MeshDesc is CPU-side geometry ready for upload.
type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// VertexCount reports whole vertices in Vertices.
func (m MeshDesc) VertexCount() int {
	n := m.Layout.Floats()
	if n == 0 {
		return 0
	}
	return len(m.Vertices) / n
}

// TextureDesc describes an RGBA8 image ready for upload.
type TextureDesc struct {
	Width, Height        int
	Pixels               []byte // tightly packed RGBA8, bottom row first
	MinFilter, MagFilter string // "nearest" | "linear"
	WrapU, WrapV         string // "clamp" | "repeat"
}
