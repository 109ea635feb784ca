package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayoutPushFloat(t *testing.T) {
	var l VertexLayout
	l.PushFloat(3).PushFloat(2)

	assert.Equal(t, 20, l.Stride)
	assert.Equal(t, 5, l.Floats())
	require.Len(t, l.Attributes, 2)
	assert.Equal(t, VertexAttrib{Location: 0, Size: 3, Type: AttribFloat32, Offset: 0}, l.Attributes[0])
	assert.Equal(t, VertexAttrib{Location: 1, Size: 2, Type: AttribFloat32, Offset: 12}, l.Attributes[1])
}

func TestMeshDescVertexCount(t *testing.T) {
	var l VertexLayout
	l.PushFloat(2)
	m := MeshDesc{Vertices: []float32{0, 0, 1, 0, 1, 1, 0, 1}, Layout: l}
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 0, MeshDesc{Vertices: []float32{1, 2}}.VertexCount())
}

func TestInputIgnoresRepeat(t *testing.T) {
	in := NewInput()
	in.Handle(EventKey{Key: KeyW, Down: true})
	assert.True(t, in.IsKeyDown(KeyW))

	in.Handle(EventKey{Key: KeyW, Down: false})
	in.Handle(EventKey{Key: KeyW, Down: true, Repeat: true})
	assert.False(t, in.IsKeyDown(KeyW))
}

func TestInputFocusLossClearsKeys(t *testing.T) {
	in := NewInput()
	in.Handle(EventKey{Key: KeyA, Down: true})
	in.Handle(EventFocus{Focused: true})
	assert.True(t, in.IsKeyDown(KeyA))
	in.Handle(EventFocus{Focused: false})
	assert.False(t, in.IsKeyDown(KeyA))
}

type recLayer struct {
	name   string
	log    *[]string
	handle bool
}

func (r *recLayer) OnAttach(*Engine) {}
func (r *recLayer) OnDetach(*Engine) {}
func (r *recLayer) OnUpdate(*Engine) { *r.log = append(*r.log, "update:"+r.name) }
func (r *recLayer) OnRender(*Engine) {}
func (r *recLayer) OnEvent(*Engine, Event) bool {
	*r.log = append(*r.log, "event:"+r.name)
	return r.handle
}

func TestLayerStackOrder(t *testing.T) {
	var got []string
	var ls LayerStack
	ls.Push(&recLayer{name: "scene", log: &got})
	ls.Push(&recLayer{name: "overlay", log: &got, handle: true})
	require.Equal(t, 2, ls.Len())

	ls.ForEach(func(l Layer) { l.OnUpdate(nil) })
	ls.ForEachReverse(func(l Layer) bool { return l.OnEvent(nil, EventCloseRequested{}) })
	assert.Equal(t, []string{"update:scene", "update:overlay", "event:overlay"}, got)

	l, ok := ls.Pop()
	require.True(t, ok)
	assert.Equal(t, "overlay", l.(*recLayer).name)
	ls.Pop()
	_, ok = ls.Pop()
	assert.False(t, ok)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "LeftShift", KeyLeftShift.String())
	assert.Equal(t, "Unknown", Key(999).String())
}
