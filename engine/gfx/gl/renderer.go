package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/render3d/engine/core"
)

// Renderer issues clears and indexed draws.
type Renderer struct {
	win core.Window
}

func NewRenderer(win core.Window, cfg core.Config) (*Renderer, error) {
	EnableDebugChecks(cfg.GLDebug)
	r := &Renderer{win: win}
	r.Init()
	return r, nil
}

func (r *Renderer) Init() {
	call("glEnable", func() { gl.Enable(gl.BLEND) })
	call("glBlendFunc", func() { gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA) })
	call("glEnable", func() { gl.Enable(gl.DEPTH_TEST) })
}

func (r *Renderer) Shutdown() {}

func (r *Renderer) Resize(w, h int) {
	call("glViewport", func() { gl.Viewport(0, 0, int32(w), int32(h)) })
}

func (r *Renderer) Clear(rf, gf, bf, af float32) {
	call("glClearColor", func() { gl.ClearColor(rf, gf, bf, af) })
	call("glClear", func() { gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT) })
}

// Draw binds all three objects and draws ib's triangles.
func (r *Renderer) Draw(va *VertexArray, ib *IndexBuffer, shader *Shader) {
	shader.Bind()
	va.Bind()
	ib.Bind()
	call("glDrawElements", func() { gl.DrawElements(gl.TRIANGLES, ib.Count(), gl.UNSIGNED_INT, nil) })
}

// DrawMesh draws m with shader.
func (r *Renderer) DrawMesh(m *Mesh, shader *Shader) { r.Draw(m.VA, m.IB, shader) }

func (r *Renderer) GPUVendor() string   { return glString(gl.VENDOR) }
func (r *Renderer) GPURenderer() string { return glString(gl.RENDERER) }
func (r *Renderer) GPUVersion() string  { return glString(gl.VERSION) }

func glString(name uint32) string {
	var p *uint8
	call("glGetString", func() { p = gl.GetString(name) })
	if p == nil {
		return ""
	}
	return gl.GoStr(p)
}
