package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/render3d/engine/assets"
	"github.com/hubastard/render3d/engine/colors"
	"github.com/hubastard/render3d/engine/core"
	glbackend "github.com/hubastard/render3d/engine/gfx/gl"
	"github.com/hubastard/render3d/engine/scene"
	"github.com/rs/zerolog/log"
)

// SceneLayer draws one demo scene under the free camera.
type SceneLayer struct {
	demo        scene.Demo
	r           *glbackend.Renderer
	shaderPath  string
	texturePath string
	tint        colors.Color
	camParams   scene.CameraParams

	shader *glbackend.Shader
	tex    *glbackend.Texture
	meshes []*glbackend.Mesh
	cam    *scene.FreeCamera
	ctrl   *scene.CameraController
}

func (l *SceneLayer) OnAttach(e *core.Engine) {
	src, err := assets.LoadShader(l.shaderPath)
	if err != nil {
		log.Error().Err(err).Msg("shader unavailable, drawing with no program")
	}
	l.shader = glbackend.NewShader(l.shaderPath, src.Vertex, src.Fragment)

	if l.demo.Textured {
		l.tex = loadTexture(l.texturePath)
	}

	for _, md := range l.demo.Meshes {
		l.meshes = append(l.meshes, glbackend.NewMesh(md))
	}

	w, h := e.Window.FramebufferSize()
	aspect := float32(4.0 / 3.0)
	if w > 0 && h > 0 {
		aspect = float32(w) / float32(h)
	}
	l.cam = scene.NewFreeCamera(l.camParams, aspect)
	l.ctrl = scene.NewCameraController(l.cam)

	log.Info().Str("scene", l.demo.Name).Int("meshes", len(l.meshes)).Bool("shader", l.shader.Valid()).Bool("textured", l.tex != nil).Msg("scene ready")
}

// loadTexture returns nil when the image can't be used; the scene is then
// drawn in its tint color only.
func loadTexture(path string) *glbackend.Texture {
	img, err := assets.LoadPNG(path)
	if err != nil {
		log.Warn().Err(err).Msg("texture unavailable")
		return nil
	}
	tex, err := glbackend.NewTexture(core.TextureDesc{
		Width:     img.Width,
		Height:    img.Height,
		Pixels:    img.Pixels,
		MinFilter: "linear",
		MagFilter: "linear",
		WrapU:     "repeat",
		WrapV:     "repeat",
	})
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("texture upload failed")
		return nil
	}
	return tex
}

// Release in reverse acquisition order.
func (l *SceneLayer) OnDetach(e *core.Engine) {
	for i := len(l.meshes) - 1; i >= 0; i-- {
		l.meshes[i].Release()
	}
	l.meshes = nil
	if l.tex != nil {
		l.tex.Release()
	}
	l.shader.Release()
}

func (l *SceneLayer) OnUpdate(e *core.Engine) {
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
	l.ctrl.Update(e.Input)
}

func (l *SceneLayer) OnRender(e *core.Engine) {
	l.shader.Bind()
	if l.tex != nil {
		l.tex.Bind(0)
		l.shader.SetUniform1i("u_Texture", 0)
		l.shader.SetUniform1i("u_UseTexture", 1)
	} else {
		l.shader.SetUniform1i("u_UseTexture", 0)
	}
	l.shader.SetUniform4f("u_Color", l.tint[0], l.tint[1], l.tint[2], l.tint[3])

	mvp := mgl32.Ident4()
	if l.demo.UseCamera {
		mvp = l.cam.ViewProjection()
	}
	l.shader.SetUniformMat4("u_MVP", mvp)

	for _, m := range l.meshes {
		l.r.DrawMesh(m, l.shader)
	}
}

func (l *SceneLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventResize); ok {
		l.cam.SetViewportPixels(v.W, v.H)
	}
	return false
}
