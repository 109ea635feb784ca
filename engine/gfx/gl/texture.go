package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/render3d/engine/core"
)

// Texture owns one GL_TEXTURE_2D. Pixels are not retained after upload.
type Texture struct {
	id            uint32
	width, height int
	bpp           int
}

func NewTexture(desc core.TextureDesc) (*Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("texture: invalid size %dx%d", desc.Width, desc.Height)
	}
	if len(desc.Pixels) != desc.Width*desc.Height*4 {
		return nil, fmt.Errorf("texture: got %d bytes, want %d", len(desc.Pixels), desc.Width*desc.Height*4)
	}

	t := &Texture{width: desc.Width, height: desc.Height, bpp: 4}
	call("glGenTextures", func() { gl.GenTextures(1, &t.id) })
	t.Bind(0)

	call("glTexParameteri", func() {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filterMode(desc.MinFilter))
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filterMode(desc.MagFilter))
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapMode(desc.WrapU))
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapMode(desc.WrapV))
	})
	call("glTexImage2D", func() {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))
	})
	t.Unbind()
	return t, nil
}

func (t *Texture) Width() int         { return t.width }
func (t *Texture) Height() int        { return t.height }
func (t *Texture) BytesPerPixel() int { return t.bpp }

// Bind activates texture unit slot and binds t to it.
func (t *Texture) Bind(slot uint32) {
	call("glActiveTexture", func() { gl.ActiveTexture(gl.TEXTURE0 + slot) })
	call("glBindTexture", func() { gl.BindTexture(gl.TEXTURE_2D, t.id) })
}

func (t *Texture) Unbind() { call("glBindTexture", func() { gl.BindTexture(gl.TEXTURE_2D, 0) }) }

func (t *Texture) Release() {
	if t.id != 0 {
		call("glDeleteTextures", func() { gl.DeleteTextures(1, &t.id) })
		t.id = 0
	}
}

func filterMode(s string) int32 {
	if s == "nearest" {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func wrapMode(s string) int32 {
	if s == "repeat" {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}
