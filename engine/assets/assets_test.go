package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simpleShader = `// leading comment is dropped
#shader vertex
#version 330 core
void main() {}
#shader fragment
#version 330 core
out vec4 color;
#shader geometry
ignored
`

func TestParseShader(t *testing.T) {
	src := ParseShader(simpleShader)
	assert.Equal(t, "#version 330 core\nvoid main() {}\n", src.Vertex)
	assert.Equal(t, "#version 330 core\nout vec4 color;\n", src.Fragment)
}

func TestParseShaderMissingStage(t *testing.T) {
	src := ParseShader("#shader fragment\nvoid main() {}\n")
	assert.Empty(t, src.Vertex)
	assert.Equal(t, "void main() {}\n", src.Fragment)
}

func TestParseShaderLongLine(t *testing.T) {
	long := "// " + strings.Repeat("x", 70000)
	src := ParseShader("#shader vertex\n" + long + "\nvoid main() {}\n#shader fragment\r\nout vec4 color;\r\n")
	assert.Equal(t, long+"\nvoid main() {}\n", src.Vertex)
	assert.Equal(t, "out vec4 color;\n", src.Fragment)
}

func TestParseShaderNoTrailingNewline(t *testing.T) {
	src := ParseShader("#shader fragment\nvoid main() {}")
	assert.Equal(t, "void main() {}\n", src.Fragment)
}

func TestLoadShader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Simple.shader")
	require.NoError(t, os.WriteFile(path, []byte(simpleShader), 0o644))

	src, err := LoadShader(path)
	require.NoError(t, err)
	assert.Contains(t, src.Vertex, "void main")

	_, err = LoadShader(filepath.Join(t.TempDir(), "missing.shader"))
	assert.Error(t, err)
}

func TestLoadPNGFlipsRows(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	top := color.NRGBA{R: 255, A: 255}
	bottom := color.NRGBA{B: 255, A: 255}
	img.Set(0, 0, top)
	img.Set(1, 0, top)
	img.Set(0, 1, bottom)
	img.Set(1, 1, bottom)

	path := filepath.Join(t.TempDir(), "tile.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	got, err := LoadPNG(path)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Width)
	assert.Equal(t, 2, got.Height)
	require.Len(t, got.Pixels, 2*2*BytesPerPixel)

	// First row in memory is the image's bottom row.
	assert.Equal(t, []byte{0, 0, 255, 255}, got.Pixels[0:4])
	assert.Equal(t, []byte{255, 0, 0, 255}, got.Pixels[8:12])
}

func TestFromImageOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 8, 6))
	got := FromImage(img)
	assert.Equal(t, 3, got.Width)
	assert.Equal(t, 1, got.Height)
	assert.Len(t, got.Pixels, 3*BytesPerPixel)
}

func TestLoadPNGErrors(t *testing.T) {
	_, err := LoadPNG(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))
	_, err = LoadPNG(path)
	assert.ErrorContains(t, err, "decode png")
}

func TestBundledResources(t *testing.T) {
	src, err := LoadShader(filepath.Join("..", "..", "res", "shaders", "Simple.shader"))
	require.NoError(t, err)
	assert.Contains(t, src.Vertex, "uniform mat4 u_MVP;")
	assert.Contains(t, src.Fragment, "uniform vec4 u_Color;")
	assert.Contains(t, src.Fragment, "uniform sampler2D u_Texture;")
	assert.NotContains(t, src.Vertex, "#shader")

	img, err := LoadPNG(filepath.Join("..", "..", "res", "textures", "Tile.png"))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Width)
	assert.Equal(t, 64, img.Height)
	assert.Len(t, img.Pixels, 64*64*BytesPerPixel)
}
