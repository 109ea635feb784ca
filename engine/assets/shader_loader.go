package assets

import (
	"fmt"
	"os"
	"strings"
)

// ShaderSource holds the per-stage GLSL split out of one annotated file.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

const shaderMarker = "#shader"

// LoadShader reads a .shader file with "#shader vertex" and
// "#shader fragment" sections.
func LoadShader(path string) (ShaderSource, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("load shader %q: %w", path, err)
	}
	return ParseShader(string(b)), nil
}

// ParseShader splits src at #shader markers. Lines before the first marker
// or under an unknown stage are dropped. Line length is unbounded.
func ParseShader(src string) ShaderSource {
	const (
		none = iota
		vertex
		fragment
	)
	var sb [3]strings.Builder
	mode := none

	for line := range strings.Lines(src) {
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.HasPrefix(strings.TrimSpace(line), shaderMarker) {
			switch stage := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), shaderMarker)); stage {
			case "vertex":
				mode = vertex
			case "fragment":
				mode = fragment
			default:
				mode = none
			}
			continue
		}
		if mode == none {
			continue
		}
		sb[mode].WriteString(line)
		sb[mode].WriteByte('\n')
	}
	return ShaderSource{Vertex: sb[vertex].String(), Fragment: sb[fragment].String()}
}
