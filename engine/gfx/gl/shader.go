package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"
)

// Shader is a linked vertex+fragment program. A shader whose build failed
// has program 0; binding it and setting uniforms are then no-ops.
type Shader struct {
	name     string
	program  uint32
	uniforms map[string]int32
}

// NewShader compiles and links the two stages. Failures are logged with the
// driver's info log and produce an invalid (program 0) shader.
func NewShader(name, vertexSrc, fragmentSrc string) *Shader {
	s := &Shader{name: name, uniforms: map[string]int32{}}
	prog, err := makeProgram(vertexSrc, fragmentSrc)
	if err != nil {
		log.Error().Err(err).Str("shader", name).Msg("shader build failed")
		return s
	}
	s.program = prog
	return s
}

func (s *Shader) Valid() bool { return s.program != 0 }

func (s *Shader) Bind() {
	if s.program == 0 {
		return
	}
	call("glUseProgram", func() { gl.UseProgram(s.program) })
}

func (s *Shader) Unbind() { call("glUseProgram", func() { gl.UseProgram(0) }) }

func (s *Shader) Release() {
	if s.program != 0 {
		call("glDeleteProgram", func() { gl.DeleteProgram(s.program) })
		s.program = 0
	}
}

func (s *Shader) SetUniform1i(name string, v int32) {
	if loc := s.location(name); loc >= 0 {
		call("glUniform1i", func() { gl.Uniform1i(loc, v) })
	}
}

func (s *Shader) SetUniform1f(name string, v float32) {
	if loc := s.location(name); loc >= 0 {
		call("glUniform1f", func() { gl.Uniform1f(loc, v) })
	}
}

func (s *Shader) SetUniform4f(name string, v0, v1, v2, v3 float32) {
	if loc := s.location(name); loc >= 0 {
		call("glUniform4f", func() { gl.Uniform4f(loc, v0, v1, v2, v3) })
	}
}

func (s *Shader) SetUniformMat4(name string, m mgl32.Mat4) {
	if loc := s.location(name); loc >= 0 {
		call("glUniformMatrix4fv", func() { gl.UniformMatrix4fv(loc, 1, false, &m[0]) })
	}
}

// location resolves and caches a uniform location. Missing uniforms are
// logged once and cached as -1.
func (s *Shader) location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := int32(-1)
	if s.program != 0 {
		call("glGetUniformLocation", func() { loc = gl.GetUniformLocation(s.program, gl.Str(name+"\x00")) })
	}
	if loc < 0 {
		log.Warn().Str("shader", s.name).Str("uniform", name).Msg("uniform doesn't exist")
	}
	s.uniforms[name] = loc
	return loc
}

// --- compile utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	var sh uint32
	call("glCreateShader", func() { sh = gl.CreateShader(shaderType) })
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	call("glShaderSource", func() { gl.ShaderSource(sh, 1, csrc, nil) })
	call("glCompileShader", func() { gl.CompileShader(sh) })

	var status int32
	call("glGetShaderiv", func() { gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status) })
	if status == gl.FALSE {
		var logLen int32
		call("glGetShaderiv", func() { gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen) })
		info := strings.Repeat("\x00", int(logLen+1))
		call("glGetShaderInfoLog", func() { gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(info)) })
		call("glDeleteShader", func() { gl.DeleteShader(sh) })
		return 0, fmt.Errorf("compile %s shader: %s", stageName(shaderType), strings.TrimRight(info, "\x00\n"))
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		call("glDeleteShader", func() { gl.DeleteShader(vs) })
		return 0, err
	}
	var prog uint32
	call("glCreateProgram", func() { prog = gl.CreateProgram() })
	call("glAttachShader", func() { gl.AttachShader(prog, vs) })
	call("glAttachShader", func() { gl.AttachShader(prog, fs) })
	call("glLinkProgram", func() { gl.LinkProgram(prog) })
	call("glValidateProgram", func() { gl.ValidateProgram(prog) })

	var status int32
	call("glGetProgramiv", func() { gl.GetProgramiv(prog, gl.LINK_STATUS, &status) })
	call("glDeleteShader", func() { gl.DeleteShader(vs) })
	call("glDeleteShader", func() { gl.DeleteShader(fs) })

	if status == gl.FALSE {
		var logLen int32
		call("glGetProgramiv", func() { gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen) })
		info := strings.Repeat("\x00", int(logLen+1))
		call("glGetProgramInfoLog", func() { gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(info)) })
		call("glDeleteProgram", func() { gl.DeleteProgram(prog) })
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(info, "\x00\n"))
	}
	return prog, nil
}

func stageName(shaderType uint32) string {
	if shaderType == gl.VERTEX_SHADER {
		return "vertex"
	}
	return "fragment"
}
