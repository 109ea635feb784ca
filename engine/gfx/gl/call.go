package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/rs/zerolog/log"
)

var debugChecks bool

// EnableDebugChecks turns on glGetError checks around every wrapped call.
// The first error aborts the process.
func EnableDebugChecks(on bool) { debugChecks = on }

// call runs fn, checking GL errors around it when debug checks are on.
func call(name string, fn func()) {
	if !debugChecks {
		fn()
		return
	}
	for gl.GetError() != gl.NO_ERROR {
	}
	fn()
	if code := gl.GetError(); code != gl.NO_ERROR {
		log.Fatal().Str("call", name).Str("error", errorName(code)).Msg("OpenGL error")
	}
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%04X", code)
	}
}
