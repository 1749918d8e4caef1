// Package shader wraps a single GPU shader object: its stage, source
// text, and native handle. Programs drive compilation through the
// compile contract and read back the handle and log.
package shader

import (
	"fmt"

	gl "github.com/richinsley/goglprog/gl"
	translator "github.com/richinsley/goglprog/translator"
	gst "github.com/richinsley/goshadertranslator"
)

// Type identifies the pipeline stage a shader belongs to.
type Type int

const (
	Unknown Type = iota
	Vertex
	Fragment
	Geometry
)

func (t Type) String() string {
	switch t {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	case Geometry:
		return "geometry"
	default:
		return "unknown"
	}
}

func (t Type) glEnum() gl.Enum {
	switch t {
	case Vertex:
		return gl.VERTEX_SHADER
	case Fragment:
		return gl.FRAGMENT_SHADER
	case Geometry:
		return gl.GEOMETRY_SHADER
	default:
		return 0
	}
}

// Shader is a single shader object. A zero handle means the shader
// has not been compiled yet.
type Shader struct {
	fns    gl.Functions
	typ    Type
	source string
	handle uint32
	log    string
}

func New(fns gl.Functions, typ Type) *Shader {
	return &Shader{fns: fns, typ: typ}
}

func (s *Shader) SetSource(src string) { s.source = src }
func (s *Shader) Source() string       { return s.source }
func (s *Shader) Handle() uint32       { return s.handle }
func (s *Shader) Type() Type           { return s.typ }

// Error returns the info log captured by the last failed Compile.
func (s *Shader) Error() string { return s.log }

// Compile creates the native shader object, uploads the source and
// compiles it. On failure the half-built object is deleted, the info
// log is retained for Error, and the handle stays 0.
func (s *Shader) Compile() error {
	if s.typ == Unknown {
		return fmt.Errorf("cannot compile a shader of unknown type")
	}
	if s.source == "" {
		return fmt.Errorf("cannot compile %s shader with no source", s.typ)
	}

	// Recompiling after SetSource replaces the old object.
	s.Cleanup()

	handle := s.fns.CreateShader(s.typ.glEnum())
	if handle == 0 {
		return fmt.Errorf("could not create %s shader object", s.typ)
	}
	s.fns.ShaderSource(handle, s.source)
	s.fns.CompileShader(handle)

	if s.fns.GetShaderi(handle, gl.COMPILE_STATUS) == gl.FALSE {
		s.log = ""
		if s.fns.GetShaderi(handle, gl.INFO_LOG_LENGTH) > 1 {
			s.log = s.fns.GetShaderInfoLog(handle)
		}
		s.fns.DeleteShader(handle)
		return fmt.Errorf("failed to compile %s shader: %s", s.typ, s.log)
	}

	s.handle = handle
	s.log = ""
	return nil
}

// Cleanup releases the native shader object. Safe to call on a
// never-compiled shader, and more than once.
func (s *Shader) Cleanup() {
	if s.handle != 0 {
		s.fns.DeleteShader(s.handle)
		s.handle = 0
	}
}

// TranslateWebGL rewrites a WebGL2-dialect source into desktop
// GLSL 330 before compilation, using the ANGLE-based translator.
func (s *Shader) TranslateWebGL() error {
	t, err := translator.Get()
	if err != nil {
		return fmt.Errorf("shader translator unavailable: %w", err)
	}
	var stage string
	switch s.typ {
	case Vertex:
		stage = "vertex"
	case Fragment:
		stage = "fragment"
	default:
		return fmt.Errorf("cannot translate %s shader", s.typ)
	}
	out, err := t.TranslateShader(s.source, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL330)
	if err != nil {
		return fmt.Errorf("%s shader translation failed: %w", s.typ, err)
	}
	s.source = out.Code
	return nil
}
