// Package program manages GPU shader program objects: attaching
// compiled shaders, linking, binding, and resolving the attribute and
// uniform names client code binds vertex data and constants to.
//
// A Program is tied to the rendering context current on the calling
// thread. It is not safe for concurrent use; callers must serialize
// all operations on a program (and on the context) to one thread.
package program

import (
	"fmt"
	"strings"

	gl "github.com/richinsley/goglprog/gl"
	shader "github.com/richinsley/goglprog/shader"
)

// ReleaseNotifier is told when a program's GPU resources are torn
// down, so collaborators holding a reference to it (the program
// cache's last-bound slot) can drop it before the handle is deleted.
type ReleaseNotifier interface {
	NotifyProgramReleased(p *Program)
}

// Program owns one shader per stage and a native program object.
// The stage shaders exist from construction; the native program is
// created lazily on the first attach.
type Program struct {
	fns gl.Functions

	vertexShader   *shader.Shader
	fragmentShader *shader.Shader
	// Reserved; geometry stages cannot be attached yet.
	geometryShader *shader.Shader

	handle uint32
	// Native handles of the shaders currently attached, tracked per
	// stage to detect stale attachments.
	vertexShaderHandle   uint32
	fragmentShaderHandle uint32

	linked   bool
	bound    bool
	compiled bool

	// Lazily populated name resolution caches, valid only while
	// linked.
	attributes map[string]int32
	uniforms   map[string]int32

	// Content hash of the shader sources, set by the program cache as
	// its lookup key. Not computed here.
	hash string
}

// New creates a program with fresh, uncompiled stage shaders.
func New(fns gl.Functions) *Program {
	return &Program{
		fns:            fns,
		vertexShader:   shader.New(fns, shader.Vertex),
		fragmentShader: shader.New(fns, shader.Fragment),
		geometryShader: shader.New(fns, shader.Geometry),
		attributes:     make(map[string]int32),
		uniforms:       make(map[string]int32),
	}
}

func (p *Program) VertexShader() *shader.Shader   { return p.vertexShader }
func (p *Program) FragmentShader() *shader.Shader { return p.fragmentShader }
func (p *Program) GeometryShader() *shader.Shader { return p.geometryShader }

// Handle returns the native program object, 0 if none exists yet.
func (p *Program) Handle() uint32 { return p.handle }

func (p *Program) IsLinked() bool   { return p.linked }
func (p *Program) IsBound() bool    { return p.bound }
func (p *Program) IsCompiled() bool { return p.compiled }

// SetHash records the content hash an external cache keys this
// program under.
func (p *Program) SetHash(hash string) { p.hash = hash }
func (p *Program) Hash() string        { return p.hash }

// AttachShader attaches a compiled shader to the program, creating
// the native program object if needed. A shader already attached for
// the same stage is detached first. Any prior link result becomes
// stale.
func (p *Program) AttachShader(s *shader.Shader) error {
	if s.Handle() == 0 {
		return fmt.Errorf("%w: shader object was not initialized, cannot attach it", ErrInvalidShader)
	}
	if s.Type() == shader.Unknown {
		return fmt.Errorf("%w: shader object is of unknown type and cannot be used", ErrInvalidShader)
	}

	if p.handle == 0 {
		handle := p.fns.CreateProgram()
		if handle == 0 {
			return ErrProgramCreation
		}
		p.handle = handle
		p.linked = false
	}

	switch s.Type() {
	case shader.Vertex:
		if p.vertexShaderHandle != 0 {
			p.fns.DetachShader(p.handle, p.vertexShaderHandle)
		}
		p.vertexShaderHandle = s.Handle()
	case shader.Fragment:
		if p.fragmentShaderHandle != 0 {
			p.fns.DetachShader(p.handle, p.fragmentShaderHandle)
		}
		p.fragmentShaderHandle = s.Handle()
	default:
		return fmt.Errorf("%w: %s shaders cannot be attached", ErrInvalidShader, s.Type())
	}

	p.fns.AttachShader(p.handle, s.Handle())
	p.linked = false
	return nil
}

// DetachShader detaches the shader currently attached for the given
// shader's stage. The supplied shader must be the attached one.
func (p *Program) DetachShader(s *shader.Shader) error {
	if s.Handle() == 0 {
		return fmt.Errorf("%w: shader object was not initialized, cannot detach it", ErrInvalidShader)
	}
	if s.Type() == shader.Unknown {
		return fmt.Errorf("%w: shader object is of unknown type and cannot be used", ErrInvalidShader)
	}
	if p.handle == 0 {
		return fmt.Errorf("%w: no native program to detach from", ErrNotInitialized)
	}

	switch s.Type() {
	case shader.Vertex:
		if p.vertexShaderHandle != s.Handle() {
			return ErrNotAttached
		}
		p.fns.DetachShader(p.handle, s.Handle())
		p.vertexShaderHandle = 0
	case shader.Fragment:
		if p.fragmentShaderHandle != s.Handle() {
			return ErrNotAttached
		}
		p.fns.DetachShader(p.handle, s.Handle())
		p.fragmentShaderHandle = 0
	default:
		return fmt.Errorf("%w: %s shaders cannot be detached", ErrInvalidShader, s.Type())
	}

	p.linked = false
	return nil
}

// Link links the attached shaders into an executable program. A
// program that is already linked is left alone. Missing stages are
// not checked here; the native link reports them. A successful link
// invalidates the name resolution caches.
func (p *Program) Link() error {
	if p.linked {
		return nil
	}
	if p.handle == 0 {
		return fmt.Errorf("%w: program has no handle and/or no shaders", ErrNotInitialized)
	}

	p.fns.LinkProgram(p.handle)
	if p.fns.GetProgrami(p.handle, gl.LINK_STATUS) == gl.FALSE {
		log := ""
		if p.fns.GetProgrami(p.handle, gl.INFO_LOG_LENGTH) > 1 {
			log = p.fns.GetProgramInfoLog(p.handle)
		}
		return fmt.Errorf("%w: %s", ErrLink, log)
	}

	p.linked = true
	p.attributes = make(map[string]int32)
	p.uniforms = make(map[string]int32)
	return nil
}

// Bind makes this the active program on the current context, linking
// first if needed. Safe to call repeatedly.
func (p *Program) Bind() error {
	if !p.linked {
		if err := p.Link(); err != nil {
			return err
		}
	}
	p.fns.UseProgram(p.handle)
	p.bound = true
	return nil
}

// Release detaches the program from the context. Safe to call even
// if the program was never bound.
func (p *Program) Release() {
	p.fns.UseProgram(0)
	p.bound = false
}

// CompileShader drives both stage shaders through compilation, then
// attaches and links them. The first failure aborts the sequence: a
// compile failure surfaces the shader's own log together with a
// line-numbered listing of its source.
func (p *Program) CompileShader() error {
	for _, s := range []*shader.Shader{p.vertexShader, p.fragmentShader} {
		if err := s.Compile(); err != nil {
			// Stages compiled before the failure are of no use without
			// the rest; drop their native objects.
			p.vertexShader.Cleanup()
			p.fragmentShader.Cleanup()
			return fmt.Errorf("%w: %v\n%s", ErrCompile, err, numberedListing(s.Source()))
		}
	}
	if err := p.AttachShader(p.vertexShader); err != nil {
		return err
	}
	if err := p.AttachShader(p.fragmentShader); err != nil {
		return err
	}
	if err := p.Link(); err != nil {
		return err
	}
	p.compiled = true
	return nil
}

// numberedListing prefixes each source line with its 1-based number
// for compile diagnostics.
func numberedListing(source string) string {
	var sb strings.Builder
	for i, line := range strings.Split(source, "\n") {
		fmt.Fprintf(&sb, "%d: %s\n", i+1, line)
	}
	return sb.String()
}

// ReleaseGraphicsResources tears down everything this program holds
// on the GPU: unbinds, detaches and cleans up the stage shaders,
// tells the notifier (the program cache) to drop any reference to
// this program, and deletes the native program object. Idempotent
// and safe on a never-initialized program. notifier may be nil.
func (p *Program) ReleaseGraphicsResources(notifier ReleaseNotifier) {
	p.Release()

	if p.compiled {
		// The shaders may already be detached or gone; a failed detach
		// here is not actionable.
		_ = p.DetachShader(p.vertexShader)
		_ = p.DetachShader(p.fragmentShader)
		p.vertexShader.Cleanup()
		p.fragmentShader.Cleanup()
		p.compiled = false
	}

	if notifier != nil {
		notifier.NotifyProgramReleased(p)
	}

	if p.handle != 0 {
		p.fns.DeleteProgram(p.handle)
		p.handle = 0
		p.linked = false
	}
}

// FindAttributeArray resolves an attribute name to its location,
// caching the result until the next relink. Returns -1 with an error
// when the name is empty, the program is not linked, or the linked
// program has no such attribute. No native call is issued for the
// first two cases.
func (p *Program) FindAttributeArray(name string) (int32, error) {
	if name == "" {
		return -1, fmt.Errorf("cannot look up attribute with an empty name")
	}
	if !p.linked {
		return -1, fmt.Errorf("cannot look up attribute %q: program is not linked", name)
	}
	if loc, ok := p.attributes[name]; ok {
		return loc, nil
	}
	loc := p.fns.GetAttribLocation(p.handle, name)
	if loc == -1 {
		return -1, fmt.Errorf("%w: attribute %q", ErrNameNotFound, name)
	}
	p.attributes[name] = loc
	return loc, nil
}

// FindUniform resolves a uniform name to its location, caching the
// result until the next relink. Same failure contract as
// FindAttributeArray.
func (p *Program) FindUniform(name string) (int32, error) {
	if name == "" {
		return -1, fmt.Errorf("cannot look up uniform with an empty name")
	}
	if !p.linked {
		return -1, fmt.Errorf("cannot look up uniform %q: program is not linked", name)
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc, nil
	}
	loc := p.fns.GetUniformLocation(p.handle, name)
	if loc == -1 {
		return -1, fmt.Errorf("%w: uniform %q", ErrNameNotFound, name)
	}
	p.uniforms[name] = loc
	return loc, nil
}
