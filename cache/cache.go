// Package cache keeps one compiled program per distinct pair of
// shader sources, keyed by a content hash, and tracks which program
// is currently bound so repeated binds of the same program skip the
// native call.
package cache

import (
	"crypto/md5"
	"encoding/hex"

	gl "github.com/richinsley/goglprog/gl"
	program "github.com/richinsley/goglprog/program"
)

// ProgramCache is tied to a single rendering context and, like the
// programs it holds, must only be used from the context's thread.
type ProgramCache struct {
	fns       gl.Functions
	programs  map[string]*program.Program
	lastBound *program.Program
}

func New(fns gl.Functions) *ProgramCache {
	return &ProgramCache{
		fns:      fns,
		programs: make(map[string]*program.Program),
	}
}

func hashSources(vertexSrc, fragmentSrc string) string {
	h := md5.New()
	h.Write([]byte(vertexSrc))
	h.Write([]byte(fragmentSrc))
	return hex.EncodeToString(h.Sum(nil))
}

// ReadyProgram returns a linked, bound program for the given sources,
// compiling one only when the source pair has not been seen before.
func (c *ProgramCache) ReadyProgram(vertexSrc, fragmentSrc string) (*program.Program, error) {
	hash := hashSources(vertexSrc, fragmentSrc)
	p, ok := c.programs[hash]
	if !ok {
		p = program.New(c.fns)
		p.VertexShader().SetSource(vertexSrc)
		p.FragmentShader().SetSource(fragmentSrc)
		if err := p.CompileShader(); err != nil {
			return nil, err
		}
		p.SetHash(hash)
		c.programs[hash] = p
	}
	if err := c.bind(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *ProgramCache) bind(p *program.Program) error {
	if c.lastBound == p && p.IsBound() {
		return nil
	}
	if err := p.Bind(); err != nil {
		return err
	}
	c.lastBound = p
	return nil
}

// LastBound returns the program most recently bound through the
// cache, or nil.
func (c *ProgramCache) LastBound() *program.Program { return c.lastBound }

func (c *ProgramCache) ClearLastBound() { c.lastBound = nil }

// NotifyProgramReleased implements program.ReleaseNotifier: a program
// tearing down its GPU resources must not stay referenced as the
// last-bound one.
func (c *ProgramCache) NotifyProgramReleased(p *program.Program) {
	if c.lastBound == p {
		c.lastBound = nil
	}
}

// ReleaseGraphicsResources tears down every cached program and
// empties the cache. Idempotent.
func (c *ProgramCache) ReleaseGraphicsResources() {
	for _, p := range c.programs {
		p.ReleaseGraphicsResources(c)
	}
	c.programs = make(map[string]*program.Program)
	c.lastBound = nil
}
