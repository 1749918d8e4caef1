package graphics

import cache "github.com/richinsley/goglprog/cache"

// Context defines the interface for a rendering context owner: the
// window (or offscreen surface) that owns the GL context and the
// program cache bound to it.
type Context interface {
	MakeCurrent() error
	Shutdown()
	ShouldClose() bool
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	// ShaderCache returns the program cache for this context.
	ShaderCache() *cache.ProgramCache
}
