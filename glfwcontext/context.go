// Package glfwcontext owns a GLFW window and the GL context attached
// to it, together with the context's program cache.
package glfwcontext

import (
	"fmt"
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	cache "github.com/richinsley/goglprog/cache"
	gl "github.com/richinsley/goglprog/gl"
)

type Context struct {
	window      *glfw.Window
	fns         gl.Functions
	shaderCache *cache.ProgramCache
	initialized bool
	// Functions to be called on key presses.
	keyCallbacks map[glfw.Key]func()
}

// New creates a GLFW window with a 4.1 core-profile context. share
// may be another *glfw.Window to share GL objects with, or nil.
func New(width, height int, title string, visible bool, share interface{}) (*Context, error) {
	sharecontext, _ := share.(*glfw.Window)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(width, height, title, nil, sharecontext)
	if err != nil {
		return nil, err
	}

	c := &Context{
		window:       win,
		keyCallbacks: make(map[glfw.Key]func()),
	}
	win.SetKeyCallback(c.glfwKeyCallback)
	return c, nil
}

// RegisterKeyCallback registers a function to be called when a
// specific key is pressed.
func (c *Context) RegisterKeyCallback(key glfw.Key, f func()) {
	c.keyCallbacks[key] = f
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
	if action == glfw.Press {
		if callback, ok := c.keyCallbacks[key]; ok {
			callback()
		}
	}
}

// MakeCurrent binds the context to the calling goroutine's thread and
// loads the GL function pointers on first use.
func (c *Context) MakeCurrent() error {
	c.window.MakeContextCurrent()
	if !c.initialized {
		if err := gl.Init(); err != nil {
			return fmt.Errorf("failed to initialize OpenGL bindings: %w", err)
		}
		c.fns = gl.NewFunctions()
		c.shaderCache = cache.New(c.fns)
		c.initialized = true
	}
	return nil
}

// DetachCurrent makes no context current on the calling thread.
func (c *Context) DetachCurrent() {
	glfw.DetachCurrentContext()
}

// Functions returns the GL call surface for this context. Valid after
// MakeCurrent.
func (c *Context) Functions() gl.Functions {
	return c.fns
}

// ShaderCache returns the program cache for this context. Valid after
// MakeCurrent.
func (c *Context) ShaderCache() *cache.ProgramCache {
	return c.shaderCache
}

// Shutdown releases every cached program's GPU resources and destroys
// the window.
func (c *Context) Shutdown() {
	if c.shaderCache != nil {
		c.shaderCache.ReleaseGraphicsResources()
	}
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// Window returns the underlying *glfw.Window for context sharing.
func (c *Context) Window() *glfw.Window {
	return c.window
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main
// thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
