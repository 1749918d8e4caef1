package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"runtime"

	gogl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	glfwcontext "github.com/richinsley/goglprog/glfwcontext"
	graphics "github.com/richinsley/goglprog/graphics"
	options "github.com/richinsley/goglprog/options"
	program "github.com/richinsley/goglprog/program"
	shader "github.com/richinsley/goglprog/shader"
)

func init() {
	runtime.LockOSThread()
}

func run(opts *options.ContextOptions) error {
	ctx, err := glfwcontext.New(*opts.Width, *opts.Height, *opts.Title, *opts.Visible, nil)
	if err != nil {
		return fmt.Errorf("failed to create context: %w", err)
	}
	defer ctx.Shutdown()

	if err := ctx.MakeCurrent(); err != nil {
		return err
	}
	return renderLoop(ctx, *opts.Duration)
}

func renderLoop(ctx graphics.Context, duration float64) error {
	p, err := ctx.ShaderCache().ReadyProgram(shader.DemoVertexShader(), shader.DemoFragmentShader())
	if err != nil {
		return fmt.Errorf("failed to build demo program: %w", err)
	}
	log.Printf("demo program ready (hash %s)", p.Hash())

	positions := []float32{
		-0.6, -0.5,
		0.6, -0.5,
		0.0, 0.6,
	}
	colors := []float32{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}

	var vao uint32
	gogl.GenVertexArrays(1, &vao)
	gogl.BindVertexArray(vao)

	var posVBO, colorVBO uint32
	gogl.GenBuffers(1, &posVBO)
	gogl.BindBuffer(gogl.ARRAY_BUFFER, posVBO)
	gogl.BufferData(gogl.ARRAY_BUFFER, len(positions)*4, gogl.Ptr(positions), gogl.STATIC_DRAW)
	if err := p.EnableAttributeArray("position"); err != nil {
		return err
	}
	if err := p.UseAttributeArray("position", 0, 0, program.TypeFloat32, 2, program.NoNormalize); err != nil {
		return err
	}

	gogl.GenBuffers(1, &colorVBO)
	gogl.BindBuffer(gogl.ARRAY_BUFFER, colorVBO)
	gogl.BufferData(gogl.ARRAY_BUFFER, len(colors)*4, gogl.Ptr(colors), gogl.STATIC_DRAW)
	if err := p.EnableAttributeArray("color"); err != nil {
		return err
	}
	if err := p.UseAttributeArray("color", 0, 0, program.TypeFloat32, 3, program.NoNormalize); err != nil {
		return err
	}

	startTime := ctx.Time()
	for !ctx.ShouldClose() {
		t := ctx.Time() - startTime
		if duration > 0 && t >= duration {
			break
		}

		width, height := ctx.GetFramebufferSize()
		gogl.Viewport(0, 0, int32(width), int32(height))
		gogl.ClearColor(0.1, 0.1, 0.1, 1.0)
		gogl.Clear(gogl.COLOR_BUFFER_BIT)

		if err := p.SetUniformMatrix4("transform", mgl32.HomogRotate3DZ(float32(t))); err != nil {
			return err
		}
		brightness := float32(0.75 + 0.25*math.Sin(t*2))
		if err := p.SetUniformf("brightness", brightness); err != nil {
			return err
		}

		gogl.BindVertexArray(vao)
		gogl.DrawArrays(gogl.TRIANGLES, 0, 3)
		ctx.EndFrame()
	}

	gogl.DeleteBuffers(1, &posVBO)
	gogl.DeleteBuffers(1, &colorVBO)
	gogl.DeleteVertexArrays(1, &vao)
	return nil
}

func main() {
	opts := &options.ContextOptions{
		Width:    flag.Int("width", 1280, "Width of the window"),
		Height:   flag.Int("height", 720, "Height of the window"),
		Title:    flag.String("title", "goglprog demo", "Window title"),
		Duration: flag.Float64("duration", 0, "Seconds to run; 0 runs until the window closes"),
		Visible:  flag.Bool("visible", true, "Show the window"),
	}
	flag.Parse()

	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("Failed to initialize graphics: %v", err)
	}
	defer glfwcontext.TerminateGraphics()

	if err := run(opts); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
}
