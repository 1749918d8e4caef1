package program

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform setters resolve the name, then issue the native upload with
// the typed payload. A failed lookup aborts before any native call.
// All of these require the program to be bound on the current
// context; that is a caller convention, not checked here.

func (p *Program) SetUniformi(name string, v int) error {
	loc, err := p.FindUniform(name)
	if err != nil {
		return fmt.Errorf("could not set uniform %q: %w", name, err)
	}
	p.fns.Uniform1i(loc, int32(v))
	return nil
}

func (p *Program) SetUniformf(name string, v float32) error {
	loc, err := p.FindUniform(name)
	if err != nil {
		return fmt.Errorf("could not set uniform %q: %w", name, err)
	}
	p.fns.Uniform1f(loc, v)
	return nil
}

func (p *Program) SetUniform2i(name string, v [2]int32) error {
	loc, err := p.FindUniform(name)
	if err != nil {
		return fmt.Errorf("could not set uniform %q: %w", name, err)
	}
	p.fns.Uniform2i(loc, v[0], v[1])
	return nil
}

func (p *Program) SetUniform2f(name string, v [2]float32) error {
	loc, err := p.FindUniform(name)
	if err != nil {
		return fmt.Errorf("could not set uniform %q: %w", name, err)
	}
	p.fns.Uniform2f(loc, v[0], v[1])
	return nil
}

func (p *Program) SetUniform3f(name string, v [3]float32) error {
	loc, err := p.FindUniform(name)
	if err != nil {
		return fmt.Errorf("could not set uniform %q: %w", name, err)
	}
	p.fns.Uniform3f(loc, v[0], v[1], v[2])
	return nil
}

func (p *Program) SetUniform4f(name string, v [4]float32) error {
	loc, err := p.FindUniform(name)
	if err != nil {
		return fmt.Errorf("could not set uniform %q: %w", name, err)
	}
	p.fns.Uniform4f(loc, v[0], v[1], v[2], v[3])
	return nil
}

// SetUniform1iv uploads an int array uniform verbatim.
func (p *Program) SetUniform1iv(name string, v []int32) error {
	if len(v) == 0 {
		return fmt.Errorf("%w: refusing to upload empty array for uniform %q", ErrEmptyArray, name)
	}
	loc, err := p.FindUniform(name)
	if err != nil {
		return fmt.Errorf("could not set uniform %q: %w", name, err)
	}
	p.fns.Uniform1iv(loc, v)
	return nil
}

// SetUniform1fv uploads a float array uniform verbatim.
func (p *Program) SetUniform1fv(name string, v []float32) error {
	if len(v) == 0 {
		return fmt.Errorf("%w: refusing to upload empty array for uniform %q", ErrEmptyArray, name)
	}
	loc, err := p.FindUniform(name)
	if err != nil {
		return fmt.Errorf("could not set uniform %q: %w", name, err)
	}
	p.fns.Uniform1fv(loc, v)
	return nil
}

// SetUniform3fv uploads an array of vec3 values.
func (p *Program) SetUniform3fv(name string, v [][3]float32) error {
	if len(v) == 0 {
		return fmt.Errorf("%w: refusing to upload empty array for uniform %q", ErrEmptyArray, name)
	}
	loc, err := p.FindUniform(name)
	if err != nil {
		return fmt.Errorf("could not set uniform %q: %w", name, err)
	}
	flat := make([]float32, 0, len(v)*3)
	for _, e := range v {
		flat = append(flat, e[0], e[1], e[2])
	}
	p.fns.Uniform3fv(loc, int32(len(v)), flat)
	return nil
}

// SetUniformMatrix4 uploads a 4x4 matrix as a column-major buffer
// matching the native convention (no transpose).
func (p *Program) SetUniformMatrix4(name string, m mgl32.Mat4) error {
	loc, err := p.FindUniform(name)
	if err != nil {
		return fmt.Errorf("could not set uniform %q: %w", name, err)
	}
	var data [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			data[col*4+row] = m.At(row, col)
		}
	}
	p.fns.UniformMatrix4fv(loc, false, data[:])
	return nil
}

// SetUniformMatrix3 uploads a 3x3 matrix as a column-major buffer.
func (p *Program) SetUniformMatrix3(name string, m mgl32.Mat3) error {
	loc, err := p.FindUniform(name)
	if err != nil {
		return fmt.Errorf("could not set uniform %q: %w", name, err)
	}
	var data [9]float32
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			data[col*3+row] = m.At(row, col)
		}
	}
	p.fns.UniformMatrix3fv(loc, false, data[:])
	return nil
}

// SetUniform3uc uploads an 8-bit RGB color, normalizing each channel
// to [0,1].
func (p *Program) SetUniform3uc(name string, v [3]uint8) error {
	loc, err := p.FindUniform(name)
	if err != nil {
		return fmt.Errorf("could not set uniform %q: %w", name, err)
	}
	p.fns.Uniform3f(loc, float32(v[0])/255.0, float32(v[1])/255.0, float32(v[2])/255.0)
	return nil
}

// SetUniform4uc uploads an 8-bit RGBA color, normalizing each channel
// to [0,1].
func (p *Program) SetUniform4uc(name string, v [4]uint8) error {
	loc, err := p.FindUniform(name)
	if err != nil {
		return fmt.Errorf("could not set uniform %q: %w", name, err)
	}
	p.fns.Uniform4f(loc, float32(v[0])/255.0, float32(v[1])/255.0, float32(v[2])/255.0, float32(v[3])/255.0)
	return nil
}
