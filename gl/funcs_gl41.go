package gl

import (
	"strings"
	"unsafe"

	gogl "github.com/go-gl/gl/v4.1-core/gl"
)

// Funcs implements Functions on a live OpenGL 4.1 core context.
type Funcs struct{}

// Init loads the GL function pointers for the context current on the
// calling thread. Must be called once after MakeCurrent and before
// any other call in this package.
func Init() error {
	return gogl.Init()
}

func NewFunctions() Functions {
	return Funcs{}
}

func (Funcs) CreateShader(xtype Enum) uint32 {
	return gogl.CreateShader(uint32(xtype))
}

func (Funcs) ShaderSource(shader uint32, source string) {
	csources, free := gogl.Strs(source + "\x00")
	gogl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (Funcs) CompileShader(shader uint32) {
	gogl.CompileShader(shader)
}

func (Funcs) GetShaderi(shader uint32, pname Enum) int {
	var v int32
	gogl.GetShaderiv(shader, uint32(pname), &v)
	return int(v)
}

func (Funcs) GetShaderInfoLog(shader uint32) string {
	var logLength int32
	gogl.GetShaderiv(shader, gogl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 1 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gogl.GetShaderInfoLog(shader, logLength, nil, gogl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Funcs) DeleteShader(shader uint32) {
	gogl.DeleteShader(shader)
}

func (Funcs) CreateProgram() uint32 {
	return gogl.CreateProgram()
}

func (Funcs) AttachShader(program, shader uint32) {
	gogl.AttachShader(program, shader)
}

func (Funcs) DetachShader(program, shader uint32) {
	gogl.DetachShader(program, shader)
}

func (Funcs) LinkProgram(program uint32) {
	gogl.LinkProgram(program)
}

func (Funcs) GetProgrami(program uint32, pname Enum) int {
	var v int32
	gogl.GetProgramiv(program, uint32(pname), &v)
	return int(v)
}

func (Funcs) GetProgramInfoLog(program uint32) string {
	var logLength int32
	gogl.GetProgramiv(program, gogl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 1 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gogl.GetProgramInfoLog(program, logLength, nil, gogl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Funcs) UseProgram(program uint32) {
	gogl.UseProgram(program)
}

func (Funcs) DeleteProgram(program uint32) {
	gogl.DeleteProgram(program)
}

func (Funcs) GetAttribLocation(program uint32, name string) int32 {
	return gogl.GetAttribLocation(program, gogl.Str(name+"\x00"))
}

func (Funcs) GetUniformLocation(program uint32, name string) int32 {
	return gogl.GetUniformLocation(program, gogl.Str(name+"\x00"))
}

func (Funcs) EnableVertexAttribArray(index uint32) {
	gogl.EnableVertexAttribArray(index)
}

func (Funcs) DisableVertexAttribArray(index uint32) {
	gogl.DisableVertexAttribArray(index)
}

func (Funcs) VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride int32, offset int) {
	gogl.VertexAttribPointerWithOffset(index, size, uint32(xtype), normalized, stride, uintptr(offset))
}

func (Funcs) VertexAttribPointerData(index uint32, size int32, xtype Enum, normalized bool, stride int32, data unsafe.Pointer) {
	gogl.VertexAttribPointer(index, size, uint32(xtype), normalized, stride, data)
}

func (Funcs) Uniform1i(location, v int32) {
	gogl.Uniform1i(location, v)
}

func (Funcs) Uniform1f(location int32, v float32) {
	gogl.Uniform1f(location, v)
}

func (Funcs) Uniform2i(location, v0, v1 int32) {
	gogl.Uniform2i(location, v0, v1)
}

func (Funcs) Uniform2f(location int32, v0, v1 float32) {
	gogl.Uniform2f(location, v0, v1)
}

func (Funcs) Uniform3f(location int32, v0, v1, v2 float32) {
	gogl.Uniform3f(location, v0, v1, v2)
}

func (Funcs) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gogl.Uniform4f(location, v0, v1, v2, v3)
}

func (Funcs) Uniform1iv(location int32, v []int32) {
	if len(v) == 0 {
		return
	}
	gogl.Uniform1iv(location, int32(len(v)), &v[0])
}

func (Funcs) Uniform1fv(location int32, v []float32) {
	if len(v) == 0 {
		return
	}
	gogl.Uniform1fv(location, int32(len(v)), &v[0])
}

func (Funcs) Uniform3fv(location int32, count int32, v []float32) {
	if len(v) == 0 {
		return
	}
	gogl.Uniform3fv(location, count, &v[0])
}

func (Funcs) UniformMatrix3fv(location int32, transpose bool, v []float32) {
	gogl.UniformMatrix3fv(location, 1, transpose, &v[0])
}

func (Funcs) UniformMatrix4fv(location int32, transpose bool, v []float32) {
	gogl.UniformMatrix4fv(location, 1, transpose, &v[0])
}
