package program_test

import (
	"unsafe"

	gl "github.com/richinsley/goglprog/gl"
)

// fakeGL implements gl.Functions and records every native call so
// tests can assert on exactly what would hit the driver.
type fakeGL struct {
	nextShaderHandle  uint32
	nextProgramHandle uint32

	// Compilation control: shader types whose compile should fail,
	// and the log to report for them.
	failCompile map[gl.Enum]bool
	compileLog  string
	shaderTypes map[uint32]gl.Enum
	failedObjs  map[uint32]bool

	// Link control.
	failLink bool
	linkLog  string

	failCreateProgram bool

	// Locations served by name.
	attribLocs  map[string]int32
	uniformLocs map[string]int32

	// Recorded calls.
	createdPrograms int
	attached        [][2]uint32
	detached        [][2]uint32
	linkCalls       int
	useProgram      []uint32
	deletedPrograms []uint32
	deletedShaders  []uint32

	attribLookups  int
	uniformLookups int

	enabledAttribs  []uint32
	disabledAttribs []uint32
	pointerCalls    []pointerCall
	dataCalls       []dataCall

	uniform1i  []scalarICall
	uniform1f  []scalarFCall
	uniform2i  [][3]int32
	uniform2f  []vecCall
	uniform3f  []vecCall
	uniform4f  []vecCall
	uniform1iv []sliceICall
	uniform1fv []sliceFCall
	uniform3fv []countedCall
	uniformM3  []matrixCall
	uniformM4  []matrixCall
}

type pointerCall struct {
	index      uint32
	size       int32
	xtype      gl.Enum
	normalized bool
	stride     int32
	offset     int
}

type dataCall struct {
	index      uint32
	size       int32
	xtype      gl.Enum
	normalized bool
	stride     int32
	data       unsafe.Pointer
}

type scalarICall struct {
	loc int32
	v   int32
}

type scalarFCall struct {
	loc int32
	v   float32
}

type vecCall struct {
	loc int32
	v   []float32
}

type sliceICall struct {
	loc int32
	v   []int32
}

type sliceFCall struct {
	loc int32
	v   []float32
}

type countedCall struct {
	loc   int32
	count int32
	v     []float32
}

type matrixCall struct {
	loc       int32
	transpose bool
	v         []float32
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		nextShaderHandle:  100,
		nextProgramHandle: 1,
		failCompile:       make(map[gl.Enum]bool),
		shaderTypes:       make(map[uint32]gl.Enum),
		failedObjs:        make(map[uint32]bool),
		attribLocs:        make(map[string]int32),
		uniformLocs:       make(map[string]int32),
	}
}

func (f *fakeGL) CreateShader(xtype gl.Enum) uint32 {
	f.nextShaderHandle++
	f.shaderTypes[f.nextShaderHandle] = xtype
	return f.nextShaderHandle
}

func (f *fakeGL) ShaderSource(shader uint32, source string) {}

func (f *fakeGL) CompileShader(shader uint32) {
	if f.failCompile[f.shaderTypes[shader]] {
		f.failedObjs[shader] = true
	}
}

func (f *fakeGL) GetShaderi(shader uint32, pname gl.Enum) int {
	switch pname {
	case gl.COMPILE_STATUS:
		if f.failedObjs[shader] {
			return gl.FALSE
		}
		return gl.TRUE
	case gl.INFO_LOG_LENGTH:
		if f.failedObjs[shader] {
			return len(f.compileLog) + 1
		}
		return 0
	}
	return 0
}

func (f *fakeGL) GetShaderInfoLog(shader uint32) string { return f.compileLog }

func (f *fakeGL) DeleteShader(shader uint32) {
	f.deletedShaders = append(f.deletedShaders, shader)
}

func (f *fakeGL) CreateProgram() uint32 {
	if f.failCreateProgram {
		return 0
	}
	f.createdPrograms++
	f.nextProgramHandle++
	return f.nextProgramHandle
}

func (f *fakeGL) AttachShader(program, shader uint32) {
	f.attached = append(f.attached, [2]uint32{program, shader})
}

func (f *fakeGL) DetachShader(program, shader uint32) {
	f.detached = append(f.detached, [2]uint32{program, shader})
}

func (f *fakeGL) LinkProgram(program uint32) { f.linkCalls++ }

func (f *fakeGL) GetProgrami(program uint32, pname gl.Enum) int {
	switch pname {
	case gl.LINK_STATUS:
		if f.failLink {
			return gl.FALSE
		}
		return gl.TRUE
	case gl.INFO_LOG_LENGTH:
		if f.failLink {
			return len(f.linkLog) + 1
		}
		return 0
	}
	return 0
}

func (f *fakeGL) GetProgramInfoLog(program uint32) string { return f.linkLog }

func (f *fakeGL) UseProgram(program uint32) {
	f.useProgram = append(f.useProgram, program)
}

func (f *fakeGL) DeleteProgram(program uint32) {
	f.deletedPrograms = append(f.deletedPrograms, program)
}

func (f *fakeGL) GetAttribLocation(program uint32, name string) int32 {
	f.attribLookups++
	if loc, ok := f.attribLocs[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeGL) GetUniformLocation(program uint32, name string) int32 {
	f.uniformLookups++
	if loc, ok := f.uniformLocs[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeGL) EnableVertexAttribArray(index uint32) {
	f.enabledAttribs = append(f.enabledAttribs, index)
}

func (f *fakeGL) DisableVertexAttribArray(index uint32) {
	f.disabledAttribs = append(f.disabledAttribs, index)
}

func (f *fakeGL) VertexAttribPointer(index uint32, size int32, xtype gl.Enum, normalized bool, stride int32, offset int) {
	f.pointerCalls = append(f.pointerCalls, pointerCall{index, size, xtype, normalized, stride, offset})
}

func (f *fakeGL) VertexAttribPointerData(index uint32, size int32, xtype gl.Enum, normalized bool, stride int32, data unsafe.Pointer) {
	f.dataCalls = append(f.dataCalls, dataCall{index, size, xtype, normalized, stride, data})
}

func (f *fakeGL) Uniform1i(location, v int32) {
	f.uniform1i = append(f.uniform1i, scalarICall{location, v})
}

func (f *fakeGL) Uniform1f(location int32, v float32) {
	f.uniform1f = append(f.uniform1f, scalarFCall{location, v})
}

func (f *fakeGL) Uniform2i(location, v0, v1 int32) {
	f.uniform2i = append(f.uniform2i, [3]int32{location, v0, v1})
}

func (f *fakeGL) Uniform2f(location int32, v0, v1 float32) {
	f.uniform2f = append(f.uniform2f, vecCall{location, []float32{v0, v1}})
}

func (f *fakeGL) Uniform3f(location int32, v0, v1, v2 float32) {
	f.uniform3f = append(f.uniform3f, vecCall{location, []float32{v0, v1, v2}})
}

func (f *fakeGL) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	f.uniform4f = append(f.uniform4f, vecCall{location, []float32{v0, v1, v2, v3}})
}

func (f *fakeGL) Uniform1iv(location int32, v []int32) {
	f.uniform1iv = append(f.uniform1iv, sliceICall{location, v})
}

func (f *fakeGL) Uniform1fv(location int32, v []float32) {
	f.uniform1fv = append(f.uniform1fv, sliceFCall{location, v})
}

func (f *fakeGL) Uniform3fv(location, count int32, v []float32) {
	f.uniform3fv = append(f.uniform3fv, countedCall{location, count, v})
}

func (f *fakeGL) UniformMatrix3fv(location int32, transpose bool, v []float32) {
	f.uniformM3 = append(f.uniformM3, matrixCall{location, transpose, v})
}

func (f *fakeGL) UniformMatrix4fv(location int32, transpose bool, v []float32) {
	f.uniformM4 = append(f.uniformM4, matrixCall{location, transpose, v})
}
