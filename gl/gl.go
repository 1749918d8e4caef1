// Package gl defines the native-call boundary between the program
// management packages and the OpenGL driver. Everything the library
// asks of the GPU goes through the Functions interface, so higher
// layers can be exercised without a live rendering context.
package gl

import "unsafe"

type Enum uint32

// Numeric identifiers matching the OpenGL constants of the same
// name. The scalar type tags must stay bit-compatible with the
// native ids because they are handed to glVertexAttribPointer as-is.
const (
	BYTE           Enum = 0x1400
	UNSIGNED_BYTE  Enum = 0x1401
	SHORT          Enum = 0x1402
	UNSIGNED_SHORT Enum = 0x1403
	INT            Enum = 0x1404
	UNSIGNED_INT   Enum = 0x1405
	FLOAT          Enum = 0x1406
	DOUBLE         Enum = 0x140A

	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31
	GEOMETRY_SHADER Enum = 0x8DD9

	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82
	INFO_LOG_LENGTH Enum = 0x8B84

	FALSE = 0
	TRUE  = 1
)

// Functions is the set of GL entry points used for shader and
// program management. Info logs come back as Go strings and status
// queries as plain ints so fakes stay trivial to write.
type Functions interface {
	// Shader objects.
	CreateShader(xtype Enum) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname Enum) int
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	// Program objects.
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname Enum) int
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// Name resolution.
	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32

	// Vertex attributes.
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	// VertexAttribPointer interprets the currently bound ARRAY_BUFFER
	// starting at a byte offset.
	VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride int32, offset int)
	// VertexAttribPointerData uploads from client memory instead of a
	// bound buffer.
	VertexAttribPointerData(index uint32, size int32, xtype Enum, normalized bool, stride int32, data unsafe.Pointer)

	// Uniforms.
	Uniform1i(location, v int32)
	Uniform1f(location int32, v float32)
	Uniform2i(location, v0, v1 int32)
	Uniform2f(location int32, v0, v1 float32)
	Uniform3f(location int32, v0, v1, v2 float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
	Uniform1iv(location int32, v []int32)
	Uniform1fv(location int32, v []float32)
	Uniform3fv(location int32, count int32, v []float32)
	UniformMatrix3fv(location int32, transpose bool, v []float32)
	UniformMatrix4fv(location int32, transpose bool, v []float32)
}
