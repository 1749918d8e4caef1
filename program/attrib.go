package program

import (
	"fmt"
	"unsafe"

	gl "github.com/richinsley/goglprog/gl"
)

// NormalizeOption controls whether fixed-point attribute values are
// passed through raw or rescaled into [0,1] (unsigned) / [-1,1]
// (signed) on upload.
type NormalizeOption int

const (
	NoNormalize NormalizeOption = iota
	Normalize
)

// ElementType tags the scalar kind of an attribute stream.
type ElementType int

const (
	TypeInt8 ElementType = iota + 1
	TypeUint8
	TypeInt16
	TypeUint16
	TypeInt32
	TypeUint32
	TypeFloat32
	TypeFloat64
)

func (t ElementType) glEnum() (gl.Enum, bool) {
	switch t {
	case TypeInt8:
		return gl.BYTE, true
	case TypeUint8:
		return gl.UNSIGNED_BYTE, true
	case TypeInt16:
		return gl.SHORT, true
	case TypeUint16:
		return gl.UNSIGNED_SHORT, true
	case TypeInt32:
		return gl.INT, true
	case TypeUint32:
		return gl.UNSIGNED_INT, true
	case TypeFloat32:
		return gl.FLOAT, true
	case TypeFloat64:
		return gl.DOUBLE, true
	default:
		return 0, false
	}
}

// EnableAttributeArray enables per-vertex reads of the named
// attribute stream.
func (p *Program) EnableAttributeArray(name string) error {
	loc, err := p.FindAttributeArray(name)
	if err != nil {
		return fmt.Errorf("could not enable attribute %q: %w", name, err)
	}
	p.fns.EnableVertexAttribArray(uint32(loc))
	return nil
}

// DisableAttributeArray disables per-vertex reads of the named
// attribute stream.
func (p *Program) DisableAttributeArray(name string) error {
	loc, err := p.FindAttributeArray(name)
	if err != nil {
		return fmt.Errorf("could not disable attribute %q: %w", name, err)
	}
	p.fns.DisableVertexAttribArray(uint32(loc))
	return nil
}

// UseAttributeArray describes how the currently bound vertex buffer
// feeds the named attribute: byte offset into the buffer, stride
// between consecutive tuples (0 means tightly packed), the element
// scalar kind, components per vertex, and normalization.
func (p *Program) UseAttributeArray(name string, offset, stride int, elementType ElementType, tupleSize int, normalize NormalizeOption) error {
	loc, err := p.FindAttributeArray(name)
	if err != nil {
		return fmt.Errorf("could not use attribute %q: %w", name, err)
	}
	glt, ok := elementType.glEnum()
	if !ok {
		return fmt.Errorf("unrecognized data type for attribute %q", name)
	}
	p.fns.VertexAttribPointer(uint32(loc), int32(tupleSize), glt, normalize == Normalize, int32(stride), offset)
	return nil
}

// Scalar is the closed set of element kinds supported for client-side
// attribute uploads.
type Scalar interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | float32 | float64
}

// SetAttributeArray uploads a tightly packed client-side sequence for
// the named attribute, inferring the element kind from T.
func SetAttributeArray[T Scalar](p *Program, name string, data []T, tupleSize int, normalize NormalizeOption) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: refusing to upload empty array for attribute %q", ErrEmptyArray, name)
	}
	return p.setAttributeArrayInternal(name, unsafe.Pointer(&data[0]), elementTypeOf[T](), tupleSize, normalize)
}

func elementTypeOf[T Scalar]() ElementType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return TypeInt8
	case uint8:
		return TypeUint8
	case int16:
		return TypeInt16
	case uint16:
		return TypeUint16
	case int32:
		return TypeInt32
	case uint32:
		return TypeUint32
	case float32:
		return TypeFloat32
	case float64:
		return TypeFloat64
	default:
		return 0
	}
}

func (p *Program) setAttributeArrayInternal(name string, buffer unsafe.Pointer, elementType ElementType, tupleSize int, normalize NormalizeOption) error {
	glt, ok := elementType.glEnum()
	if !ok {
		return fmt.Errorf("unrecognized data type for attribute %q", name)
	}
	loc, err := p.FindAttributeArray(name)
	if err != nil {
		return fmt.Errorf("could not set attribute %q: %w", name, err)
	}
	p.fns.VertexAttribPointerData(uint32(loc), int32(tupleSize), glt, normalize == Normalize, 0, buffer)
	return nil
}
