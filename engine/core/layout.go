package core

import "fmt"

type AttribType int

const (
	AttribFloat32 AttribType = iota
	AttribUint8
)

// ByteSize of one component.
func (t AttribType) ByteSize() int {
	switch t {
	case AttribUint8:
		return 1
	default:
		return 4
	}
}

type VertexAttrib struct {
	Location uint32
	Size     int // components
	Type     AttribType
	Offset   int // bytes from vertex start
}

// VertexLayout describes how a buffer of interleaved vertices maps to shader inputs.
type VertexLayout struct {
	Stride     int // bytes per vertex
	Attributes []VertexAttrib
}

// FloatsPerVertex assumes a float32-only layout.
func (l VertexLayout) FloatsPerVertex() int { return l.Stride / 4 }

// VertexCount reports how many whole vertices a float buffer of length n holds.
func (l VertexLayout) VertexCount(n int) int {
	fpv := l.FloatsPerVertex()
	if fpv == 0 {
		return 0
	}
	return n / fpv
}

// Validate checks that every attribute fits inside the stride.
func (l VertexLayout) Validate() error {
	if l.Stride <= 0 {
		return fmt.Errorf("vertex layout: stride %d must be positive", l.Stride)
	}
	for _, a := range l.Attributes {
		end := a.Offset + a.Size*a.Type.ByteSize()
		if a.Size < 1 || a.Size > 4 {
			return fmt.Errorf("vertex layout: attribute %d has %d components", a.Location, a.Size)
		}
		if a.Offset < 0 || end > l.Stride {
			return fmt.Errorf("vertex layout: attribute %d spans [%d,%d) outside stride %d", a.Location, a.Offset, end, l.Stride)
		}
	}
	return nil
}
