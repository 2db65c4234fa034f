package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/tri/engine/colors"
	"github.com/hubastard/tri/engine/core"
)

// RendererGL drives the context owned by win. The context must be current
// on the calling thread.
type RendererGL struct {
	win core.Window
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	return &RendererGL{win: win}, nil
}

func (r *RendererGL) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	if err := desc.Layout.Validate(); err != nil {
		return core.Mesh{}, err
	}

	var m core.Mesh
	gl.GenVertexArrays(1, &m.VAO)
	gl.GenBuffers(1, &m.VBO)

	gl.BindVertexArray(m.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(desc.Vertices)*4, gl.Ptr(desc.Vertices), gl.STATIC_DRAW)

	for _, a := range desc.Layout.Attributes {
		gl.VertexAttribPointer(a.Location, int32(a.Size), attribType(a.Type), false,
			int32(desc.Layout.Stride), unsafe.Pointer(uintptr(a.Offset)))
		gl.EnableVertexAttribArray(a.Location)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m, nil
}

func (r *RendererGL) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	prog, err := makeProgram(desc.VertexSource, desc.FragmentSource)
	if err != nil {
		return core.Pipeline{}, err
	}
	return core.Pipeline{Program: prog}, nil
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(c colors.Color) {
	gl.ClearColor(c.RGBA())
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *RendererGL) Draw(cmd core.DrawCmd) {
	gl.UseProgram(cmd.Pipe.Program)
	gl.BindVertexArray(cmd.Mesh.VAO)
	gl.DrawArrays(primitive(cmd.Primitive), int32(cmd.First), int32(cmd.Count))
}

func (r *RendererGL) DestroyMesh(m core.Mesh) {
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
	}
	if m.VBO != 0 {
		gl.DeleteBuffers(1, &m.VBO)
	}
}

func (r *RendererGL) DestroyPipeline(p core.Pipeline) {
	if p.Program != 0 {
		gl.DeleteProgram(p.Program)
	}
}

func attribType(t core.AttribType) uint32 {
	switch t {
	case core.AttribUint8:
		return gl.UNSIGNED_BYTE
	default:
		return gl.FLOAT
	}
}

func primitive(p core.Primitive) uint32 {
	switch p {
	case core.PrimitiveTriangles:
		return gl.TRIANGLES
	case core.PrimitiveLines:
		return gl.LINES
	case core.PrimitivePoints:
		return gl.POINTS
	default:
		panic(fmt.Sprintf("glbackend: unknown primitive %d", p))
	}
}
