// Package geometry holds the fixed vertex data the viewer uploads.
package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/tri/engine/core"
)

const floatSize = 4

// PositionLayout: layout(location = 0) in vec3 aPos, tightly packed.
var PositionLayout = core.VertexLayout{
	Stride: 3 * floatSize,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 3, Type: core.AttribFloat32, Offset: 0},
	},
}

// Triangle returns bottom-left, bottom-right, top-center in clip space.
func Triangle() []mgl32.Vec3 {
	return []mgl32.Vec3{
		{-0.5, -0.5, 0.0},
		{0.5, -0.5, 0.0},
		{0.0, 0.5, 0.0},
	}
}

// Flatten packs points into the x,y,z float stream PositionLayout describes.
func Flatten(points []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(points)*3)
	for _, p := range points {
		out = append(out, p.X(), p.Y(), p.Z())
	}
	return out
}

// TriangleMesh is the descriptor for uploading Triangle.
func TriangleMesh() core.MeshDesc {
	return core.MeshDesc{Vertices: Flatten(Triangle()), Layout: PositionLayout}
}
