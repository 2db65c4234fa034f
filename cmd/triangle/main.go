package main

import (
	"errors"
	"log"
	"os"

	"github.com/hubastard/tri/engine/core"
	glbackend "github.com/hubastard/tri/engine/gfx/gl"
	"github.com/hubastard/tri/engine/geometry"
	"github.com/hubastard/tri/engine/platform"
)

type triangleApp struct {
	mesh core.Mesh
	pipe core.Pipeline
}

func (a *triangleApp) OnStart(e *core.Engine) error {
	var err error
	a.mesh, err = e.Renderer.CreateMesh(geometry.TriangleMesh())
	if err != nil {
		return err
	}
	a.pipe, err = e.Renderer.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertexShaderSource,
		FragmentSource: fragmentShaderSource,
	})
	return err
}

func (a *triangleApp) OnRender(e *core.Engine) {
	e.Renderer.Draw(core.DrawCmd{
		Pipe:      a.pipe,
		Mesh:      a.mesh,
		Primitive: core.PrimitiveTriangles,
		Count:     geometry.PositionLayout.VertexCount(3 * len(geometry.Triangle())),
	})
}

// OnShutdown releases each object once; handles are zeroed so a second call is a no-op.
func (a *triangleApp) OnShutdown(e *core.Engine) {
	if !a.mesh.IsZero() {
		e.Renderer.DestroyMesh(a.mesh)
		a.mesh = core.Mesh{}
	}
	if !a.pipe.IsZero() {
		e.Renderer.DestroyPipeline(a.pipe)
		a.pipe = core.Pipeline{}
	}
}

func run(p core.Platform, newRenderer func(core.Window, core.Config) (core.Renderer, error)) int {
	err := core.Run(&triangleApp{}, core.DefaultConfig(), p, newRenderer)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, core.ErrPlatformInit):
		log.Printf("Failed to initialize GLFW: %v", err)
	case errors.Is(err, core.ErrWindowCreate):
		log.Printf("Failed to create GLFW window: %v", err)
	default:
		log.Printf("triangle: %v", err)
	}
	return 1
}

func main() {
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}
	os.Exit(run(platform.GLFW{}, newRenderer))
}
