package core

import (
	"errors"

	"github.com/hubastard/tri/engine/colors"
)

var (
	ErrPlatformInit  = errors.New("platform init failed")
	ErrWindowCreate  = errors.New("window creation failed")
	ErrShaderCompile = errors.New("shader compile failed")
	ErrProgramLink   = errors.New("program link failed")
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine) error // called once after window/renderer init
	OnRender(e *Engine)      // called every frame after the clear
	OnShutdown(e *Engine)    // release GPU objects; called once before platform shutdown
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Frames   uint64
}

// Platform is the windowing subsystem.
type Platform interface {
	Init() error
	CreateWindow(cfg Config) (Window, error)
	Terminate()
}

// Window abstraction. The window owns the graphics context.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	FramebufferSize() (int, int)
}

// Renderer is the explicit handle to the graphics context; every GPU
// operation goes through it.
type Renderer interface {
	CreateMesh(desc MeshDesc) (Mesh, error)
	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	Resize(w, h int)
	Clear(c colors.Color)
	Draw(cmd DrawCmd)
	DestroyMesh(m Mesh)
	DestroyPipeline(p Pipeline)
}

// Mesh is an opaque vertex array + buffer pair.
type Mesh struct {
	VAO uint32
	VBO uint32
}

func (m Mesh) IsZero() bool { return m.VAO == 0 && m.VBO == 0 }

// Pipeline is an opaque linked shader program.
type Pipeline struct{ Program uint32 }

func (p Pipeline) IsZero() bool { return p.Program == 0 }

type MeshDesc struct {
	Vertices []float32
	Layout   VertexLayout
}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
}

type Primitive int

const (
	PrimitiveTriangles Primitive = iota
	PrimitiveLines
	PrimitivePoints
)

type DrawCmd struct {
	Pipe      Pipeline
	Mesh      Mesh
	Primitive Primitive
	First     int
	Count     int
}

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	GLMajor    int
	GLMinor    int
	ClearColor colors.Color
}

// DefaultConfig is the fixed window the viewer opens.
func DefaultConfig() Config {
	return Config{
		Title:      "OpenGL Window",
		Width:      800,
		Height:     600,
		GLMajor:    3,
		GLMinor:    3,
		ClearColor: colors.Teal,
	}
}
