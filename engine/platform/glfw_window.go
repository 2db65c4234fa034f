package platform

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/tri/engine/core"
)

// GLFW implements core.Platform.
type GLFW struct{}

// Must be called on main thread before any GL calls.
func (GLFW) Init() error {
	runtime.LockOSThread()
	return glfw.Init()
}

func (GLFW) Terminate() { glfw.Terminate() }

func (GLFW) CreateWindow(cfg core.Config) (core.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	// Mac refuses a core context without it.
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		return nil, err
	}
	log.Printf("GL: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	return &GLFWWindow{w: win}, nil
}

// GLFWWindow implements core.Window.
type GLFWWindow struct {
	w *glfw.Window
}

func (g *GLFWWindow) PollEvents()                 { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool           { return g.w.ShouldClose() }
func (g *GLFWWindow) FramebufferSize() (int, int) { return g.w.GetFramebufferSize() }
