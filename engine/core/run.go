package core

import (
	"fmt"
	"log"
	"runtime"
)

// Run wires the platform window + renderer and executes the main loop.
func Run(app App, cfg Config, platform Platform, newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := platform.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrPlatformInit, err)
	}
	defer platform.Terminate()

	win, err := platform.CreateWindow(cfg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{Window: win, Renderer: rend}
	// OnShutdown runs even if OnStart fails half way so partial GPU objects are released.
	defer app.OnShutdown(eng)

	if err := app.OnStart(eng); err != nil {
		return err
	}

	clear := cfg.ClearColor
	for !win.ShouldClose() {
		win.PollEvents()

		rend.Clear(clear)
		app.OnRender(eng)

		win.SwapBuffers()
		eng.Frames++
	}

	log.Printf("Engine exit after %d frames", eng.Frames)
	return nil
}
