// Package coretest provides in-memory Platform, Window and Renderer fakes
// that record the calls the run loop makes.
package coretest

import (
	"github.com/hubastard/tri/engine/colors"
	"github.com/hubastard/tri/engine/core"
)

// Platform is a fake windowing subsystem.
type Platform struct {
	InitErr   error
	WindowErr error
	Window    *Window

	InitCalls      int
	CreateCalls    int
	TerminateCalls int
}

func (p *Platform) Init() error {
	p.InitCalls++
	return p.InitErr
}

func (p *Platform) CreateWindow(core.Config) (core.Window, error) {
	p.CreateCalls++
	if p.WindowErr != nil {
		return nil, p.WindowErr
	}
	if p.Window == nil {
		p.Window = &Window{}
	}
	return p.Window, nil
}

func (p *Platform) Terminate() { p.TerminateCalls++ }

// Window reports a close request once CloseAfter polls have happened.
type Window struct {
	CloseAfter int

	Polls int
	Swaps int
}

func (w *Window) PollEvents()                 { w.Polls++ }
func (w *Window) SwapBuffers()                { w.Swaps++ }
func (w *Window) ShouldClose() bool           { return w.Polls >= w.CloseAfter }
func (w *Window) FramebufferSize() (int, int) { return 800, 600 }

// Renderer hands out sequential handles and records every call.
type Renderer struct {
	PipelineErr error

	next uint32

	Meshes    []core.MeshDesc
	Pipelines []core.PipelineDesc
	Clears    []colors.Color
	Draws     []core.DrawCmd

	DestroyedMeshes    []core.Mesh
	DestroyedPipelines []core.Pipeline
	Viewport           [2]int
}

func (r *Renderer) handle() uint32 {
	r.next++
	return r.next
}

func (r *Renderer) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	if err := desc.Layout.Validate(); err != nil {
		return core.Mesh{}, err
	}
	r.Meshes = append(r.Meshes, desc)
	return core.Mesh{VAO: r.handle(), VBO: r.handle()}, nil
}

func (r *Renderer) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	if r.PipelineErr != nil {
		return core.Pipeline{}, r.PipelineErr
	}
	r.Pipelines = append(r.Pipelines, desc)
	return core.Pipeline{Program: r.handle()}, nil
}

func (r *Renderer) Resize(w, h int)       { r.Viewport = [2]int{w, h} }
func (r *Renderer) Clear(c colors.Color)  { r.Clears = append(r.Clears, c) }
func (r *Renderer) Draw(cmd core.DrawCmd) { r.Draws = append(r.Draws, cmd) }

func (r *Renderer) DestroyMesh(m core.Mesh) {
	r.DestroyedMeshes = append(r.DestroyedMeshes, m)
}

func (r *Renderer) DestroyPipeline(p core.Pipeline) {
	r.DestroyedPipelines = append(r.DestroyedPipelines, p)
}

// Factory returns a renderer constructor for core.Run that always yields r.
func (r *Renderer) Factory() func(core.Window, core.Config) (core.Renderer, error) {
	return func(core.Window, core.Config) (core.Renderer, error) { return r, nil }
}
