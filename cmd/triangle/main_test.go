package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/tri/engine/core"
	"github.com/hubastard/tri/engine/core/coretest"
	"github.com/hubastard/tri/engine/geometry"
)

func TestShaderSources(t *testing.T) {
	assert.Equal(t, "\n    #version 330 core    \n    layout (location = 0) in vec3 aPos;\n    void main() {\n        gl_Position = vec4(aPos, 1.0);\n    }\n    ", vertexShaderSource)
	assert.Equal(t, "\n    #version 330 core\n    out vec4 FragColor;\n    void main() {\n        FragColor = vec4(1.0, 0.5, 0.2, 1.0);  // Orange color\n    }\n    ", fragmentShaderSource)
}

func TestRunDrawsTriangleUntilClosed(t *testing.T) {
	win := &coretest.Window{CloseAfter: 2}
	r := &coretest.Renderer{}

	require.Equal(t, 0, run(&coretest.Platform{Window: win}, r.Factory()))

	require.Len(t, r.Meshes, 1)
	assert.Equal(t, geometry.Flatten(geometry.Triangle()), r.Meshes[0].Vertices)
	require.Len(t, r.Pipelines, 1)
	assert.Equal(t, vertexShaderSource, r.Pipelines[0].VertexSource)
	assert.Equal(t, fragmentShaderSource, r.Pipelines[0].FragmentSource)

	require.Len(t, r.Draws, 2)
	for _, d := range r.Draws {
		assert.Equal(t, core.PrimitiveTriangles, d.Primitive)
		assert.Zero(t, d.First)
		assert.Equal(t, 3, d.Count)
	}
	assert.Equal(t, 2, win.Swaps)
}

func TestRunReleasesEachObjectOnce(t *testing.T) {
	r := &coretest.Renderer{}
	require.Equal(t, 0, run(&coretest.Platform{Window: &coretest.Window{CloseAfter: 1}}, r.Factory()))

	require.Len(t, r.DestroyedMeshes, 1)
	require.Len(t, r.DestroyedPipelines, 1)
	assert.Equal(t, core.Mesh{VAO: 1, VBO: 2}, r.DestroyedMeshes[0])
	assert.Equal(t, core.Pipeline{Program: 3}, r.DestroyedPipelines[0])
}

func TestShutdownIsIdempotent(t *testing.T) {
	r := &coretest.Renderer{}
	e := &core.Engine{Renderer: r}
	app := &triangleApp{}
	require.NoError(t, app.OnStart(e))

	app.OnShutdown(e)
	app.OnShutdown(e)
	assert.Len(t, r.DestroyedMeshes, 1)
	assert.Len(t, r.DestroyedPipelines, 1)
}

func TestRunExitCodes(t *testing.T) {
	t.Run("init failure", func(t *testing.T) {
		p := &coretest.Platform{InitErr: errors.New("no display")}
		r := &coretest.Renderer{}
		assert.Equal(t, 1, run(p, r.Factory()))
		assert.Zero(t, p.CreateCalls)
		assert.Empty(t, r.Draws)
	})
	t.Run("window failure", func(t *testing.T) {
		p := &coretest.Platform{WindowErr: errors.New("no context")}
		assert.Equal(t, 1, run(p, (&coretest.Renderer{}).Factory()))
		assert.Equal(t, 1, p.TerminateCalls)
	})
	t.Run("link failure", func(t *testing.T) {
		win := &coretest.Window{CloseAfter: 1}
		r := &coretest.Renderer{PipelineErr: core.ErrProgramLink}
		assert.Equal(t, 1, run(&coretest.Platform{Window: win}, r.Factory()))
		assert.Zero(t, win.Swaps)
		assert.Len(t, r.DestroyedMeshes, 1)
	})
}
