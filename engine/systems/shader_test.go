package systems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/atelier/engine/renderer/renderertest"
	"github.com/spaghettifunk/atelier/engine/systems"
)

const (
	vertexStub   = "#version 410 core\nvoid main() {}\n"
	fragmentStub = "#version 410 core\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n"
)

func TestShaderCreateProgramAndUse(t *testing.T) {
	am, root := newAssetTree(t)
	backend := renderertest.New()
	ss := systems.NewShaderSystem(am, backend)

	writeShader(t, root, "scene.vert", vertexStub)
	writeShader(t, root, "scene.frag", fragmentStub)

	require.NoError(t, ss.CreateProgram("scene", "scene.vert", "scene.frag"))
	require.NoError(t, ss.Use())

	assert.Len(t, backend.Programs, 1)
	assert.Contains(t, backend.Programs, backend.ProgramInUse)
}

func TestShaderUseBeforeCreateFails(t *testing.T) {
	am, _ := newAssetTree(t)
	ss := systems.NewShaderSystem(am, renderertest.New())

	assert.Error(t, ss.Use())
}

func TestShaderCreateProgramMissingSource(t *testing.T) {
	am, root := newAssetTree(t)
	ss := systems.NewShaderSystem(am, renderertest.New())

	writeShader(t, root, "scene.vert", vertexStub)

	assert.Error(t, ss.CreateProgram("scene", "scene.vert", "scene.frag"))
	assert.Error(t, ss.Use())
}

func TestShaderShutdownDestroysProgram(t *testing.T) {
	am, root := newAssetTree(t)
	backend := renderertest.New()
	ss := systems.NewShaderSystem(am, backend)

	writeShader(t, root, "scene.vert", vertexStub)
	writeShader(t, root, "scene.frag", fragmentStub)
	require.NoError(t, ss.CreateProgram("scene", "scene.vert", "scene.frag"))

	require.NoError(t, ss.Shutdown())
	assert.Empty(t, backend.Programs)
	assert.Error(t, ss.Use())
}
