package systems

import (
	"fmt"

	"github.com/spaghettifunk/atelier/engine/assets"
	"github.com/spaghettifunk/atelier/engine/core"
	"github.com/spaghettifunk/atelier/engine/math"
	"github.com/spaghettifunk/atelier/engine/renderer"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
)

/**
 * @brief ShaderSystem owns the scene shader program and exposes typed,
 * named uniform writes to the other systems. Uniform values written here
 * form the live state snapshot the next draw call consumes; there is no
 * double buffering, so every write is immediately visible to the GPU side.
 */
type ShaderSystem struct {
	assetManager *assets.AssetManager
	backend      renderer.Backend

	program metadata.ProgramHandle
}

func NewShaderSystem(am *assets.AssetManager, backend renderer.Backend) *ShaderSystem {
	return &ShaderSystem{
		assetManager: am,
		backend:      backend,
		program:      metadata.InvalidProgramHandle,
	}
}

// CreateProgram loads the vertex and fragment sources from the asset tree
// and links them into the scene program.
func (ss *ShaderSystem) CreateProgram(name, vertexFile, fragmentFile string) error {
	vertexSource, err := ss.loadSource(vertexFile)
	if err != nil {
		return err
	}
	fragmentSource, err := ss.loadSource(fragmentFile)
	if err != nil {
		return err
	}

	program, err := ss.backend.ProgramCreate(name, vertexSource, fragmentSource)
	if err != nil {
		core.LogError("failed to create shader program '%s': %v", name, err)
		return err
	}
	ss.program = program
	core.LogInfo("shader program '%s' created", name)
	return nil
}

// Use activates the scene program. Must run before any uniform write.
func (ss *ShaderSystem) Use() error {
	if ss.program == metadata.InvalidProgramHandle {
		err := fmt.Errorf("func Use called before a shader program was created")
		core.LogError(err.Error())
		return err
	}
	ss.backend.ProgramUse(ss.program)
	return nil
}

func (ss *ShaderSystem) SetBool(name string, value bool) {
	ss.backend.SetUniformBool(name, value)
}

func (ss *ShaderSystem) SetInt(name string, value int32) {
	ss.backend.SetUniformInt(name, value)
}

func (ss *ShaderSystem) SetFloat(name string, value float32) {
	ss.backend.SetUniformFloat(name, value)
}

func (ss *ShaderSystem) SetVec2(name string, value math.Vec2) {
	ss.backend.SetUniformVec2(name, value)
}

func (ss *ShaderSystem) SetVec3(name string, value math.Vec3) {
	ss.backend.SetUniformVec3(name, value)
}

func (ss *ShaderSystem) SetVec4(name string, value math.Vec4) {
	ss.backend.SetUniformVec4(name, value)
}

func (ss *ShaderSystem) SetMat4(name string, value math.Mat4) {
	ss.backend.SetUniformMat4(name, value)
}

// SetSampler points a sampler uniform at a texture unit.
func (ss *ShaderSystem) SetSampler(name string, unit int) {
	ss.backend.SetUniformInt(name, int32(unit))
}

func (ss *ShaderSystem) Shutdown() error {
	if ss.program != metadata.InvalidProgramHandle {
		ss.backend.ProgramDestroy(ss.program)
		ss.program = metadata.InvalidProgramHandle
	}
	return nil
}

func (ss *ShaderSystem) loadSource(name string) (string, error) {
	resource, err := ss.assetManager.LoadAsset(name, metadata.ResourceTypeShaderSource, nil)
	if err != nil {
		core.LogError("failed to load shader source '%s': %v", name, err)
		return "", err
	}
	defer ss.assetManager.UnloadAsset(resource)

	data, ok := resource.Data.(*metadata.ShaderSourceResourceData)
	if !ok {
		return "", fmt.Errorf("shader resource '%s' holds unexpected data type %T", name, resource.Data)
	}
	return data.Source, nil
}
