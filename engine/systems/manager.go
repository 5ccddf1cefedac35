package systems

import (
	"github.com/spaghettifunk/atelier/engine/assets"
	"github.com/spaghettifunk/atelier/engine/config"
	"github.com/spaghettifunk/atelier/engine/renderer"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
)

// SystemManager wires the resource systems together in dependency order
// and tears them down in reverse.
type SystemManager struct {
	AssetManager      *assets.AssetManager
	TextureSystem     *TextureSystem
	MaterialSystem    *MaterialSystem
	ShaderSystem      *ShaderSystem
	LightSystem       *LightSystem
	MeshSystem        *MeshSystem
	RenderStateSystem *RenderStateSystem

	UniformNames *metadata.UniformNames
}

func NewSystemManager(cfg *config.Config, backend renderer.Backend) (*SystemManager, error) {
	am, err := assets.NewAssetManager(cfg.Assets)
	if err != nil {
		return nil, err
	}
	if err := am.Initialize(); err != nil {
		return nil, err
	}

	uniforms := metadata.DefaultUniformNames()

	ts, err := NewTextureSystem(&TextureSystemConfig{
		MaxTextureCount: metadata.MaxTextureSlots,
	}, am, backend)
	if err != nil {
		return nil, err
	}

	ms := NewMaterialSystem()
	ss := NewShaderSystem(am, backend)
	ls := NewLightSystem(ss, uniforms)
	mesh := NewMeshSystem(backend)
	rs := NewRenderStateSystem(ss, ts, ms, uniforms)

	return &SystemManager{
		AssetManager:      am,
		TextureSystem:     ts,
		MaterialSystem:    ms,
		ShaderSystem:      ss,
		LightSystem:       ls,
		MeshSystem:        mesh,
		RenderStateSystem: rs,
		UniformNames:      uniforms,
	}, nil
}

func (sm *SystemManager) Shutdown() error {
	if err := sm.MeshSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.TextureSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.ShaderSystem.Shutdown(); err != nil {
		return err
	}
	return sm.AssetManager.Shutdown()
}
