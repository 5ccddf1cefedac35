package systems

import (
	"github.com/spaghettifunk/atelier/engine/core"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
)

/**
 * @brief MaterialSystem holds the named appearance presets of the scene.
 * Materials are registered during preparation and looked up by tag at draw
 * time; the registry is their single owner and entries are immutable once
 * registered.
 */
type MaterialSystem struct {
	// registered materials in registration order
	registered []metadata.Material
}

func NewMaterialSystem() *MaterialSystem {
	return &MaterialSystem{
		registered: make([]metadata.Material, 0),
	}
}

// Register appends a material. Duplicate tags are not rejected, but a later
// duplicate is unreachable by lookup since the first match wins; that is
// almost always an authoring mistake, so it is called out in the log.
func (ms *MaterialSystem) Register(material metadata.Material) {
	if _, found := ms.Find(material.Tag); found {
		core.LogWarn("material tag '%s' is already registered; the new entry will be shadowed on lookup", material.Tag)
	}
	ms.registered = append(ms.registered, material)
}

// Find returns the first material registered under tag. An empty registry
// and an absent tag are both legitimate not-found results.
func (ms *MaterialSystem) Find(tag string) (metadata.Material, bool) {
	for _, material := range ms.registered {
		if material.Tag == tag {
			return material, true
		}
	}
	return metadata.Material{}, false
}

// Count returns the number of registered materials.
func (ms *MaterialSystem) Count() int {
	return len(ms.registered)
}
