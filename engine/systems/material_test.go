package systems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/atelier/engine/math"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
	"github.com/spaghettifunk/atelier/engine/systems"
)

func TestMaterialRegisterAndFind(t *testing.T) {
	ms := systems.NewMaterialSystem()

	wood := metadata.Material{
		Tag:           "wood",
		DiffuseColor:  math.NewVec3(0.3, 0.3, 0.3),
		SpecularColor: math.NewVec3(0.4, 0.4, 0.4),
		Shininess:     40,
	}
	ms.Register(wood)

	got, found := ms.Find("wood")
	require.True(t, found)
	assert.Equal(t, wood, got)
	assert.Equal(t, 1, ms.Count())
}

func TestMaterialFindOnEmptyRegistry(t *testing.T) {
	ms := systems.NewMaterialSystem()

	_, found := ms.Find("anything")
	assert.False(t, found)
	assert.Equal(t, 0, ms.Count())
}

func TestMaterialDuplicateTagFirstMatchWins(t *testing.T) {
	ms := systems.NewMaterialSystem()

	first := metadata.Material{Tag: "metal", Shininess: 70}
	second := metadata.Material{Tag: "metal", Shininess: 5}
	ms.Register(first)
	ms.Register(second)

	got, found := ms.Find("metal")
	require.True(t, found)
	assert.Equal(t, float32(70), got.Shininess)
	assert.Equal(t, 2, ms.Count())
}

func TestDefaultMaterialIsNeutral(t *testing.T) {
	def := metadata.DefaultMaterial()

	assert.Equal(t, metadata.DefaultMaterialName, def.Tag)
	assert.Equal(t, math.NewVec3(0.5, 0.5, 0.5), def.DiffuseColor)
	assert.Equal(t, math.NewVec3(0, 0, 0), def.SpecularColor)
	assert.Equal(t, float32(1), def.Shininess)
}
