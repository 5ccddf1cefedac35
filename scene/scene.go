package scene

import (
	"errors"

	"github.com/google/uuid"

	"github.com/spaghettifunk/atelier/engine/core"
	"github.com/spaghettifunk/atelier/engine/math"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
	"github.com/spaghettifunk/atelier/engine/systems"
)

// Object is one fully placed draw call in the scene: a primitive mesh, the
// transform parameters its model matrix is composed from, and the surface
// state — texture or flat colour, material and UV scale — pushed right
// before it is drawn.
type Object struct {
	ID    uuid.UUID
	Name  string
	Shape systems.MeshShape

	Scale    math.Vec3
	Rotation math.Vec3 // per-axis Euler angles in degrees
	Position math.Vec3

	// TextureTag selects a registered texture; when empty, Color is used.
	TextureTag string
	Color      math.Vec4
	// MaterialTag selects a registered material.
	MaterialTag string
	// UVScale stretches or repeats the texture across the mesh.
	UVScale math.Vec2
}

// Scene owns the fixed list of placed objects and drives the resource
// systems through the one-time Prepare phase and the per-frame Render
// phase.
type Scene struct {
	systems *systems.SystemManager
	objects []Object
}

func New(sm *systems.SystemManager) *Scene {
	return &Scene{
		systems: sm,
		objects: studyRoomObjects(),
	}
}

// Prepare populates the texture, material and light registries and warms
// the mesh buffers. Individual texture failures reduce visual fidelity but
// never abort preparation.
func (s *Scene) Prepare() error {
	s.loadTextures()
	s.defineMaterials()
	if err := s.setupLights(); err != nil {
		return err
	}

	for _, obj := range s.objects {
		if err := s.systems.MeshSystem.Load(obj.Shape); err != nil {
			return err
		}
	}

	core.LogInfo("scene prepared: %d textures, %d materials, %d objects",
		s.systems.TextureSystem.Count(), s.systems.MaterialSystem.Count(), len(s.objects))
	return nil
}

// Render pushes every object's state snapshot and issues its draw call, in
// strict sequence: transform, then texture or colour, then material, then
// the draw that consumes them.
func (s *Scene) Render() {
	rs := s.systems.RenderStateSystem

	for i := range s.objects {
		obj := &s.objects[i]

		rs.SetTransformations(obj.Scale, obj.Rotation, obj.Position)

		if obj.TextureTag != "" {
			if err := rs.SetShaderTexture(obj.TextureTag); err != nil {
				// fall back to flat colour so the object stays visible
				rs.SetShaderColor(obj.Color.X, obj.Color.Y, obj.Color.Z, obj.Color.W)
			}
		} else {
			rs.SetShaderColor(obj.Color.X, obj.Color.Y, obj.Color.Z, obj.Color.W)
		}

		// an unknown material tag already pushed the default; nothing to do
		_ = rs.SetShaderMaterial(obj.MaterialTag)

		rs.SetTextureUVScale(obj.UVScale.X, obj.UVScale.Y)

		if err := s.systems.MeshSystem.Draw(obj.Shape); err != nil {
			core.LogError("failed to draw object '%s': %v", obj.Name, err)
		}
	}
}

// Objects exposes the placed object list.
func (s *Scene) Objects() []Object {
	return s.objects
}

func (s *Scene) loadTextures() {
	ts := s.systems.TextureSystem

	textures := []struct {
		file string
		tag  string
	}{
		{"leaf.jpg", "leaf"},
		{"vase.jpg", "vase"},
		{"floor.jpg", "floor"},
		{"wall.jpg", "wall"},
		{"ottoman.jpg", "ottoman"},
		{"pillow.jpg", "pillow"},
		{"bookshelf.jpg", "bookshelf"},
		{"picture.jpg", "picture"},
		{"rug.jpg", "rug"},
		{"lamp_bot.jpg", "lamp_bot"},
		{"lamp_top.jpg", "lamp_top"},
		{"books.jpg", "books"},
		{"book2.jpg", "book2"},
		{"snowglobe_bot.jpg", "snowglobe_bot"},
	}
	for _, t := range textures {
		if err := ts.Load(t.file, t.tag); err != nil {
			var capErr *core.CapacityExceededError
			if errors.As(err, &capErr) {
				// no further load can succeed either, but the scene can
				// still render with the textures already in place
				break
			}
		}
	}

	ts.BindAll()
}

func (s *Scene) defineMaterials() {
	ms := s.systems.MaterialSystem

	materials := []metadata.Material{
		{Tag: "metal",
			DiffuseColor:  math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
			SpecularColor: math.Vec3{X: 0.6, Y: 0.6, Z: 0.6},
			Shininess:     70.0},
		{Tag: "wood",
			DiffuseColor:  math.Vec3{X: 0.3, Y: 0.3, Z: 0.3},
			SpecularColor: math.Vec3{X: 0.4, Y: 0.4, Z: 0.4},
			Shininess:     40.0},
		{Tag: "glass",
			DiffuseColor:  math.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
			SpecularColor: math.Vec3{X: 1.0, Y: 1.0, Z: 1.0},
			Shininess:     95.0},
		{Tag: "vase",
			DiffuseColor:  math.Vec3{X: 0.4, Y: 0.4, Z: 0.4},
			SpecularColor: math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
			Shininess:     40.0},
		{Tag: "wall",
			DiffuseColor:  math.Vec3{X: 0.8, Y: 0.8, Z: 0.9},
			SpecularColor: math.Vec3{},
			Shininess:     2.0},
		{Tag: "leaf",
			DiffuseColor:  math.Vec3{X: 0.4, Y: 0.2, Z: 0.4},
			SpecularColor: math.Vec3{X: 0.1, Y: 0.05, Z: 0.1},
			Shininess:     0.3},
		{Tag: "paper",
			DiffuseColor:  math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
			SpecularColor: math.Vec3{},
			Shininess:     1.0},
		{Tag: "fabric",
			DiffuseColor:  math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
			SpecularColor: math.Vec3{},
			Shininess:     1.0},
	}
	for _, m := range materials {
		ms.Register(m)
	}
}

func (s *Scene) setupLights() error {
	ls := s.systems.LightSystem

	ls.SetDirectional(metadata.DirectionalLight{
		Direction: math.Vec3{X: -7.0, Y: 10.0, Z: -10.0},
		Ambient:   math.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
		Diffuse:   math.Vec3{X: 0.7, Y: 0.7, Z: 0.7},
		Specular:  math.Vec3{},
		Active:    true,
	})

	points := []struct {
		position math.Vec3
		ambient  float32
		diffuse  float32
		specular float32
	}{
		// ceiling pair above the reading corner
		{math.Vec3{X: 14.0, Y: 35.0, Z: 5.0}, 0.08, 0.4, 0.2},
		{math.Vec3{X: 14.0, Y: 35.0, Z: -17.0}, 0.08, 0.4, 0.2},
		// floor lamp glow, doubled up for a softer falloff
		{math.Vec3{X: -2.0, Y: 13.0, Z: -17.0}, 0.05, 0.3, 0.1},
		{math.Vec3{X: -2.0, Y: 13.0, Z: -15.0}, 0.05, 0.3, 0.1},
	}
	for _, p := range points {
		err := ls.AddPointLight(metadata.PointLight{
			Position:  p.position,
			Ambient:   math.Vec3{X: p.ambient, Y: p.ambient, Z: p.ambient},
			Diffuse:   math.Vec3{X: p.diffuse, Y: p.diffuse, Z: p.diffuse},
			Specular:  math.Vec3{X: p.specular, Y: p.specular, Z: p.specular},
			Constant:  1.0,
			Linear:    0.09,
			Quadratic: 0.032,
			Active:    true,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
