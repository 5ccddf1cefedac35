// Package renderertest provides a recording in-memory Backend so the
// resource systems can be exercised without a window or GPU context.
package renderertest

import (
	"fmt"

	"github.com/spaghettifunk/atelier/engine/math"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
)

// TextureUpload captures the arguments of one TextureCreate call.
type TextureUpload struct {
	Pixels       []uint8
	Width        int
	Height       int
	ChannelCount int
}

// Backend records every call made against it. All handles are issued from
// a single counter starting at 1, so no real handle ever collides with the
// zero invalid value.
type Backend struct {
	nextHandle uint32

	Textures          map[metadata.TextureHandle]TextureUpload
	DestroyedTextures []metadata.TextureHandle
	// texture unit -> bound handle, in effect after the last TextureBind
	Bound map[int]metadata.TextureHandle

	Programs          map[metadata.ProgramHandle]string
	ProgramInUse      metadata.ProgramHandle
	DestroyedPrograms []metadata.ProgramHandle

	Geometries        map[metadata.GeometryHandle]*metadata.GeometryConfig
	Draws             []metadata.GeometryHandle
	DestroyedGeometry []metadata.GeometryHandle

	// Uniforms holds the last value written per uniform name.
	Uniforms map[string]any
	// UniformWrites is every write in call order, as "name" entries.
	UniformWrites []string

	BeginFrames int
	EndFrames   int

	// TextureCreateErr, when set, makes the next TextureCreate fail.
	TextureCreateErr error
}

func New() *Backend {
	return &Backend{
		Textures:   make(map[metadata.TextureHandle]TextureUpload),
		Bound:      make(map[int]metadata.TextureHandle),
		Programs:   make(map[metadata.ProgramHandle]string),
		Geometries: make(map[metadata.GeometryHandle]*metadata.GeometryConfig),
		Uniforms:   make(map[string]any),
	}
}

func (b *Backend) handle() uint32 {
	b.nextHandle++
	return b.nextHandle
}

func (b *Backend) Initialize() error { return nil }
func (b *Backend) Shutdown() error   { return nil }

func (b *Backend) BeginFrame() error {
	b.BeginFrames++
	return nil
}

func (b *Backend) EndFrame() error {
	b.EndFrames++
	return nil
}

func (b *Backend) Resize(width, height uint32) {}

func (b *Backend) TextureCreate(pixels []uint8, width, height, channelCount int) (metadata.TextureHandle, error) {
	if b.TextureCreateErr != nil {
		err := b.TextureCreateErr
		b.TextureCreateErr = nil
		return metadata.InvalidTextureHandle, err
	}
	h := metadata.TextureHandle(b.handle())
	b.Textures[h] = TextureUpload{Pixels: pixels, Width: width, Height: height, ChannelCount: channelCount}
	return h, nil
}

func (b *Backend) TextureBind(unit int, handle metadata.TextureHandle) {
	b.Bound[unit] = handle
}

func (b *Backend) TextureDestroy(handle metadata.TextureHandle) {
	delete(b.Textures, handle)
	b.DestroyedTextures = append(b.DestroyedTextures, handle)
}

func (b *Backend) ProgramCreate(name, vertexSource, fragmentSource string) (metadata.ProgramHandle, error) {
	if vertexSource == "" || fragmentSource == "" {
		return metadata.InvalidProgramHandle, fmt.Errorf("program '%s' is missing a shader stage", name)
	}
	h := metadata.ProgramHandle(b.handle())
	b.Programs[h] = name
	return h, nil
}

func (b *Backend) ProgramUse(handle metadata.ProgramHandle) {
	b.ProgramInUse = handle
}

func (b *Backend) ProgramDestroy(handle metadata.ProgramHandle) {
	delete(b.Programs, handle)
	b.DestroyedPrograms = append(b.DestroyedPrograms, handle)
}

func (b *Backend) setUniform(name string, value any) {
	b.Uniforms[name] = value
	b.UniformWrites = append(b.UniformWrites, name)
}

func (b *Backend) SetUniformBool(name string, value bool)      { b.setUniform(name, value) }
func (b *Backend) SetUniformInt(name string, value int32)      { b.setUniform(name, value) }
func (b *Backend) SetUniformFloat(name string, value float32)  { b.setUniform(name, value) }
func (b *Backend) SetUniformVec2(name string, value math.Vec2) { b.setUniform(name, value) }
func (b *Backend) SetUniformVec3(name string, value math.Vec3) { b.setUniform(name, value) }
func (b *Backend) SetUniformVec4(name string, value math.Vec4) { b.setUniform(name, value) }
func (b *Backend) SetUniformMat4(name string, value math.Mat4) { b.setUniform(name, value) }

func (b *Backend) GeometryCreate(config *metadata.GeometryConfig) (metadata.GeometryHandle, error) {
	h := metadata.GeometryHandle(b.handle())
	b.Geometries[h] = config
	return h, nil
}

func (b *Backend) GeometryDraw(handle metadata.GeometryHandle) {
	b.Draws = append(b.Draws, handle)
}

func (b *Backend) GeometryDestroy(handle metadata.GeometryHandle) {
	delete(b.Geometries, handle)
	b.DestroyedGeometry = append(b.DestroyedGeometry, handle)
}
