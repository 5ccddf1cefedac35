package renderer

import (
	"github.com/spaghettifunk/atelier/engine/math"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
)

// Backend is the boundary between the resource systems and the GPU API.
// The systems own all resource handles and sequencing; the backend only
// executes the individual operations. Everything here is called from the
// single render thread.
type Backend interface {
	Initialize() error
	Shutdown() error

	// BeginFrame clears the framebuffer; EndFrame is a hook for the
	// backend to flush. Buffer swapping belongs to the platform layer.
	BeginFrame() error
	EndFrame() error
	Resize(width, height uint32)

	// TextureCreate uploads pixels as a mipmapped 2D texture with repeat
	// wrapping and linear filtering. Pixels are tightly packed RGB or RGBA
	// rows, bottom row first. channelCount must be 3 or 4.
	TextureCreate(pixels []uint8, width, height, channelCount int) (metadata.TextureHandle, error)
	// TextureBind makes the texture resident on the given texture unit.
	TextureBind(unit int, handle metadata.TextureHandle)
	// TextureDestroy releases the GPU texture object. The handle is invalid
	// for any further use.
	TextureDestroy(handle metadata.TextureHandle)

	ProgramCreate(name, vertexSource, fragmentSource string) (metadata.ProgramHandle, error)
	ProgramUse(handle metadata.ProgramHandle)
	ProgramDestroy(handle metadata.ProgramHandle)

	// Uniform writes apply to the program currently in use.
	SetUniformBool(name string, value bool)
	SetUniformInt(name string, value int32)
	SetUniformFloat(name string, value float32)
	SetUniformVec2(name string, value math.Vec2)
	SetUniformVec3(name string, value math.Vec3)
	SetUniformVec4(name string, value math.Vec4)
	SetUniformMat4(name string, value math.Mat4)

	GeometryCreate(config *metadata.GeometryConfig) (metadata.GeometryHandle, error)
	// GeometryDraw issues the draw call using whatever uniform and texture
	// state is currently live.
	GeometryDraw(handle metadata.GeometryHandle)
	GeometryDestroy(handle metadata.GeometryHandle)
}
