package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/atelier/engine/core"
	"github.com/spaghettifunk/atelier/engine/math"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
)

// vertex layout: position (3), normal (3), texcoord (2), tightly packed
const vertexStride int32 = 8 * 4

type geometryBuffers struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Backend talks to OpenGL 4.1 core. It must only be used from the thread
// that owns the GL context.
type Backend struct {
	geometries     map[metadata.GeometryHandle]*geometryBuffers
	currentProgram uint32
	// uniform locations resolved lazily, cached per program
	uniformLocations map[uint32]map[string]int32
	clearColor       math.Vec4
}

func New() *Backend {
	return &Backend{
		geometries:       make(map[metadata.GeometryHandle]*geometryBuffers),
		uniformLocations: make(map[uint32]map[string]int32),
		clearColor:       math.NewVec4(0.0, 0.0, 0.0, 1.0),
	}
}

func (b *Backend) Initialize() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL bindings: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	core.LogInfo("OpenGL version %s", version)

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(b.clearColor.X, b.clearColor.Y, b.clearColor.Z, b.clearColor.W)

	return nil
}

func (b *Backend) Shutdown() error {
	for handle := range b.geometries {
		b.GeometryDestroy(handle)
	}
	return nil
}

func (b *Backend) BeginFrame() error {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	return nil
}

func (b *Backend) EndFrame() error {
	return nil
}

func (b *Backend) Resize(width, height uint32) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (b *Backend) TextureCreate(pixels []uint8, width, height, channelCount int) (metadata.TextureHandle, error) {
	var internalFormat int32
	var format uint32
	switch channelCount {
	case 3:
		internalFormat = gl.RGB8
		format = gl.RGB
	case 4:
		internalFormat = gl.RGBA8
		format = gl.RGBA
	default:
		return metadata.InvalidTextureHandle, fmt.Errorf("texture upload requires 3 or 4 channels, got %d", channelCount)
	}

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// RGB rows are not 4-byte aligned
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, int32(width), int32(height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return metadata.TextureHandle(textureID), nil
}

func (b *Backend) TextureBind(unit int, handle metadata.TextureHandle) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, uint32(handle))
}

func (b *Backend) TextureDestroy(handle metadata.TextureHandle) {
	id := uint32(handle)
	gl.DeleteTextures(1, &id)
}

func (b *Backend) ProgramCreate(name, vertexSource, fragmentSource string) (metadata.ProgramHandle, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return metadata.InvalidProgramHandle, fmt.Errorf("vertex shader of program '%s': %w", name, err)
	}
	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return metadata.InvalidProgramHandle, fmt.Errorf("fragment shader of program '%s': %w", name, err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// shaders are owned by the program from here on
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)
		return metadata.InvalidProgramHandle, fmt.Errorf("failed to link program '%s': %s", name, infoLog)
	}

	return metadata.ProgramHandle(program), nil
}

func (b *Backend) ProgramUse(handle metadata.ProgramHandle) {
	b.currentProgram = uint32(handle)
	gl.UseProgram(b.currentProgram)
}

func (b *Backend) ProgramDestroy(handle metadata.ProgramHandle) {
	if uint32(handle) == b.currentProgram {
		b.currentProgram = 0
		gl.UseProgram(0)
	}
	delete(b.uniformLocations, uint32(handle))
	gl.DeleteProgram(uint32(handle))
}

func (b *Backend) SetUniformBool(name string, value bool) {
	v := int32(0)
	if value {
		v = 1
	}
	gl.Uniform1i(b.uniformLocation(name), v)
}

func (b *Backend) SetUniformInt(name string, value int32) {
	gl.Uniform1i(b.uniformLocation(name), value)
}

func (b *Backend) SetUniformFloat(name string, value float32) {
	gl.Uniform1f(b.uniformLocation(name), value)
}

func (b *Backend) SetUniformVec2(name string, value math.Vec2) {
	gl.Uniform2f(b.uniformLocation(name), value.X, value.Y)
}

func (b *Backend) SetUniformVec3(name string, value math.Vec3) {
	gl.Uniform3f(b.uniformLocation(name), value.X, value.Y, value.Z)
}

func (b *Backend) SetUniformVec4(name string, value math.Vec4) {
	gl.Uniform4f(b.uniformLocation(name), value.X, value.Y, value.Z, value.W)
}

func (b *Backend) SetUniformMat4(name string, value math.Mat4) {
	gl.UniformMatrix4fv(b.uniformLocation(name), 1, false, &value.Data[0])
}

func (b *Backend) GeometryCreate(config *metadata.GeometryConfig) (metadata.GeometryHandle, error) {
	if len(config.Vertices) == 0 || len(config.Indices) == 0 {
		return metadata.InvalidGeometryHandle, fmt.Errorf("geometry '%s' has no vertex or index data", config.Name)
	}

	// flatten into the interleaved layout the shader expects
	data := make([]float32, 0, len(config.Vertices)*8)
	for _, v := range config.Vertices {
		data = append(data,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.Texcoord.X, v.Texcoord.Y,
		)
	}

	buffers := &geometryBuffers{
		indexCount: int32(len(config.Indices)),
	}

	gl.GenVertexArrays(1, &buffers.vao)
	gl.BindVertexArray(buffers.vao)

	gl.GenBuffers(1, &buffers.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffers.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &buffers.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buffers.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(config.Indices)*4, gl.Ptr(config.Indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, 6*4)

	gl.BindVertexArray(0)

	b.geometries[metadata.GeometryHandle(buffers.vao)] = buffers

	return metadata.GeometryHandle(buffers.vao), nil
}

func (b *Backend) GeometryDraw(handle metadata.GeometryHandle) {
	buffers, ok := b.geometries[handle]
	if !ok {
		core.LogError("draw requested for unknown geometry handle %d", handle)
		return
	}
	gl.BindVertexArray(buffers.vao)
	gl.DrawElements(gl.TRIANGLES, buffers.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (b *Backend) GeometryDestroy(handle metadata.GeometryHandle) {
	buffers, ok := b.geometries[handle]
	if !ok {
		return
	}
	gl.DeleteBuffers(1, &buffers.vbo)
	gl.DeleteBuffers(1, &buffers.ebo)
	gl.DeleteVertexArrays(1, &buffers.vao)
	delete(b.geometries, handle)
}

func (b *Backend) uniformLocation(name string) int32 {
	cache, ok := b.uniformLocations[b.currentProgram]
	if !ok {
		cache = make(map[string]int32)
		b.uniformLocations[b.currentProgram] = cache
	}
	if location, ok := cache[name]; ok {
		return location
	}
	location := gl.GetUniformLocation(b.currentProgram, gl.Str(name+"\x00"))
	if location < 0 {
		core.LogWarn("uniform '%s' not found in current program", name)
	}
	cache[name] = location
	return location
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %s", infoLog)
	}

	return shader, nil
}
