package engine

import (
	"fmt"

	"github.com/spaghettifunk/atelier/engine/config"
	"github.com/spaghettifunk/atelier/engine/core"
	"github.com/spaghettifunk/atelier/engine/math"
	"github.com/spaghettifunk/atelier/engine/platform"
	"github.com/spaghettifunk/atelier/engine/renderer"
	"github.com/spaghettifunk/atelier/engine/renderer/opengl"
	"github.com/spaghettifunk/atelier/engine/systems"
	"github.com/spaghettifunk/atelier/scene"
)

/**
 * @brief Application owns the window, the render backend, the resource
 * systems and the scene, and runs the main loop until the window closes.
 */
type Application struct {
	config   *config.Config
	platform *platform.Platform
	backend  renderer.Backend
	systems  *systems.SystemManager
	scene    *scene.Scene

	clock *core.Clock
	stats *core.FrameStats

	width  uint32
	height uint32
}

func New(cfg *config.Config) *Application {
	return &Application{
		config: cfg,
		clock:  core.NewClock(),
		stats:  core.NewFrameStats(),
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}
}

// Initialize brings up the window and GL context, builds the systems,
// compiles the scene shader and prepares all scene resources. After it
// returns the application is ready to Run.
func (a *Application) Initialize() error {
	core.SetLogLevel(a.config.LogLevel)

	p, err := platform.New()
	if err != nil {
		return err
	}
	a.platform = p

	w := a.config.Window
	if err := a.platform.Startup(w.Title, w.X, w.Y, w.Width, w.Height); err != nil {
		return err
	}

	a.backend = opengl.New()
	if err := a.backend.Initialize(); err != nil {
		return err
	}
	a.platform.OnResize(func(width, height uint32) {
		a.width, a.height = width, height
		a.backend.Resize(width, height)
		a.pushCamera()
	})

	sm, err := systems.NewSystemManager(a.config, a.backend)
	if err != nil {
		return fmt.Errorf("failed to initialize systems: %w", err)
	}
	a.systems = sm

	if err := a.systems.ShaderSystem.CreateProgram("scene", "scene.vert", "scene.frag"); err != nil {
		return err
	}
	if err := a.systems.ShaderSystem.Use(); err != nil {
		return err
	}

	a.scene = scene.New(a.systems)
	if err := a.scene.Prepare(); err != nil {
		return err
	}

	// uniform state persists while the program stays bound, so lights and
	// camera are pushed once up front
	a.systems.LightSystem.Configure()
	a.pushCamera()

	core.LogInfo("application initialized: %dx%d '%s'", w.Width, w.Height, w.Title)
	return nil
}

// Run drives the main loop until the window is closed.
func (a *Application) Run() error {
	a.clock.Start()
	last := 0.0

	for !a.platform.ShouldClose() {
		a.clock.Update()
		now := a.clock.Elapsed()
		delta := now - last
		last = now

		a.platform.PumpMessages()

		if err := a.backend.BeginFrame(); err != nil {
			return err
		}
		a.scene.Render()
		if err := a.backend.EndFrame(); err != nil {
			return err
		}
		a.platform.SwapBuffers()

		a.stats.Record(delta)
	}

	core.LogInfo("shutting down: %.0f fps, %.2f ms/frame on exit", a.stats.FPS(), a.stats.AvgFrameTime())
	return nil
}

// Shutdown tears everything down in reverse initialization order. Safe to
// call after a partial Initialize.
func (a *Application) Shutdown() {
	a.clock.Stop()

	if a.systems != nil {
		if err := a.systems.Shutdown(); err != nil {
			core.LogError("systems shutdown: %v", err)
		}
	}
	if a.backend != nil {
		if err := a.backend.Shutdown(); err != nil {
			core.LogError("backend shutdown: %v", err)
		}
	}
	if a.platform != nil {
		if err := a.platform.Shutdown(); err != nil {
			core.LogError("platform shutdown: %v", err)
		}
	}
}

// pushCamera writes the static view and projection matrices. The viewpoint
// overlooks the room from the open corner.
func (a *Application) pushCamera() {
	// a minimized window reports zero dimensions
	if a.width == 0 || a.height == 0 {
		return
	}
	aspect := float32(a.width) / float32(a.height)

	eye := math.Vec3{X: -16.0, Y: 18.0, Z: 26.0}
	projection := math.NewMat4Perspective(math.DegToRad(45.0), aspect, 0.1, 200.0)
	view := math.NewMat4LookAt(eye, math.Vec3{X: 8.0, Y: 8.0, Z: -5.0}, math.Vec3{Y: 1.0})

	ss := a.systems.ShaderSystem
	ss.SetMat4(a.systems.UniformNames.View, view)
	ss.SetMat4(a.systems.UniformNames.Projection, projection)
	ss.SetVec3(a.systems.UniformNames.ViewPosition, eye)
}
