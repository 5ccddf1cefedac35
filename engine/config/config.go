package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// WindowConfig describes the platform window hosting the GL context.
type WindowConfig struct {
	Title  string `toml:"title"`
	X      uint32 `toml:"x"`
	Y      uint32 `toml:"y"`
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

// AssetsConfig points at the on-disk asset tree.
type AssetsConfig struct {
	// Root directory containing all loadable assets.
	RootDir string `toml:"root_dir"`
	// Directory with texture images, relative to RootDir.
	TextureDir string `toml:"texture_dir"`
	// Directory with GLSL shader sources, relative to RootDir.
	ShaderDir string `toml:"shader_dir"`
}

// Config is the full application configuration, loaded once at startup.
type Config struct {
	LogLevel string       `toml:"log_level"`
	Window   WindowConfig `toml:"window"`
	Assets   AssetsConfig `toml:"assets"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		LogLevel: "debug",
		Window: WindowConfig{
			Title:  "Atelier",
			X:      100,
			Y:      100,
			Width:  1000,
			Height: 800,
		},
		Assets: AssetsConfig{
			RootDir:    "assets",
			TextureDir: "textures",
			ShaderDir:  "shaders",
		},
	}
}

// Load reads a TOML configuration file and overlays it on the defaults.
// A missing file is not an error; the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config '%s': %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config '%s': %w", path, err)
	}
	return cfg, nil
}
