package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigPath = "studio.toml"
	ConfigEnvVar      = "STUDIO_CONFIG"
)

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
	PosX   uint32 `toml:"pos_x"`
	PosY   uint32 `toml:"pos_y"`
	VSync  bool   `toml:"vsync"`
}

type LogConfig struct {
	Level        string `toml:"level"`
	ConsoleLines int    `toml:"console_lines"`
}

type PathsConfig struct {
	Objects  string `toml:"objects"`
	Textures string `toml:"textures"`
	// Searched for mtllib files not found next to the object.
	Materials string `toml:"materials"`
	// Empty means the shaders compiled into the binary.
	Shaders string `toml:"shaders"`
}

type CameraConfig struct {
	Eye         [3]float32 `toml:"eye"`
	Ref         [3]float32 `toml:"ref"`
	Up          [3]float32 `toml:"up"`
	FOV         float32    `toml:"fov"`
	Near        float32    `toml:"near"`
	Far         float32    `toml:"far"`
	Top         float32    `toml:"top"`
	Perspective bool       `toml:"perspective"`
}

type LightConfig struct {
	Position [4]float32 `toml:"position"`
	Color    [4]float32 `toml:"color"`
	Ambient  [4]float32 `toml:"ambient"`
}

type SpeedsConfig struct {
	Rotation    float32 `toml:"rotation"`
	Translation float32 `toml:"translation"`
	Scale       float32 `toml:"scale"`
	Camera      float32 `toml:"camera"`
}

type LoaderConfig struct {
	Normalize bool `toml:"normalize"`
	Watch     bool `toml:"watch"`
}

// Config is the studio configuration as read from studio.toml.
type Config struct {
	Window WindowConfig `toml:"window"`
	Log    LogConfig    `toml:"log"`
	Paths  PathsConfig  `toml:"paths"`
	Camera CameraConfig `toml:"camera"`
	Light  LightConfig  `toml:"light"`
	Speeds SpeedsConfig `toml:"speeds"`
	Loader LoaderConfig `toml:"loader"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "3D Studio",
			Width:  1024,
			Height: 768,
			PosX:   100,
			PosY:   100,
			VSync:  true,
		},
		Log: LogConfig{
			Level:        "info",
			ConsoleLines: 1024,
		},
		Paths: PathsConfig{
			Objects:   "./object_files",
			Textures:  "./textures",
			Materials: "./object_files",
		},
		Camera: CameraConfig{
			Eye:         [3]float32{0, 0, 2},
			Ref:         [3]float32{0, 0, 0},
			Up:          [3]float32{0, 1, 0},
			FOV:         60,
			Near:        0.1,
			Far:         500,
			Top:         1,
			Perspective: true,
		},
		Light: LightConfig{
			Position: [4]float32{0, 5, 0, 0},
			Color:    [4]float32{1, 1, 1, 1},
			Ambient:  [4]float32{0.1, 0.1, 0.1, 1},
		},
		Speeds: SpeedsConfig{
			Rotation:    5,
			Translation: 0.1,
			Scale:       0.1,
			Camera:      0.1,
		},
		Loader: LoaderConfig{
			Normalize: true,
			Watch:     true,
		},
	}
}

// LoadConfig reads the TOML file at path on top of the defaults. A missing
// file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			LogDebug("config file %s not found, using defaults", path)
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveConfigPath picks the flag value, then the environment, then the default.
func ResolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(ConfigEnvVar); env != "" {
		return env
	}
	return DefaultConfigPath
}

func (c *Config) validate() error {
	if c.Window.Width == 0 || c.Window.Height == 0 {
		return errors.New("window size must be non-zero")
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return errors.New("camera near plane must be positive and smaller than far plane")
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return errors.New("camera fov must be in (0, 180)")
	}
	if c.Log.ConsoleLines <= 0 {
		return errors.New("log.console_lines must be positive")
	}
	return nil
}

// Save writes the configuration as TOML.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
