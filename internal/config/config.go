package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/drsaluml/gorasterizer/internal/raster/mathx"
)

// CameraKeyframe is one step of a scripted camera path: an offset applied
// via Camera.MoveOffset and a rotation added to the camera's current one
// via Camera.SetRotation. RenderScene applies every keyframe once, in
// order and cumulatively, before drawing its single frame. Stands in for an interactive
// keyboard loop (spec.md's "Keyboard surface") in a non-interactive CLI.
type CameraKeyframe struct {
	Offset   mathx.Vec3 `json:"offset"`
	Rotation mathx.Vec3 `json:"rotation"`
}

// Config holds all configurable paths and render settings for the demo
// host, resolved from a JSON file and CLI flag overrides.
type Config struct {
	ModelPath   string `json:"model_path"`
	TextureDir  string `json:"texture_dir"`
	OutputPath  string `json:"output_path"`
	BatchDir    string `json:"batch_dir"`

	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Supersample int    `json:"supersample"`
	Workers     int    `json:"workers"`
	Wireframe   bool   `json:"wireframe"`
	Backend     string `json:"backend"` // "scanline" or "aabb"
	WebPQuality int    `json:"webp_quality"`

	CameraPath []CameraKeyframe `json:"camera_path"`
}

// Load reads a JSON config file. Fields absent from the file keep their
// zero values, filled in later by Resolve.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config-file settings.
type Flags struct {
	ModelPath  string
	TextureDir string
	OutputPath string
	BatchDir   string
	Width      int
	Height     int
	Workers    int
	Wireframe  bool
	Backend    string
	Quality    int
}

// Resolve fills in empty fields with defaults, after CLI flags (which
// take priority over the config file when non-zero/non-empty) have been
// merged in.
func (c *Config) Resolve(flags Flags) {
	if flags.ModelPath != "" {
		c.ModelPath = flags.ModelPath
	}
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.OutputPath != "" {
		c.OutputPath = flags.OutputPath
	}
	if flags.BatchDir != "" {
		c.BatchDir = flags.BatchDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Backend != "" {
		c.Backend = flags.Backend
	}
	if flags.Wireframe {
		c.Wireframe = true
	}
	if flags.Quality > 0 {
		c.WebPQuality = flags.Quality
	}

	if c.TextureDir == "" && c.ModelPath != "" {
		c.TextureDir = filepath.Dir(c.ModelPath)
	}
	if c.OutputPath == "" {
		c.OutputPath = "out.png"
	}
	if c.Width <= 0 {
		c.Width = 512
	}
	if c.Height <= 0 {
		c.Height = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = 90
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Backend == "" {
		c.Backend = "scanline"
	}
}
