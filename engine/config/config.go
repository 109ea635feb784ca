package config

import (
	"fmt"
	"os"

	"github.com/hubastard/render3d/engine/colors"
	"github.com/hubastard/render3d/engine/core"
	"github.com/hubastard/render3d/engine/scene"
	"gopkg.in/yaml.v3"
)

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

type Config struct {
	Window      Window             `yaml:"window"`
	Scene       string             `yaml:"scene"`        // quad | plane | room | wall
	ShaderPath  string             `yaml:"shader_path"`  // annotated vertex+fragment file
	TexturePath string             `yaml:"texture_path"` // PNG
	GLDebug     bool               `yaml:"gl_debug"`     // abort on first GL error
	ClearColor  colors.Color       `yaml:"clear_color"`
	Tint        colors.Color       `yaml:"tint"`
	Camera      scene.CameraParams `yaml:"camera"`
	Room        scene.RoomParams   `yaml:"room"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:  "Render 3D",
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		Scene:       "room",
		ShaderPath:  "res/shaders/Simple.shader",
		TexturePath: "res/textures/Tile.png",
		ClearColor:  colors.DarkGray,
		Tint:        colors.White,
		Camera:      scene.DefaultCameraParams(),
		Room:        scene.DefaultRoomParams(),
	}
}

// Load reads path over Default, so the file only needs the fields it changes.
func Load(path string) (Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Default(), fmt.Errorf("parse config %q: %w", path, err)
	}
	return c, nil
}

func Save(path string, c Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if _, err := scene.Build(c.Scene, c.Room); err != nil {
		return err
	}
	cam := c.Camera
	if cam.FovY <= 0 || cam.FovY >= 180 {
		return fmt.Errorf("camera fov %v must be in (0, 180)", cam.FovY)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		return fmt.Errorf("camera clip planes near=%v far=%v must satisfy 0 < near < far", cam.Near, cam.Far)
	}
	if cam.MoveSpeed < 0 || cam.TurnSpeed < 0 {
		return fmt.Errorf("camera speeds must not be negative")
	}
	r := c.Room
	if r.Width <= 0 || r.Depth <= 0 || r.Height <= 0 {
		return fmt.Errorf("room %vx%vx%v must have positive size", r.Width, r.Depth, r.Height)
	}
	return nil
}

// Engine returns the window/loop part of c.
func (c Config) Engine() core.Config {
	return core.Config{
		Title:      c.Window.Title,
		Width:      c.Window.Width,
		Height:     c.Window.Height,
		VSync:      c.Window.VSync,
		GLMajor:    3,
		GLMinor:    3,
		GLDebug:    c.GLDebug,
		ClearColor: c.ClearColor,
	}
}
