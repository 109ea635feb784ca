package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hubastard/render3d/engine/config"
	"github.com/hubastard/render3d/engine/core"
	glbackend "github.com/hubastard/render3d/engine/gfx/gl"
	"github.com/hubastard/render3d/engine/platform"
	"github.com/hubastard/render3d/engine/scene"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const controlsBanner = `Controls:
  W/A/S/D          move
  Space/Left-Shift up/down
  Q/E              yaw left/right
  R/F              pitch up/down
  Esc              quit
`

type App struct {
	cfg      config.Config
	demo     scene.Demo
	renderer *glbackend.Renderer
}

func (a *App) OnStart(e *core.Engine) {
	fmt.Print(controlsBanner)
	e.Window.SetTitle(fmt.Sprintf("%s [%s]", a.cfg.Window.Title, a.demo.Name))
	e.Layers.Push(&SceneLayer{
		demo:        a.demo,
		r:           a.renderer,
		shaderPath:  a.cfg.ShaderPath,
		texturePath: a.cfg.TexturePath,
		tint:        a.cfg.Tint,
		camParams:   a.cfg.Camera,
	})
}

func (a *App) OnUpdate(e *core.Engine)               {}
func (a *App) OnRender(e *core.Engine)               {}
func (a *App) OnEvent(e *core.Engine, ev core.Event) {}
func (a *App) OnShutdown(e *core.Engine)             {}

func main() {
	configPath := flag.String("config", "", "Path to YAML config")
	sceneName := flag.String("scene", "", fmt.Sprintf("Demo scene %v (overrides config)", scene.Names()))
	glDebug := flag.Bool("gl-debug", false, "Abort on the first OpenGL error")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with defaults")
		} else {
			cfg = loaded
		}
	}
	if *sceneName != "" {
		cfg.Scene = *sceneName
	}
	if *glDebug {
		cfg.GLDebug = true
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid config")
		os.Exit(-1)
	}

	demo, err := scene.Build(cfg.Scene, cfg.Room)
	if err != nil {
		log.Error().Err(err).Msg("scene")
		os.Exit(-1)
	}
	log.Debug().Interface("config", cfg).Msg("starting")

	app := &App{cfg: cfg, demo: demo}

	var win *platform.GLFWWindow
	newWindow := func(c core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(c, nil)
		if err != nil {
			return nil, err
		}
		win = w
		return w, nil
	}
	newRenderer := func(w core.Window, c core.Config) (core.Renderer, error) {
		r, err := glbackend.NewRenderer(w, c)
		if err != nil {
			return nil, err
		}
		log.Info().
			Str("vendor", r.GPUVendor()).
			Str("renderer", r.GPURenderer()).
			Str("version", r.GPUVersion()).
			Msg("GL")
		app.renderer = r
		return r, nil
	}

	if err := core.Run(app, cfg.Engine(), newWindow, newRenderer); err != nil {
		log.Error().Err(err).Msg("setup failed")
		os.Exit(-1)
	}
	win.Destroy()
}
