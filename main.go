package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/automoto/fireworks/assets"
	"github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/fonts"
	"github.com/automoto/fireworks/logging"
	"github.com/automoto/fireworks/scenes"
	"github.com/automoto/fireworks/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int) (int, int)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts config.Options) *Game {
	g := &Game{}

	if config.Debug.SkipOptions {
		g.scene = scenes.NewFireworksScene(g, opts)
	} else {
		g.scene = scenes.NewOptionsScene(g, opts)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.scene.Layout(width, height)
}

type flags struct {
	configPath  string
	logLevel    string
	logFile     string
	skipOptions bool
	compact     bool
	quality     int
	shellType   string
	shellSize   int
	autoLaunch  bool
	scale       float64
	sky         int
	speed       float64
	hud         bool
}

func parseFlags() (*flags, map[string]bool) {
	f := &flags{}
	flag.StringVar(&f.configPath, "config", "", "YAML options file")
	flag.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flag.StringVar(&f.logFile, "log-file", "", "write logs to this file instead of stderr")
	flag.BoolVar(&f.skipOptions, "skip-options", false, "start the show without the options panel")
	flag.BoolVar(&f.compact, "compact", false, "start from the small viewport defaults")
	flag.IntVar(&f.quality, "quality", int(config.QualityNormal), "1 low, 2 normal, 3 high")
	flag.StringVar(&f.shellType, "shell-type", string(config.ShellRandom), "shell archetype")
	flag.IntVar(&f.shellSize, "shell-size", 2, "shell size 0-4")
	flag.BoolVar(&f.autoLaunch, "auto-launch", true, "launch shells automatically")
	flag.Float64Var(&f.scale, "scale", 1, "scale factor 0.5-2")
	flag.IntVar(&f.sky, "sky", 2, "sky lighting 0 none, 1 dim, 2 normal")
	flag.Float64Var(&f.speed, "speed", 1, "simulation speed 0.1-2")
	flag.BoolVar(&f.hud, "hud", true, "show the HUD")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return f, set
}

// resolveOptions layers defaults, saved options, the config file and explicit flags
func resolveOptions(f *flags, set map[string]bool) config.Options {
	opts := config.DefaultOptions()
	if f.compact {
		opts = config.CompactOptions()
	}

	saved, err := systems.LoadOptions(opts)
	if err != nil {
		zap.S().Warnw("ignoring saved options", "error", err)
	} else {
		opts = saved
	}

	if f.configPath != "" {
		loaded, err := config.LoadOptions(f.configPath, opts)
		if err != nil {
			zap.S().Warnw("ignoring options file", "path", f.configPath, "error", err)
		} else {
			opts = loaded
		}
	}

	if set["quality"] {
		opts.Quality = config.Quality(f.quality)
	}
	if set["shell-type"] {
		t, ok := config.ShellTypeFromString(f.shellType)
		if !ok {
			zap.S().Warnw("unknown shell type, using Random", "shellType", f.shellType)
		}
		opts.ShellType = t
	}
	if set["shell-size"] {
		opts.ShellSize = f.shellSize
	}
	if set["auto-launch"] {
		opts.AutoLaunch = f.autoLaunch
	}
	if set["scale"] {
		opts.ScaleFactor = f.scale
	}
	if set["sky"] {
		opts.SkyLighting = f.sky
	}
	if set["speed"] {
		opts.SimSpeed = f.speed
	}
	if set["hud"] {
		opts.ShowHUD = f.hud
	}
	opts.Normalize()
	return opts
}

func main() {
	f, set := parseFlags()
	config.Debug.SkipOptions = f.skipOptions

	logger, err := logging.New(logging.Config{Level: f.logLevel, File: f.logFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "fireworks: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync() //nolint:errcheck

	if err := fonts.LoadDefaults(config.HUD.HUDFontSize, config.HUD.ToastFontSize); err != nil {
		logger.Fatalw("could not load fonts", "error", err)
	}
	if err := assets.LoadShaders(); err != nil {
		// Flashes fall back to flat discs
		logger.Warnw("could not compile shaders", "error", err)
	}

	// Initialize persistence and load saved options
	if err := systems.InitPersistence(); err != nil {
		logger.Warnw("could not initialize persistence", "error", err)
	}
	opts := resolveOptions(f, set)
	logger.Debugw("options resolved", "options", opts)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		logger.Fatalw("game exited", "error", err)
	}
}
