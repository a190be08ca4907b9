// Command snapshot runs a show headlessly on CPU surfaces and writes the last frame as an image.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/fireworks"
	"github.com/automoto/fireworks/logging"
	"github.com/automoto/fireworks/render"
	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

func main() {
	var (
		frames     = flag.Int("frames", 240, "frames to simulate")
		width      = flag.Int("width", 960, "viewport width in logical pixels")
		height     = flag.Int("height", 540, "viewport height in logical pixels")
		scale      = flag.Float64("scale", 1, "device pixels per logical pixel")
		out        = flag.String("out", "fireworks.png", "output image; the extension picks the format")
		configPath = flag.String("config", "", "YAML options file")
		seed       = flag.Uint64("seed", 1, "random seed, 0 seeds from the runtime")
		launches   = flag.Int("launch", 0, "extra shells launched on the first frame")
		logLevel   = flag.String("log-level", "info", "log level: debug, info, warn or error")
	)
	flag.Parse()

	logger, err := logging.New(logging.Config{Level: *logLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "snapshot: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(*frames, *width, *height, *scale, *out, *configPath, *seed, *launches); err != nil {
		logger.Fatalw("snapshot failed", "error", err)
	}
}

func run(frames, width, height int, scale float64, out, configPath string, seed uint64, launches int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("viewport %dx%d is empty", width, height)
	}
	if scale <= 0 {
		scale = 1
	}

	opts := config.DefaultOptions()
	if configPath != "" {
		var err error
		if opts, err = config.LoadOptions(configPath, opts); err != nil {
			return err
		}
	}

	pw, ph := int(float64(width)*scale), int(float64(height)*scale)
	trails := render.NewRasterSurface(pw, ph)
	main := render.NewRasterSurface(pw, ph)

	bursts := 0
	stage := fireworks.NewStage(fireworks.StageOptions{
		Options:     opts,
		Trails:      trails,
		Main:        main,
		Width:       float64(width),
		Height:      float64(height),
		DeviceScale: scale,
		Seed:        seed,
		OnBurst:     func(fireworks.BurstEvent) { bursts++ },
	})
	ctx := stage.Context()
	for i := 0; i < launches; i++ {
		pos := (float64(i) + 0.5) / float64(launches)
		stage.Launch(ctx.NextShell(ctx.Options.ShellSize), pos, config.Schedule.MaxHeight)
	}

	for i := 0; i < frames; i++ {
		stage.Tick(config.Frame.TargetFrameMs)
	}

	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	render.Composite(img, stage.SkyColor(), trails, main)

	var result image.Image = img
	if scale != 1 {
		// Downsample to the logical viewport
		result = imaging.Resize(img, width, height, imaging.Lanczos)
	}
	if err := imaging.Save(result, out); err != nil {
		return fmt.Errorf("save %s: %w", out, err)
	}

	st := stage.Stats()
	zap.S().Infow("snapshot written", "out", out, "frames", frames, "bursts", bursts,
		"stars", st.Stars, "sparks", st.Sparks, "starsAllocated", st.StarsAllocated)
	stage.Stop()
	return nil
}
