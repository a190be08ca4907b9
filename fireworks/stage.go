package fireworks

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/automoto/fireworks/config"
	"go.uber.org/zap"
)

// StageOptions configure a new Stage
type StageOptions struct {
	Options config.Options

	// Trails and Main may be nil, in which case the stage simulates without drawing
	Trails Surface
	Main   Surface

	// Width and Height are the viewport size in logical pixels
	Width, Height float64
	// DeviceScale is the device pixels per logical pixel
	DeviceScale float64

	// Seed makes a stage reproducible; zero seeds from the runtime
	Seed uint64

	OnBurst func(BurstEvent)
}

// Stage hosts one show: the simulation context plus its two drawing surfaces
type Stage struct {
	ctx         *Context
	trails      Surface
	main        Surface
	deviceScale float64
	simSpeed    float64
	paused      bool
	stopped     bool
}

// NewStage builds a stage sized to the viewport
func NewStage(opts StageOptions) *Stage {
	var r *rand.Rand
	if opts.Seed != 0 {
		r = rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	}
	ctx := NewContext(opts.Options, r)
	ctx.OnBurst = opts.OnBurst

	s := &Stage{
		ctx:         ctx,
		trails:      opts.Trails,
		main:        opts.Main,
		deviceScale: opts.DeviceScale,
		simSpeed:    ctx.Options.SimSpeed,
	}
	if s.deviceScale <= 0 {
		s.deviceScale = 1
	}
	if s.trails == nil || s.main == nil {
		zap.S().Warnw("stage has no drawing surfaces, rendering disabled")
	}
	s.Resize(opts.Width, opts.Height)
	return s
}

// Context exposes the simulation state
func (s *Stage) Context() *Context { return s.ctx }

// Resize sets the viewport size in logical pixels
func (s *Stage) Resize(w, h float64) {
	scale := s.ctx.Options.ScaleFactor
	s.ctx.Width = w / scale
	s.ctx.Height = h / scale
}

// SetSurfaces replaces the drawing surfaces, for example after a window resize
func (s *Stage) SetSurfaces(trails, main Surface) {
	s.trails, s.main = trails, main
}

// Tick runs one frame: update then render. frameMs is the wall time since the last tick.
func (s *Stage) Tick(frameMs float64) {
	if s.stopped || s.paused {
		return
	}
	frameMs = math.Min(math.Max(frameMs, 0), config.Frame.MaxFrameMs)
	lag := frameMs / config.Frame.TargetFrameMs
	s.Update(frameMs, lag)
	s.Render(lag)
}

// Update advances the simulation by frameTime milliseconds of wall time
func (s *Stage) Update(frameTime, lag float64) {
	if s.stopped {
		return
	}
	s.ctx.Update(frameTime*s.simSpeed, s.simSpeed*lag)
}

// Render draws the current state onto the stage surfaces
func (s *Stage) Render(lag float64) {
	if s.stopped {
		return
	}
	s.ctx.Render(s.trails, s.main, s.deviceScale*s.ctx.Options.ScaleFactor, s.simSpeed*lag)
}

// LaunchAt launches a shell of the configured type towards a point in logical pixels
func (s *Stage) LaunchAt(x, y float64) {
	w := s.ctx.Width * s.ctx.Options.ScaleFactor
	h := s.ctx.Height * s.ctx.Options.ScaleFactor
	if w <= 0 || h <= 0 {
		return
	}
	s.Launch(s.ctx.NextShell(s.ctx.Options.ShellSize), x/w, 1-y/h)
}

// Launch fires shell at normalised position and apex height
func (s *Stage) Launch(shell *Shell, position, height float64) *Star {
	if s.stopped {
		return nil
	}
	return shell.Launch(s.ctx, position, height)
}

// SetPaused freezes the simulation and leaves the surfaces untouched
func (s *Stage) SetPaused(p bool) { s.paused = p }

// Paused reports whether the stage is paused
func (s *Stage) Paused() bool { return s.paused }

// SetSimSpeed sets the global simulation speed multiplier
func (s *Stage) SetSimSpeed(v float64) {
	s.simSpeed = math.Min(math.Max(v, config.HUD.MinSimSpeed), config.HUD.MaxSimSpeed)
}

// SimSpeed returns the global simulation speed multiplier
func (s *Stage) SimSpeed() float64 { return s.simSpeed }

// SetAutoLaunch turns the scheduler on or off
func (s *Stage) SetAutoLaunch(on bool) { s.ctx.Options.AutoLaunch = on }

// AutoLaunch reports whether the scheduler is on
func (s *Stage) AutoLaunch() bool { return s.ctx.Options.AutoLaunch }

// SkyColor is the background tint to draw behind both surfaces
func (s *Stage) SkyColor() color.RGBA { return s.ctx.Sky.Color() }

// Stats reports pool and show counters
func (s *Stage) Stats() Stats { return s.ctx.Stats() }

// Stop halts the stage for good. Pending launches are dropped and live
// particles returned to their pools.
func (s *Stage) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	st := s.ctx.Stats()
	s.ctx.Reset()
	zap.S().Debugw("stage stopped", "frame", st.Frame, "shells", st.Shells, "bursts", st.Bursts,
		"starsAllocated", st.StarsAllocated, "sparksAllocated", st.SparksAllocated)
}

// Stopped reports whether Stop was called
func (s *Stage) Stopped() bool { return s.stopped }
