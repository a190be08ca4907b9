package fireworks

import (
	"testing"

	"github.com/automoto/fireworks/config"
)

func newTestStage(opts config.Options) (*Stage, *recordingSurface, *recordingSurface) {
	trails, main := &recordingSurface{}, &recordingSurface{}
	s := NewStage(StageOptions{
		Options:     opts,
		Trails:      trails,
		Main:        main,
		Width:       1280,
		Height:      720,
		DeviceScale: 2,
		Seed:        99,
	})
	return s, trails, main
}

func TestStageResizeUsesScaleFactor(t *testing.T) {
	opts := config.DefaultOptions()
	opts.ScaleFactor = 2
	s, _, _ := newTestStage(opts)
	if s.ctx.Width != 640 || s.ctx.Height != 360 {
		t.Errorf("Expected stage 640x360, got %vx%v", s.ctx.Width, s.ctx.Height)
	}
	s.Resize(1000, 500)
	if s.ctx.Width != 500 || s.ctx.Height != 250 {
		t.Errorf("Expected stage 500x250, got %vx%v", s.ctx.Width, s.ctx.Height)
	}
}

func TestStageTick(t *testing.T) {
	opts := config.DefaultOptions()
	opts.AutoLaunch = false
	s, trails, _ := newTestStage(opts)

	st := s.ctx.Stars.Add(100, 100, Red, 0, 0, 1000, 0, 0)
	s.Tick(500)
	if want := 1000 - config.Frame.MaxFrameMs; st.Life != want {
		t.Errorf("Expected long frames clamped, life %v, got %v", want, st.Life)
	}
	if trails.scale != 1 || len(trails.calls) == 0 {
		t.Errorf("Expected a render pass")
	}
	if trails.calls[0].op != "scale" {
		t.Errorf("Expected render to start by scaling")
	}

	s.SetPaused(true)
	frame := s.Stats().Frame
	n := len(trails.calls)
	s.Tick(16)
	if s.Stats().Frame != frame || len(trails.calls) != n {
		t.Errorf("Expected a paused stage to neither update nor draw")
	}
	s.SetPaused(false)
	s.Tick(16)
	if s.Stats().Frame != frame+1 {
		t.Errorf("Expected the stage to resume")
	}
}

func TestStageSimSpeed(t *testing.T) {
	opts := config.DefaultOptions()
	opts.AutoLaunch = false
	s, _, _ := newTestStage(opts)
	st := s.ctx.Stars.Add(100, 100, Red, 0, 0, 1000, 0, 0)

	s.SetSimSpeed(0.5)
	s.Update(20, 1)
	if st.Life != 990 {
		t.Errorf("Expected half speed to halve the timestep, got life %v", st.Life)
	}

	s.SetSimSpeed(100)
	if s.SimSpeed() != config.HUD.MaxSimSpeed {
		t.Errorf("Expected speed clamped to %v, got %v", config.HUD.MaxSimSpeed, s.SimSpeed())
	}
}

func TestStageLaunchAt(t *testing.T) {
	opts := config.DefaultOptions()
	opts.AutoLaunch = false
	opts.ShellType = config.ShellPalm
	s, _, _ := newTestStage(opts)

	s.LaunchAt(640, 360)
	if s.Stats().Shells != 1 {
		t.Fatalf("Expected one shell, got %d", s.Stats().Shells)
	}
	var comet *Star
	for c := Color(0); c < ColorCount; c++ {
		for _, st := range s.ctx.Stars.Active[c] {
			comet = st
		}
	}
	if comet == nil || comet.X != 640 || comet.Y != 720 {
		t.Errorf("Expected comet launched from the bottom centre, got %+v", comet)
	}
}

func TestStageAutoLaunchToggle(t *testing.T) {
	s, _, _ := newTestStage(config.DefaultOptions())
	s.SetAutoLaunch(false)
	for i := 0; i < 100; i++ {
		s.Tick(16)
	}
	if s.Stats().Shells != 0 {
		t.Errorf("Expected no launches")
	}
	s.SetAutoLaunch(true)
	s.Tick(16)
	if s.Stats().Shells+s.Stats().Pending == 0 {
		t.Errorf("Expected a launch once auto launch is back on")
	}
}

func TestStageStop(t *testing.T) {
	s, trails, _ := newTestStage(config.DefaultOptions())
	for i := 0; i < 200; i++ {
		s.Tick(16)
	}
	if s.Stats().Stars == 0 {
		t.Fatalf("Expected a running show")
	}

	s.Stop()
	st := s.Stats()
	if st.Stars != 0 || st.Sparks != 0 || st.Pending != 0 {
		t.Errorf("Expected stop to empty the stage, got %+v", st)
	}
	if st.StarsAllocated != s.ctx.Stars.Free() {
		t.Errorf("Expected every star back in the pool")
	}

	n := len(trails.calls)
	s.Tick(16)
	s.LaunchAt(10, 10)
	if len(trails.calls) != n || s.Stats().Frame != st.Frame || s.Stats().Shells != st.Shells {
		t.Errorf("Expected a stopped stage to stay inert")
	}
}

func TestStageWithoutSurfacesStillSimulates(t *testing.T) {
	s := NewStage(StageOptions{Options: config.DefaultOptions(), Width: 800, Height: 600, Seed: 3})
	for i := 0; i < 120; i++ {
		s.Tick(16)
	}
	if s.Stats().Frame != 120 {
		t.Errorf("Expected 120 frames, got %d", s.Stats().Frame)
	}
}
