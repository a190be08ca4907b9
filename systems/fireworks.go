package systems

import (
	"fmt"
	"math/rand/v2"

	"github.com/automoto/fireworks/assets"
	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/render/gpu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateFireworks applies viewer actions to the stage, then advances it by one tick.
// Must run after UpdateInput.
func UpdateFireworks(ecs *ecs.ECS) {
	show, ok := getShow(ecs)
	if !ok || show.Stage.Stopped() {
		return
	}
	input := getOrCreateInput(ecs)
	stage := show.Stage

	if GetAction(input, cfg.ActionPause).JustPressed {
		stage.SetPaused(!stage.Paused())
		if stage.Paused() {
			ShowToast(ecs, "Paused")
		} else {
			ShowToast(ecs, "Resumed")
		}
	}
	if GetAction(input, cfg.ActionToggleAutoLaunch).JustPressed {
		stage.SetAutoLaunch(!stage.AutoLaunch())
		ShowToast(ecs, "Auto launch "+cfg.OnOff(stage.AutoLaunch()))
	}
	if GetAction(input, cfg.ActionToggleHUD).JustPressed {
		show.ShowHUD = !show.ShowHUD
	}
	if GetAction(input, cfg.ActionSpeedUp).JustPressed {
		stage.SetSimSpeed(stage.SimSpeed() + cfg.HUD.SpeedStep)
		ShowToast(ecs, fmt.Sprintf("Speed %.1fx", stage.SimSpeed()))
	}
	if GetAction(input, cfg.ActionSpeedDown).JustPressed {
		stage.SetSimSpeed(stage.SimSpeed() - cfg.HUD.SpeedStep)
		ShowToast(ecs, fmt.Sprintf("Speed %.1fx", stage.SimSpeed()))
	}

	// Launches mutate the pools, so they wait for the stage to resume
	if !stage.Paused() {
		for _, p := range input.Taps {
			stage.LaunchAt(float64(p.X)/show.DeviceScale, float64(p.Y)/show.DeviceScale)
		}
		if GetAction(input, cfg.ActionLaunch).JustPressed {
			ctx := stage.Context()
			stage.Launch(ctx.NextShell(ctx.Options.ShellSize), 0.1+rand.Float64()*0.8, rand.Float64()*cfg.Schedule.MaxHeight)
		}
	}

	stage.Tick(frameMs())
}

// frameMs is the wall time covered by one ebiten tick
func frameMs() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		return cfg.Frame.TargetFrameMs
	}
	return 1000 / float64(tps)
}

// DrawFireworks composites the sky, trails and main layers onto the screen
func DrawFireworks(ecs *ecs.ECS, screen *ebiten.Image) {
	show, ok := getShow(ecs)
	if !ok || show.Trails == nil || show.Main == nil {
		screen.Fill(cfg.OptionsPanel.BackgroundColor)
		return
	}
	gpu.DrawLayers(screen, show.Stage.SkyColor(), show.Trails, show.Main)
}

// ResizeShow rebuilds the surfaces when the screen size in device pixels changes
func ResizeShow(ecs *ecs.ECS, w, h int) {
	show, ok := getShow(ecs)
	if !ok || (w == show.Width && h == show.Height) || w <= 0 || h <= 0 {
		return
	}
	if show.Trails != nil {
		show.Trails.Dispose()
	}
	if show.Main != nil {
		show.Main.Dispose()
	}
	show.Trails = gpu.NewSurface(w, h, assets.BurstFlashShader)
	show.Main = gpu.NewSurface(w, h, assets.BurstFlashShader)
	show.Width, show.Height = w, h
	show.Stage.SetSurfaces(show.Trails, show.Main)
	show.Stage.Resize(float64(w)/show.DeviceScale, float64(h)/show.DeviceScale)
	zap.S().Debugw("show resized", "width", w, "height", h)
}

// NewUpdateExit returns a system that stops the stage and calls onExit when the viewer backs out
func NewUpdateExit(onExit func()) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		if !JustPressed(ecs, cfg.ActionBack) {
			return
		}
		StopShow(ecs)
		if onExit != nil {
			onExit()
		}
	}
}

// StopShow tears the stage down and releases its surfaces
func StopShow(ecs *ecs.ECS) {
	show, ok := getShow(ecs)
	if !ok || show.Stage.Stopped() {
		return
	}
	show.Stage.Stop()
	if show.Trails != nil {
		show.Trails.Dispose()
		show.Trails = nil
	}
	if show.Main != nil {
		show.Main.Dispose()
		show.Main = nil
	}
}

func getShow(ecs *ecs.ECS) (*components.ShowData, bool) {
	entry, ok := components.Show.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Show.Get(entry), true
}
