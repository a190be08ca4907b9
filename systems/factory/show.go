package factory

import (
	"github.com/automoto/fireworks/archetypes"
	"github.com/automoto/fireworks/assets"
	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/fireworks"
	"github.com/automoto/fireworks/render/gpu"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateShow spawns the show singleton with a stage sized to w x h device pixels
func CreateShow(ecs *ecs.ECS, opts cfg.Options, w, h int, deviceScale float64) *donburi.Entry {
	show := archetypes.Show.Spawn(ecs)
	if deviceScale <= 0 {
		deviceScale = 1
	}
	opts.Normalize()

	data := components.ShowData{
		Options:     opts,
		Width:       w,
		Height:      h,
		DeviceScale: deviceScale,
		ShowHUD:     opts.ShowHUD,
	}
	var trails, main fireworks.Surface
	if w > 0 && h > 0 {
		data.Trails = gpu.NewSurface(w, h, assets.BurstFlashShader)
		data.Main = gpu.NewSurface(w, h, assets.BurstFlashShader)
		trails, main = data.Trails, data.Main
	}
	data.Stage = fireworks.NewStage(fireworks.StageOptions{
		Options:     opts,
		Trails:      trails,
		Main:        main,
		Width:       float64(w) / deviceScale,
		Height:      float64(h) / deviceScale,
		DeviceScale: deviceScale,
		OnBurst: func(ev fireworks.BurstEvent) {
			sd := components.Show.Get(show)
			sd.Bursts++
			if ev.Nested {
				sd.NestedBursts++
			}
			sd.LastKind = ev.Kind
		},
	})
	components.Show.SetValue(show, data)

	zap.S().Infow("show created", "width", w, "height", h, "deviceScale", deviceScale,
		"quality", opts.Quality, "shellType", opts.ShellType, "shellSize", opts.ShellSize)
	return show
}

// CreateToast spawns the toast singleton
func CreateToast(ecs *ecs.ECS) *donburi.Entry {
	toast := archetypes.Toast.Spawn(ecs)
	components.Toast.SetValue(toast, components.ToastData{})
	return toast
}
