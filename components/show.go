package components

import (
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/fireworks"
	"github.com/automoto/fireworks/render/gpu"
	"github.com/yohamta/donburi"
)

// ShowData is the singleton holding the running stage and its GPU surfaces
type ShowData struct {
	Stage   *fireworks.Stage
	Trails  *gpu.Surface
	Main    *gpu.Surface
	Options cfg.Options

	// Surface size in device pixels
	Width, Height int
	DeviceScale   float64

	ShowHUD bool

	// Burst counters fed by the stage observer
	Bursts       int
	NestedBursts int
	LastKind     fireworks.ShellKind
}

var Show = donburi.NewComponentType[ShowData]()
