package components

import (
	"image"

	cfg "github.com/automoto/fireworks/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Taps holds the screen positions of clicks and touches that started this frame
	Taps []image.Point
}

var Input = donburi.NewComponentType[InputData]()
