package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ToastData is a short status message that fades out over the show
type ToastData struct {
	Text  string
	Hold  float32 // seconds left before the fade starts
	Fade  *gween.Tween
	Alpha float32
}

var Toast = donburi.NewComponentType[ToastData]()
