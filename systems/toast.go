package systems

import (
	"image/color"

	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Share of ToastSeconds the message stays fully visible
const toastHoldShare = 0.4

var toastFontFace font.Face

// ShowToast replaces the current toast with msg and restarts its fade
func ShowToast(ecs *ecs.ECS, msg string) {
	toast, ok := getToast(ecs)
	if !ok {
		return
	}
	toast.Text = msg
	toast.Alpha = 1
	toast.Hold = cfg.HUD.ToastSeconds * toastHoldShare
	toast.Fade = gween.New(1, 0, cfg.HUD.ToastSeconds*(1-toastHoldShare), ease.InQuad)
}

// UpdateToast advances the toast fade by one tick
func UpdateToast(ecs *ecs.ECS) {
	toast, ok := getToast(ecs)
	if !ok || toast.Fade == nil {
		return
	}
	dt := float32(frameMs() / 1000)
	if toast.Hold > 0 {
		toast.Hold -= dt
		return
	}
	alpha, done := toast.Fade.Update(dt)
	toast.Alpha = alpha
	if done {
		toast.Text = ""
		toast.Alpha = 0
		toast.Fade = nil
	}
}

// DrawToast renders the toast centered near the top of the screen
func DrawToast(ecs *ecs.ECS, screen *ebiten.Image) {
	toast, ok := getToast(ecs)
	if !ok || toast.Text == "" || toast.Alpha <= 0 {
		return
	}
	if toastFontFace == nil {
		toastFontFace = fonts.Toast.Get()
	}

	bounds := text.BoundString(toastFontFace, toast.Text) //nolint:staticcheck // TODO: migrate to text/v2
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	y := int(cfg.HUD.ToastY) + bounds.Dy()
	text.Draw(screen, toast.Text, toastFontFace, x, y, fadeColor(cfg.HUD.ToastColor, toast.Alpha)) //nolint:staticcheck // TODO: migrate to text/v2
}

// fadeColor scales a straight-alpha colour into its premultiplied faded form
func fadeColor(c color.RGBA, alpha float32) color.RGBA {
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

func getToast(ecs *ecs.ECS) (*components.ToastData, bool) {
	entry, ok := components.Toast.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Toast.Get(entry), true
}
