package fireworks

import (
	"image/color"
	"math"

	"github.com/automoto/fireworks/config"
)

// Sky is the background tint that follows the colours of the live stars
type Sky struct {
	R, G, B float64
}

func (sky *Sky) update(ctx *Context, speed float64) {
	level := float64(ctx.Options.SkyLighting)
	maxSaturation := level * config.Sky.SaturationPerLevel

	var tr, tg, tb, total float64
	for _, c := range VisibleColors {
		n := float64(len(ctx.Stars.Active[c]))
		rgba := c.RGBA()
		tr += float64(rgba.R) * n
		tg += float64(rgba.G) * n
		tb += float64(rgba.B) * n
		total += n
	}
	intensity := math.Pow(math.Min(1, total/config.Sky.MaxStarCount), 0.3)
	peak := math.Max(1, math.Max(tr, math.Max(tg, tb)))
	tr = tr / peak * maxSaturation * intensity
	tg = tg / peak * maxSaturation * intensity
	tb = tb / peak * maxSaturation * intensity

	step := speed / config.Sky.ColorChange
	sky.R += (tr - sky.R) * step
	sky.G += (tg - sky.G) * step
	sky.B += (tb - sky.B) * step
}

// Color returns the current tint
func (sky Sky) Color() color.RGBA {
	return color.RGBA{R: clamp8(sky.R), G: clamp8(sky.G), B: clamp8(sky.B), A: 255}
}

func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
