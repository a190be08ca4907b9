package fireworks

import (
	"github.com/automoto/fireworks/config"
)

// Render draws the current particle state. trails keeps fading glow, main
// only holds this frame's star heads. scale maps simulation units to surface pixels.
func (ctx *Context) Render(trails, main Surface, scale, speed float64) {
	ctx.Sky.update(ctx, speed)
	if trails == nil || main == nil {
		ctx.Flashes.Drain(nil)
		return
	}
	rc := config.Render

	trails.SetScale(scale)
	main.SetScale(scale)

	trails.Fade(rc.TrailFade)
	main.Clear()

	trails.SetComposite(CompositeSourceOver)
	ctx.Flashes.Drain(func(f *BurstFlash) {
		trails.FillBurstFlash(f.X, f.Y, f.Radius)
	})

	trails.SetComposite(CompositeLighten)
	main.SetComposite(CompositeSourceOver)
	starCap := CapRound
	if ctx.Options.Quality == config.QualityLow {
		starCap = CapSquare
	}

	ctx.headSegs = ctx.headSegs[:0]
	for _, c := range VisibleColors {
		ctx.starSegs = ctx.starSegs[:0]
		for _, st := range ctx.Stars.Active[c] {
			if !st.Visible {
				continue
			}
			ctx.starSegs = append(ctx.starSegs, Segment{X0: st.X, Y0: st.Y, X1: st.PrevX, Y1: st.PrevY})
			ctx.headSegs = append(ctx.headSegs, Segment{
				X0: st.X, Y0: st.Y,
				X1: st.X - st.SpeedX*rc.HeadLength,
				Y1: st.Y - st.SpeedY*rc.HeadLength,
			})
		}
		if len(ctx.starSegs) > 0 {
			trails.StrokeSegments(ctx.starSegs, Stroke{Color: c.RGBA(), Width: rc.StarDrawWidth, Cap: starCap})
		}
	}
	if len(ctx.headSegs) > 0 {
		main.StrokeSegments(ctx.headSegs, Stroke{Color: rc.HeadColor, Width: rc.HeadStrokeWidth, Cap: CapButt})
	}

	for _, c := range VisibleColors {
		ctx.sparkSegs = ctx.sparkSegs[:0]
		for _, sp := range ctx.Sparks.Active[c] {
			ctx.sparkSegs = append(ctx.sparkSegs, Segment{X0: sp.X, Y0: sp.Y, X1: sp.PrevX, Y1: sp.PrevY})
		}
		if len(ctx.sparkSegs) > 0 {
			trails.StrokeSegments(ctx.sparkSegs, Stroke{Color: c.RGBA(), Width: rc.SparkDrawWidth, Cap: CapSquare})
		}
	}

	trails.ResetTransform()
	main.ResetTransform()
}
