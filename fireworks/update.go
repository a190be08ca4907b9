package fireworks

import (
	"math"

	"github.com/automoto/fireworks/config"
)

// Update advances the show by timeStep milliseconds. speed is the per-frame
// motion scale (simulation speed times frame lag).
func (ctx *Context) Update(timeStep, speed float64) {
	ctx.Frame++
	ctx.Scheduler.update(ctx, timeStep)

	p := config.Physics
	starDrag := 1 - (1-p.StarAirDrag)*speed
	heavyDrag := 1 - (1-p.StarAirDragHeavy)*speed
	sparkDrag := 1 - (1-p.SparkAirDrag)*speed
	gAcc := timeStep / 1000 * p.Gravity

	for c := Color(0); c < ColorCount; c++ {
		// Indexing from the end lets a star leave the bucket mid-pass.
		for i := len(ctx.Stars.Active[c]) - 1; i >= 0; i-- {
			st := ctx.Stars.Active[c][i]
			if st.updateFrame == ctx.Frame {
				continue
			}
			st.updateFrame = ctx.Frame
			st.Life -= timeStep
			if st.Life <= 0 {
				ctx.Stars.Active.removeAt(c, i)
				ctx.expire(st)
				ctx.Stars.Put(st)
				continue
			}

			burnRate := math.Sqrt(st.Life / st.FullLife)
			drag := starDrag
			if st.Heavy {
				drag = heavyDrag
			}
			st.integrate(speed, drag, gAcc)

			if st.SparkFreq > 0 {
				ctx.emitSparks(st, timeStep, burnRate)
			}

			if st.Life < st.TransitionTime {
				if st.SecondColor != NoColor && !st.ColorChanged {
					st.ColorChanged = true
					st.Color = st.SecondColor
					ctx.Stars.moveBucket(c, i)
					if st.Color == Invisible {
						st.SparkFreq = 0
					}
				}
				if st.Strobe {
					st.Visible = int(math.Floor(st.Life/st.StrobeFreq))%3 == 0
				}
			}
		}

		for i := len(ctx.Sparks.Active[c]) - 1; i >= 0; i-- {
			sp := ctx.Sparks.Active[c][i]
			sp.Life -= timeStep
			if sp.Life <= 0 {
				ctx.Sparks.Active.removeAt(c, i)
				ctx.Sparks.Put(sp)
				continue
			}
			sp.integrate(speed, sparkDrag, gAcc)
		}
	}
}

// emitSparks spends the star's spark timer; emission speeds up as the star burns out
func (ctx *Context) emitSparks(st *Star, timeStep, burnRate float64) {
	r := ctx.Rand
	burnInverse := 1 - burnRate
	st.SparkTimer -= timeStep
	for st.SparkTimer < 0 {
		st.SparkTimer += st.SparkFreq*0.75 + st.SparkFreq*burnInverse*4
		ctx.Sparks.Add(
			st.X, st.Y, st.SparkColor,
			r.Float64()*2*math.Pi,
			r.Float64()*st.SparkSpeed*burnRate,
			st.SparkLife*0.8+r.Float64()*st.SparkLifeVariation*st.SparkLife,
		)
	}
}
