package fireworks

import (
	"image/color"

	"github.com/automoto/fireworks/config"
)

// Composite selects how strokes combine with what is already on a surface
type Composite uint8

const (
	CompositeSourceOver Composite = iota
	// CompositeLighten keeps the per-channel maximum of source and destination
	CompositeLighten
)

// LineCap is the end style of stroked segments
type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// Segment is a line from (X0, Y0) to (X1, Y1) in simulation units
type Segment struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Stroke is the pen used for a batch of segments
type Stroke struct {
	Color color.RGBA
	Width float64
	Cap   LineCap
}

// Surface is a drawing layer. Coordinates passed to the drawing calls are
// multiplied by the current scale; Fade and Clear always cover the whole surface.
type Surface interface {
	Size() (width, height int)
	SetScale(s float64)
	ResetTransform()
	Clear()
	// Fade removes alpha from every pixel, like a destination-out fill
	Fade(alpha float64)
	SetComposite(mode Composite)
	StrokeSegments(segs []Segment, stroke Stroke)
	FillBurstFlash(x, y, radius float64)
}

// FlashColorAt samples the burst flash gradient at t in [0,1] from the centre.
// Before the first stop and after the last the nearest stop colour is used.
func FlashColorAt(t float64) color.NRGBA {
	stops := config.Render.FlashStops
	if len(stops) == 0 {
		return color.NRGBA{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t <= b.Offset {
			f := (t - a.Offset) / (b.Offset - a.Offset)
			return color.NRGBA{
				R: lerp8(a.Color.R, b.Color.R, f),
				G: lerp8(a.Color.G, b.Color.G, f),
				B: lerp8(a.Color.B, b.Color.B, f),
				A: lerp8(a.Color.A, b.Color.A, f),
			}
		}
	}
	return stops[len(stops)-1].Color
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*f + 0.5)
}
