package fireworks

import (
	"math/rand/v2"

	"github.com/automoto/fireworks/config"
)

func newTestContext(seed uint64) *Context {
	opts := config.DefaultOptions()
	opts.AutoLaunch = false
	ctx := NewContext(opts, rand.New(rand.NewPCG(seed, seed+1)))
	ctx.Width = 1280
	ctx.Height = 720
	return ctx
}

type call struct {
	op     string
	alpha  float64
	mode   Composite
	segs   int
	stroke Stroke
	x, y   float64
	radius float64
}

// recordingSurface logs every drawing call
type recordingSurface struct {
	calls []call
	scale float64
}

func (s *recordingSurface) Size() (int, int) { return 1280, 720 }
func (s *recordingSurface) SetScale(v float64) { s.scale = v; s.calls = append(s.calls, call{op: "scale"}) }
func (s *recordingSurface) ResetTransform() { s.scale = 1; s.calls = append(s.calls, call{op: "reset"}) }
func (s *recordingSurface) Clear() { s.calls = append(s.calls, call{op: "clear"}) }
func (s *recordingSurface) Fade(alpha float64) { s.calls = append(s.calls, call{op: "fade", alpha: alpha}) }
func (s *recordingSurface) SetComposite(m Composite) {
	s.calls = append(s.calls, call{op: "composite", mode: m})
}

func (s *recordingSurface) StrokeSegments(segs []Segment, st Stroke) {
	s.calls = append(s.calls, call{op: "stroke", segs: len(segs), stroke: st})
}

func (s *recordingSurface) FillBurstFlash(x, y, r float64) {
	s.calls = append(s.calls, call{op: "flash", x: x, y: y, radius: r})
}

func (s *recordingSurface) ops() []string {
	out := make([]string, len(s.calls))
	for i, c := range s.calls {
		out[i] = c.op
	}
	return out
}
