// Package render draws the show on the CPU into plain images.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/automoto/fireworks/fireworks"
	"golang.org/x/image/vector"
)

// capSides is the polygon resolution of round caps
const capSides = 12

// RasterSurface is a fireworks.Surface backed by a premultiplied image.RGBA.
// Strokes are rasterised one segment at a time with anti-aliasing.
type RasterSurface struct {
	img   *image.RGBA
	scale float64
	mode  fireworks.Composite

	ras  *vector.Rasterizer
	mask *image.Alpha
}

// NewRasterSurface creates a transparent w x h surface
func NewRasterSurface(w, h int) *RasterSurface {
	return &RasterSurface{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		scale: 1,
		ras:   vector.NewRasterizer(1, 1),
		mask:  image.NewAlpha(image.Rect(0, 0, 1, 1)),
	}
}

// Image is the backing image
func (s *RasterSurface) Image() *image.RGBA { return s.img }

func (s *RasterSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *RasterSurface) SetScale(v float64) { s.scale = v }

func (s *RasterSurface) ResetTransform() { s.scale = 1 }

func (s *RasterSurface) SetComposite(mode fireworks.Composite) { s.mode = mode }

func (s *RasterSurface) Clear() {
	clear(s.img.Pix)
}

// Fade scales every channel by 1-alpha, rounding down so pixels reach zero
func (s *RasterSurface) Fade(alpha float64) {
	keep := 1 - alpha
	for i, v := range s.img.Pix {
		s.img.Pix[i] = uint8(float64(v) * keep)
	}
}

func (s *RasterSurface) StrokeSegments(segs []fireworks.Segment, st fireworks.Stroke) {
	hw := st.Width * s.scale / 2
	if hw <= 0 {
		return
	}
	for _, seg := range segs {
		s.strokeSegment(
			seg.X0*s.scale, seg.Y0*s.scale,
			seg.X1*s.scale, seg.Y1*s.scale,
			hw, st.Cap, st.Color,
		)
	}
}

type point struct{ x, y float64 }

func (s *RasterSurface) strokeSegment(x0, y0, x1, y1, hw float64, lineCap fireworks.LineCap, c color.RGBA) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)

	var polys [][]point
	if length > 0 {
		ux, uy := dx/length, dy/length
		if lineCap == fireworks.CapSquare {
			x0, y0 = x0-ux*hw, y0-uy*hw
			x1, y1 = x1+ux*hw, y1+uy*hw
		}
		nx, ny := -uy*hw, ux*hw
		polys = append(polys, []point{
			{x0 + nx, y0 + ny},
			{x1 + nx, y1 + ny},
			{x1 - nx, y1 - ny},
			{x0 - nx, y0 - ny},
		})
	}
	switch {
	case lineCap == fireworks.CapRound:
		polys = append(polys, disc(x0, y0, hw), disc(x1, y1, hw))
	case lineCap == fireworks.CapSquare && length == 0:
		polys = append(polys, []point{{x0 - hw, y0 - hw}, {x0 + hw, y0 - hw}, {x0 + hw, y0 + hw}, {x0 - hw, y0 + hw}})
	}
	if len(polys) == 0 {
		return
	}
	s.fill(polys, func(cov float64, px []uint8) {
		blend(px, c, cov, s.mode)
	})
}

// disc approximates a circle, wound the same way as the stroke quads so overlaps add up
func disc(cx, cy, r float64) []point {
	pts := make([]point, capSides)
	for i := range pts {
		a := -2 * math.Pi * float64(i) / capSides
		pts[i] = point{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return pts
}

// fill rasterises polys and calls paint for every covered pixel of the surface
func (s *RasterSurface) fill(polys [][]point, paint func(cov float64, px []uint8)) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, p := range poly {
			minX, minY = math.Min(minX, p.x), math.Min(minY, p.y)
			maxX, maxY = math.Max(maxX, p.x), math.Max(maxY, p.y)
		}
	}
	box := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1)
	clip := box.Intersect(s.img.Bounds())
	if clip.Empty() {
		return
	}

	w, h := box.Dx(), box.Dy()
	s.ras.Reset(w, h)
	for _, poly := range polys {
		s.ras.MoveTo(float32(poly[0].x-float64(box.Min.X)), float32(poly[0].y-float64(box.Min.Y)))
		for _, p := range poly[1:] {
			s.ras.LineTo(float32(p.x-float64(box.Min.X)), float32(p.y-float64(box.Min.Y)))
		}
		s.ras.ClosePath()
	}

	if cap(s.mask.Pix) < w*h {
		s.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	} else {
		s.mask.Pix = s.mask.Pix[:w*h]
		clear(s.mask.Pix)
		s.mask.Stride = w
		s.mask.Rect = image.Rect(0, 0, w, h)
	}
	s.ras.Draw(s.mask, s.mask.Bounds(), image.Opaque, image.Point{})

	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			cov := s.mask.Pix[(y-box.Min.Y)*w+(x-box.Min.X)]
			if cov == 0 {
				continue
			}
			o := s.img.PixOffset(x, y)
			paint(float64(cov)/0xff, s.img.Pix[o:o+4:o+4])
		}
	}
}

// blend composites a straight-alpha colour at coverage cov onto a premultiplied pixel
func blend(px []uint8, c color.RGBA, cov float64, mode fireworks.Composite) {
	a := float64(c.A) / 0xff * cov
	src := [4]float64{float64(c.R) * a, float64(c.G) * a, float64(c.B) * a, 0xff * a}
	for i := range src {
		d := float64(px[i])
		var out float64
		if mode == fireworks.CompositeLighten {
			out = math.Max(src[i], d)
		} else {
			out = src[i] + d*(1-a)
		}
		px[i] = uint8(math.Min(0xff, out+0.5))
	}
}

func (s *RasterSurface) FillBurstFlash(x, y, radius float64) {
	cx, cy, r := x*s.scale, y*s.scale, radius*s.scale
	if r <= 0 {
		return
	}
	box := image.Rect(int(math.Floor(cx-r)), int(math.Floor(cy-r)), int(math.Ceil(cx+r))+1, int(math.Ceil(cy+r))+1)
	clip := box.Intersect(s.img.Bounds())
	for py := clip.Min.Y; py < clip.Max.Y; py++ {
		for px := clip.Min.X; px < clip.Max.X; px++ {
			t := math.Hypot(float64(px)+0.5-cx, float64(py)+0.5-cy) / r
			if t >= 1 {
				continue
			}
			fc := fireworks.FlashColorAt(t)
			if fc.A == 0 {
				continue
			}
			o := s.img.PixOffset(px, py)
			blend(s.img.Pix[o:o+4:o+4], color.RGBA{R: fc.R, G: fc.G, B: fc.B, A: fc.A}, 1, s.mode)
		}
	}
}

// Composite stacks the sky colour, the trails layer (lighten) and the main layer (source-over) into dst
func Composite(dst *image.RGBA, sky color.RGBA, trails, main *RasterSurface) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(sky), image.Point{}, draw.Src)
	b := dst.Bounds().Intersect(trails.img.Bounds()).Intersect(main.img.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d := dst.Pix[dst.PixOffset(x, y):]
			t := trails.img.Pix[trails.img.PixOffset(x, y):]
			m := main.img.Pix[main.img.PixOffset(x, y):]
			for i := 0; i < 4; i++ {
				d[i] = max(d[i], t[i])
			}
			ma := float64(m[3]) / 0xff
			for i := 0; i < 4; i++ {
				d[i] = uint8(math.Min(0xff, float64(m[i])+float64(d[i])*(1-ma)+0.5))
			}
		}
	}
}
