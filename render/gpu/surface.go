// Package gpu draws the show onto ebiten images.
package gpu

import (
	"image"
	"image/color"

	"github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/fireworks"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// segments per DrawTriangles call, keeps round caps under the uint16 index limit
const strokeChunk = 256

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// BlendLighten keeps the per-channel maximum of source and destination
var BlendLighten = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorOne,
	BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
	BlendOperationRGB:           ebiten.BlendOperationMax,
	BlendOperationAlpha:         ebiten.BlendOperationMax,
}

// Surface is a fireworks.Surface backed by an offscreen ebiten image
type Surface struct {
	img    *ebiten.Image
	scale  float64
	blend  ebiten.Blend
	shader *ebiten.Shader

	path     vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewSurface creates a w x h surface. A nil shader draws flashes as flat discs.
func NewSurface(w, h int, flash *ebiten.Shader) *Surface {
	return &Surface{
		img:    ebiten.NewImage(w, h),
		scale:  1,
		blend:  ebiten.BlendSourceOver,
		shader: flash,
	}
}

// Image is the backing image
func (s *Surface) Image() *ebiten.Image { return s.img }

// Dispose releases the backing image
func (s *Surface) Dispose() { s.img.Deallocate() }

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) SetScale(v float64) { s.scale = v }

func (s *Surface) ResetTransform() { s.scale = 1 }

func (s *Surface) Clear() { s.img.Clear() }

func (s *Surface) Fade(alpha float64) {
	w, h := s.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Blend = ebiten.BlendDestinationOut
	s.img.DrawImage(whiteSubImage, op)
}

func (s *Surface) SetComposite(mode fireworks.Composite) {
	switch mode {
	case fireworks.CompositeLighten:
		s.blend = BlendLighten
	default:
		s.blend = ebiten.BlendSourceOver
	}
}

func lineCap(c fireworks.LineCap) vector.LineCap {
	switch c {
	case fireworks.CapRound:
		return vector.LineCapRound
	case fireworks.CapSquare:
		return vector.LineCapSquare
	default:
		return vector.LineCapButt
	}
}

func (s *Surface) StrokeSegments(segs []fireworks.Segment, st fireworks.Stroke) {
	strokeOp := &vector.StrokeOptions{
		Width:   float32(st.Width * s.scale),
		LineCap: lineCap(st.Cap),
	}
	for start := 0; start < len(segs); start += strokeChunk {
		end := min(start+strokeChunk, len(segs))
		s.path = vector.Path{}
		for _, seg := range segs[start:end] {
			s.path.MoveTo(float32(seg.X0*s.scale), float32(seg.Y0*s.scale))
			s.path.LineTo(float32(seg.X1*s.scale), float32(seg.Y1*s.scale))
		}
		s.vertices, s.indices = s.path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], strokeOp)
		s.drawVertices(st.Color)
	}
}

func (s *Surface) drawVertices(c color.RGBA) {
	r := float32(c.R) / 0xff
	g := float32(c.G) / 0xff
	b := float32(c.B) / 0xff
	a := float32(c.A) / 0xff
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.FillRule = ebiten.FillRuleNonZero
	op.Blend = s.blend
	s.img.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

func (s *Surface) FillBurstFlash(x, y, radius float64) {
	cx, cy, r := x*s.scale, y*s.scale, radius*s.scale
	if r <= 0 {
		return
	}
	if s.shader == nil {
		core := fireworks.FlashColorAt(config.Render.FlashStops[0].Offset)
		vector.FillCircle(s.img, float32(cx), float32(cy), float32(r*0.125), core, true)
		return
	}
	offsets, colors := flashUniforms()
	size := int(r*2) + 2
	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Translate(cx-r-1, cy-r-1)
	op.Blend = s.blend
	op.Uniforms = map[string]any{
		"Center":      []float32{float32(cx), float32(cy)},
		"Radius":      float32(r),
		"StopOffsets": offsets,
		"StopColors":  colors,
	}
	s.img.DrawRectShader(size, size, s.shader, op)
}

// flashUniforms packs the gradient stops into the shader's four-stop layout
func flashUniforms() ([]float32, []float32) {
	stops := config.Render.FlashStops
	offsets := make([]float32, 4)
	colors := make([]float32, 16)
	for i := 0; i < 4; i++ {
		st := stops[min(i, len(stops)-1)]
		offsets[i] = float32(st.Offset)
		colors[i*4] = float32(st.Color.R) / 0xff
		colors[i*4+1] = float32(st.Color.G) / 0xff
		colors[i*4+2] = float32(st.Color.B) / 0xff
		colors[i*4+3] = float32(st.Color.A) / 0xff
	}
	return offsets, colors
}

// DrawLayers composites sky, trails and main onto screen
func DrawLayers(screen *ebiten.Image, sky color.RGBA, trails, main *Surface) {
	screen.Fill(sky)
	op := &ebiten.DrawImageOptions{}
	op.Blend = BlendLighten
	screen.DrawImage(trails.Image(), op)
	screen.DrawImage(main.Image(), nil)
}
