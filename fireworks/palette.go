package fireworks

import (
	"image/color"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/automoto/fireworks/config"
)

// Color indexes a palette entry and, through it, an active bucket of each particle pool
type Color uint8

const (
	Red Color = iota
	Green
	Blue
	Purple
	Gold
	White
	// Invisible carries stars that only show through their spark trail
	Invisible
	ColorCount
)

const (
	// NoColor marks an unset optional colour
	NoColor Color = 0xFF
	// RandomColor gives every star of a burst its own random colour
	RandomColor Color = 0xFE
)

// VisibleColors are the drawable palette entries, in bucket order
var VisibleColors = []Color{Red, Green, Blue, Purple, Gold, White}

var colorNames = [...]string{"Red", "Green", "Blue", "Purple", "Gold", "White", "Invisible"}

func (c Color) String() string {
	switch {
	case c < ColorCount:
		return colorNames[c]
	case c == RandomColor:
		return "Random"
	default:
		return "None"
	}
}

// Visible reports whether c has a palette entry
func (c Color) Visible() bool {
	return c < Invisible
}

var palette [ColorCount]color.RGBA

func init() {
	hex := []string{
		config.Palette.Red,
		config.Palette.Green,
		config.Palette.Blue,
		config.Palette.Purple,
		config.Palette.Gold,
		config.Palette.White,
	}
	for i, h := range hex {
		palette[i] = parseHex(h)
	}
}

// RGBA returns the palette colour of c; Invisible and sentinels are transparent
func (c Color) RGBA() color.RGBA {
	if !c.Visible() {
		return color.RGBA{}
	}
	return palette[c]
}

func parseHex(s string) color.RGBA {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil || len(strings.TrimPrefix(s, "#")) != 6 {
		return config.White
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func randomColor(r *rand.Rand, limitWhite bool) Color {
	c := VisibleColors[r.IntN(len(VisibleColors))]
	if limitWhite && c == White && r.Float64() < 0.6 {
		c = VisibleColors[r.IntN(len(VisibleColors))]
	}
	return c
}

func randomColorExcept(r *rand.Rand, not Color, limitWhite bool) Color {
	c := randomColor(r, limitWhite)
	for c == not {
		c = randomColor(r, limitWhite)
	}
	return c
}

func whiteOrGold(r *rand.Rand) Color {
	if r.Float64() < 0.5 {
		return Gold
	}
	return White
}

func pistilColor(r *rand.Rand, shellColor Color) Color {
	if shellColor == White || shellColor == Gold {
		return randomColorExcept(r, shellColor, false)
	}
	return whiteOrGold(r)
}
