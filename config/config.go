package config

import "image/color"

// Default is the single render layer used by every scene (an ecs.LayerID)
const Default = 0

// Config holds the host window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

var C *Config

// PhysicsConfig contains the drag/gravity model shared by every particle
type PhysicsConfig struct {
	Gravity          float64 // px/s^2 added to vertical speed, scaled by timeStep/1000
	StarAirDrag      float64 // per-lag-unit velocity retention for ordinary stars
	StarAirDragHeavy float64 // per-lag-unit velocity retention for comets
	SparkAirDrag     float64 // per-lag-unit velocity retention for sparks
}

// FrameConfig contains ticker normalisation values
type FrameConfig struct {
	TargetFrameMs float64 // frame duration that corresponds to lag == 1
	MaxFrameMs    float64 // clamp for long frames (window dragged, debugger attached)
}

// FlashStop is one colour stop of the burst flash radial gradient
type FlashStop struct {
	Offset float64
	Color  color.NRGBA
}

// RenderConfig contains drawing constants for both surfaces
type RenderConfig struct {
	StarDrawWidth   float64
	SparkDrawWidth  float64
	HeadStrokeWidth float64
	HeadLength      float64 // head segment length in frames of velocity
	TrailFade       float64 // destination-out alpha applied to the trails surface every frame
	HeadColor       color.RGBA
	FlashStops      []FlashStop
}

// LaunchConfig contains comet launch geometry
type LaunchConfig struct {
	HPad             float64 // horizontal padding of the launch band
	VPad             float64 // distance of the highest apex from the top edge
	MinHeightPercent float64 // lowest apex, as a share of the viewport height from the bottom
	VelocityScale    float64
	VelocityExponent float64
	CometLifeFactor  float64
	HorsetailLife    float64
	HorsetailSpeed   float64
}

// BurstConfig contains burst geometry tuning
type BurstConfig struct {
	SpeedDivisor     float64 // spread size to base star speed
	DriftDivisor     float64 // spread size to the upward drift given to burst stars
	FlashDivisor     float64 // spread size to burst flash radius
	AngleJitter      float64 // share of a ring's angular step added as jitter
	RingBiasExponent float64
	RingBiasFloor    float64
	EffectFlash      float64 // flash radius of floral and falling leaves re-bursts
	StreamerCount    float64
}

// ScheduleConfig contains auto-launch timing
type ScheduleConfig struct {
	MinInterval    float64 // ms
	IntervalJitter float64 // ms
	IntervalFactor float64
	SingleWeight   float64 // probability of a single shell vs a paired launch
	PairDelay      float64 // ms between left and right shell of a pair
	PairLeft       float64
	PairRight      float64
	PairJitter     float64
	MaxHeight      float64 // normalised apex upper bound for scheduled shells
}

// SkyConfig contains sky lighting values
type SkyConfig struct {
	SaturationPerLevel float64
	MaxStarCount       float64
	ColorChange        float64
}

// PaletteConfig holds the hex codes of the firework colours
type PaletteConfig struct {
	Red    string
	Green  string
	Blue   string
	Purple string
	Gold   string
	White  string
}

// HUDConfig contains HUD overlay styling
type HUDConfig struct {
	Margin         float64
	LineHeight     float64
	TextColor      color.RGBA
	PanelColor     color.RGBA
	ToastColor     color.RGBA
	ToastSeconds   float32
	ToastY         float64
	SpeedStep      float64
	MinSimSpeed    float64
	MaxSimSpeed    float64
	HUDFontSize    float64
	ToastFontSize  float64
	TitleFontSize  float64
	PanelFontSize  float64
	PanelSmallSize float64
}

// OptionsPanelConfig contains colours of the options scene
type OptionsPanelConfig struct {
	BackgroundColor color.RGBA
	RowColor        color.RGBA
	TitleColor      color.RGBA
	LabelColor      color.RGBA
	ValueColor      color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	StartIdle       color.RGBA
	StartHover      color.RGBA
	StartPressed    color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipOptions bool // Skip the options panel and start the show directly
}

var Physics PhysicsConfig
var Frame FrameConfig
var Render RenderConfig
var Launch LaunchConfig
var Burst BurstConfig
var Schedule ScheduleConfig
var Sky SkyConfig
var Palette PaletteConfig
var HUD HUDConfig
var OptionsPanel OptionsPanelConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Fireworks",
	}

	Physics = PhysicsConfig{
		Gravity:          0.9,
		StarAirDrag:      0.98,
		StarAirDragHeavy: 0.992,
		SparkAirDrag:     0.9,
	}

	Frame = FrameConfig{
		TargetFrameMs: 1000.0 / 60.0,
		MaxFrameMs:    68,
	}

	Render = RenderConfig{
		StarDrawWidth:   3,
		SparkDrawWidth:  1,
		HeadStrokeWidth: 1,
		HeadLength:      1.6,
		TrailFade:       0.1,
		HeadColor:       White,
		FlashStops: []FlashStop{
			{Offset: 0.024, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
			{Offset: 0.125, Color: color.NRGBA{R: 255, G: 160, B: 20, A: 51}},
			{Offset: 0.32, Color: color.NRGBA{R: 255, G: 140, B: 20, A: 28}},
			{Offset: 1, Color: color.NRGBA{R: 255, G: 120, B: 20, A: 0}},
		},
	}

	Launch = LaunchConfig{
		HPad:             60,
		VPad:             50,
		MinHeightPercent: 0.45,
		VelocityScale:    0.04,
		VelocityExponent: 0.64,
		CometLifeFactor:  400,
		HorsetailLife:    100,
		HorsetailSpeed:   1.2,
	}

	Burst = BurstConfig{
		SpeedDivisor:     96,
		DriftDivisor:     1800,
		FlashDivisor:     4,
		AngleJitter:      0.33,
		RingBiasExponent: 2,
		RingBiasFloor:    0.15,
		EffectFlash:      46,
		StreamerCount:    12,
	}

	Schedule = ScheduleConfig{
		MinInterval:    900,
		IntervalJitter: 600,
		IntervalFactor: 1.25,
		SingleWeight:   0.7,
		PairDelay:      100,
		PairLeft:       0.3,
		PairRight:      0.7,
		PairJitter:     0.1,
		MaxHeight:      0.75,
	}

	Sky = SkyConfig{
		SaturationPerLevel: 15,
		MaxStarCount:       500,
		ColorChange:        10,
	}

	Palette = PaletteConfig{
		Red:    "#ff0043",
		Green:  "#14fc56",
		Blue:   "#1e7fff",
		Purple: "#e60aff",
		Gold:   "#ffbf36",
		White:  "#ffffff",
	}

	HUD = HUDConfig{
		Margin:         10,
		LineHeight:     16,
		TextColor:      color.RGBA{R: 220, G: 220, B: 230, A: 255},
		PanelColor:     BlackOverlay,
		ToastColor:     BrightOrange,
		ToastSeconds:   1.6,
		ToastY:         60,
		SpeedStep:      0.1,
		MinSimSpeed:    0.1,
		MaxSimSpeed:    2,
		HUDFontSize:    12,
		ToastFontSize:  20,
		TitleFontSize:  22,
		PanelFontSize:  14,
		PanelSmallSize: 11,
	}

	OptionsPanel = OptionsPanelConfig{
		BackgroundColor: color.RGBA{R: 8, G: 10, B: 24, A: 255},
		RowColor:        color.RGBA{R: 24, G: 28, B: 48, A: 255},
		TitleColor:      BrightOrange,
		LabelColor:      White,
		ValueColor:      BrightYellow,
		ButtonIdle:      color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:     color.RGBA{R: 80, G: 80, B: 100, A: 255},
		ButtonPressed:   color.RGBA{R: 40, G: 40, B: 60, A: 255},
		StartIdle:       color.RGBA{R: 120, G: 60, B: 20, A: 255},
		StartHover:      color.RGBA{R: 160, G: 90, B: 30, A: 255},
		StartPressed:    color.RGBA{R: 90, G: 45, B: 15, A: 255},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipOptions: false,
	}
}
