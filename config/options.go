package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidOption is returned when an options file holds a value that cannot be normalised
var ErrInvalidOption = errors.New("invalid option")

// Quality is the rendering/emission quality tier
type Quality int

const (
	QualityLow    Quality = 1
	QualityNormal Quality = 2
	QualityHigh   Quality = 3
)

func (q Quality) String() string {
	switch q {
	case QualityLow:
		return "Low"
	case QualityHigh:
		return "High"
	default:
		return "Normal"
	}
}

// ShellType names a shell archetype selectable by the viewer
type ShellType string

const (
	ShellRandom        ShellType = "Random"
	ShellChrysanthemum ShellType = "Chrysanthemum"
	ShellPalm          ShellType = "Palm"
	ShellRing          ShellType = "Ring"
	ShellCrossette     ShellType = "Crossette"
	ShellCrackle       ShellType = "Crackle"
	ShellFloral        ShellType = "Floral"
	ShellFallingLeaves ShellType = "FallingLeaves"
	ShellHorsetail     ShellType = "Horsetail"
	ShellStrobe        ShellType = "Strobe"
)

// ShellTypes lists every selectable archetype in menu order
var ShellTypes = []ShellType{
	ShellRandom,
	ShellChrysanthemum,
	ShellPalm,
	ShellRing,
	ShellCrossette,
	ShellCrackle,
	ShellFloral,
	ShellFallingLeaves,
	ShellHorsetail,
	ShellStrobe,
}

// ShellTypeFromString matches a shell type case-insensitively, falling back to Random
func ShellTypeFromString(s string) (ShellType, bool) {
	for _, t := range ShellTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, true
		}
	}
	return ShellRandom, false
}

const (
	MinShellSize   = 0
	MaxShellSize   = 4
	MinScaleFactor = 0.5
	MaxScaleFactor = 2.0
	MaxSkyLighting = 2
)

// Options are the viewer-facing settings, fixed for the lifetime of one stage
type Options struct {
	Quality     Quality   `yaml:"quality" json:"quality"`
	ShellSize   int       `yaml:"shell_size" json:"shellSize"`
	ShellType   ShellType `yaml:"shell_type" json:"shellType"`
	AutoLaunch  bool      `yaml:"auto_launch" json:"autoLaunch"`
	ScaleFactor float64   `yaml:"scale_factor" json:"scaleFactor"`
	SkyLighting int       `yaml:"sky_lighting" json:"skyLighting"`
	SimSpeed    float64   `yaml:"sim_speed" json:"simSpeed"`
	ShowHUD     bool      `yaml:"show_hud" json:"showHud"`
}

// DefaultOptions returns the desktop defaults
func DefaultOptions() Options {
	return Options{
		Quality:     QualityNormal,
		ShellSize:   2,
		ShellType:   ShellRandom,
		AutoLaunch:  true,
		ScaleFactor: 1,
		SkyLighting: 2,
		SimSpeed:    1,
		ShowHUD:     true,
	}
}

// CompactOptions returns the defaults used for small viewports
func CompactOptions() Options {
	o := DefaultOptions()
	o.Quality = QualityLow
	o.ShellSize = 1
	o.ScaleFactor = 0.9
	return o
}

// Normalize clamps every field into its supported range
func (o *Options) Normalize() {
	if o.Quality < QualityLow {
		o.Quality = QualityLow
	}
	if o.Quality > QualityHigh {
		o.Quality = QualityHigh
	}
	o.ShellSize = clampInt(o.ShellSize, MinShellSize, MaxShellSize)
	o.SkyLighting = clampInt(o.SkyLighting, 0, MaxSkyLighting)
	if t, ok := ShellTypeFromString(string(o.ShellType)); ok {
		o.ShellType = t
	} else {
		o.ShellType = ShellRandom
	}
	if o.ScaleFactor <= 0 {
		o.ScaleFactor = 1
	}
	o.ScaleFactor = clampFloat(o.ScaleFactor, MinScaleFactor, MaxScaleFactor)
	if o.SimSpeed <= 0 {
		o.SimSpeed = 1
	}
	o.SimSpeed = clampFloat(o.SimSpeed, HUD.MinSimSpeed, HUD.MaxSimSpeed)
}

// Validate reports values that Normalize would silently change
func (o Options) Validate() error {
	if o.Quality < QualityLow || o.Quality > QualityHigh {
		return fmt.Errorf("%w: quality %d not in [1,3]", ErrInvalidOption, o.Quality)
	}
	if o.ShellSize < MinShellSize || o.ShellSize > MaxShellSize {
		return fmt.Errorf("%w: shell_size %d not in [%d,%d]", ErrInvalidOption, o.ShellSize, MinShellSize, MaxShellSize)
	}
	if _, ok := ShellTypeFromString(string(o.ShellType)); !ok {
		return fmt.Errorf("%w: unknown shell_type %q", ErrInvalidOption, o.ShellType)
	}
	if o.ScaleFactor < MinScaleFactor || o.ScaleFactor > MaxScaleFactor {
		return fmt.Errorf("%w: scale_factor %.2f not in [%.1f,%.1f]", ErrInvalidOption, o.ScaleFactor, MinScaleFactor, MaxScaleFactor)
	}
	if o.SkyLighting < 0 || o.SkyLighting > MaxSkyLighting {
		return fmt.Errorf("%w: sky_lighting %d not in [0,%d]", ErrInvalidOption, o.SkyLighting, MaxSkyLighting)
	}
	if o.SimSpeed < HUD.MinSimSpeed || o.SimSpeed > HUD.MaxSimSpeed {
		return fmt.Errorf("%w: sim_speed %.2f not in [%.1f,%.1f]", ErrInvalidOption, o.SimSpeed, HUD.MinSimSpeed, HUD.MaxSimSpeed)
	}
	return nil
}

// ParseOptions decodes YAML over base, so missing keys keep the base values
func ParseOptions(data []byte, base Options) (Options, error) {
	o := base
	if err := yaml.Unmarshal(data, &o); err != nil {
		return base, fmt.Errorf("parse options: %w", err)
	}
	if err := o.Validate(); err != nil {
		return base, err
	}
	return o, nil
}

// LoadOptions reads an options file over base
func LoadOptions(path string, base Options) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read options %s: %w", path, err)
	}
	return ParseOptions(data, base)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
