package config

import "testing"

func TestCycleWraps(t *testing.T) {
	tests := []struct {
		name  string
		cycle func(o *Options)
		set   func(o *Options)
		check func(o Options) bool
	}{
		{
			name:  "Quality high wraps to low",
			set:   func(o *Options) { o.Quality = QualityHigh },
			cycle: (*Options).CycleQuality,
			check: func(o Options) bool { return o.Quality == QualityLow },
		},
		{
			name:  "Quality normal to high",
			set:   func(o *Options) { o.Quality = QualityNormal },
			cycle: (*Options).CycleQuality,
			check: func(o Options) bool { return o.Quality == QualityHigh },
		},
		{
			name:  "Shell size wraps",
			set:   func(o *Options) { o.ShellSize = MaxShellSize },
			cycle: (*Options).CycleShellSize,
			check: func(o Options) bool { return o.ShellSize == MinShellSize },
		},
		{
			name:  "Last shell type wraps to Random",
			set:   func(o *Options) { o.ShellType = ShellStrobe },
			cycle: (*Options).CycleShellType,
			check: func(o Options) bool { return o.ShellType == ShellRandom },
		},
		{
			name:  "Random to Chrysanthemum",
			set:   func(o *Options) { o.ShellType = ShellRandom },
			cycle: (*Options).CycleShellType,
			check: func(o Options) bool { return o.ShellType == ShellChrysanthemum },
		},
		{
			name:  "Scale steps up",
			set:   func(o *Options) { o.ScaleFactor = 0.9 },
			cycle: (*Options).CycleScaleFactor,
			check: func(o Options) bool { return o.ScaleFactor == 1 },
		},
		{
			name:  "Scale between steps snaps to next",
			set:   func(o *Options) { o.ScaleFactor = 0.8 },
			cycle: (*Options).CycleScaleFactor,
			check: func(o Options) bool { return o.ScaleFactor == 0.9 },
		},
		{
			name:  "Scale wraps",
			set:   func(o *Options) { o.ScaleFactor = 2 },
			cycle: (*Options).CycleScaleFactor,
			check: func(o Options) bool { return o.ScaleFactor == 0.5 },
		},
		{
			name:  "Sky wraps",
			set:   func(o *Options) { o.SkyLighting = MaxSkyLighting },
			cycle: (*Options).CycleSkyLighting,
			check: func(o Options) bool { return o.SkyLighting == 0 },
		},
		{
			name:  "Speed wraps",
			set:   func(o *Options) { o.SimSpeed = 2 },
			cycle: (*Options).CycleSimSpeed,
			check: func(o Options) bool { return o.SimSpeed == 0.5 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.set(&o)
			tt.cycle(&o)
			if !tt.check(o) {
				t.Errorf("Unexpected options after cycle: %+v", o)
			}
			if err := o.Validate(); err != nil {
				t.Errorf("Expected cycled options to validate, got %v", err)
			}
		})
	}
}

func TestCycleVisitsEveryShellType(t *testing.T) {
	o := DefaultOptions()
	seen := map[ShellType]bool{}
	for range ShellTypes {
		seen[o.ShellType] = true
		o.CycleShellType()
	}
	if len(seen) != len(ShellTypes) {
		t.Errorf("Expected %d shell types, visited %d", len(ShellTypes), len(seen))
	}
	if o.ShellType != ShellRandom {
		t.Errorf("Expected a full cycle to return to Random, got %s", o.ShellType)
	}
}

func TestDisplayNames(t *testing.T) {
	if got := ShellSizeName(4); got != `12"` {
		t.Errorf("Expected 12\", got %s", got)
	}
	if got := ShellSizeName(9); got != "9" {
		t.Errorf("Expected fallback 9, got %s", got)
	}
	if got := SkyLightingName(1); got != "Dim" {
		t.Errorf("Expected Dim, got %s", got)
	}
	if OnOff(true) != "On" || OnOff(false) != "Off" {
		t.Errorf("Unexpected toggle labels")
	}
}
