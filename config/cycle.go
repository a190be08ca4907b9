package config

import "fmt"

// ScaleFactors are the steps offered by the options panel
var ScaleFactors = []float64{0.5, 0.62, 0.75, 0.9, 1, 1.5, 2}

var shellSizeLabels = [...]string{`3"`, `4"`, `6"`, `8"`, `12"`}

var skyLightingLabels = [...]string{"None", "Dim", "Normal"}

// ShellSizeName is the display name of a shell size in inches
func ShellSizeName(size int) string {
	if size < 0 || size >= len(shellSizeLabels) {
		return fmt.Sprintf("%d", size)
	}
	return shellSizeLabels[size]
}

// SkyLightingName is the display name of a sky lighting level
func SkyLightingName(level int) string {
	if level < 0 || level >= len(skyLightingLabels) {
		return fmt.Sprintf("%d", level)
	}
	return skyLightingLabels[level]
}

// OnOff formats a toggle
func OnOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

// CycleQuality advances Low -> Normal -> High -> Low
func (o *Options) CycleQuality() {
	o.Quality++
	if o.Quality > QualityHigh {
		o.Quality = QualityLow
	}
}

// CycleShellType advances through ShellTypes, wrapping at the end
func (o *Options) CycleShellType() {
	next := 0
	for i, t := range ShellTypes {
		if t == o.ShellType {
			next = (i + 1) % len(ShellTypes)
			break
		}
	}
	o.ShellType = ShellTypes[next]
}

// CycleShellSize advances the shell size, wrapping at MaxShellSize
func (o *Options) CycleShellSize() {
	o.ShellSize++
	if o.ShellSize > MaxShellSize {
		o.ShellSize = MinShellSize
	}
}

// CycleScaleFactor moves to the next larger entry of ScaleFactors
func (o *Options) CycleScaleFactor() {
	for _, f := range ScaleFactors {
		if f > o.ScaleFactor+1e-9 {
			o.ScaleFactor = f
			return
		}
	}
	o.ScaleFactor = ScaleFactors[0]
}

// CycleSkyLighting advances None -> Dim -> Normal -> None
func (o *Options) CycleSkyLighting() {
	o.SkyLighting = (o.SkyLighting + 1) % (MaxSkyLighting + 1)
}

// CycleSimSpeed steps the simulation speed by half, wrapping to the minimum
func (o *Options) CycleSimSpeed() {
	o.SimSpeed += 0.5
	if o.SimSpeed > HUD.MaxSimSpeed+1e-9 {
		o.SimSpeed = 0.5
	}
}
