package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// BurstFlashShader draws the radial gradient of a burst flash
	BurstFlashShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/burstflash.kage")
	if err != nil {
		return fmt.Errorf("read burst flash shader: %w", err)
	}
	BurstFlashShader, err = ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile burst flash shader: %w", err)
	}
	return nil
}
