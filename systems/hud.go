package systems

import (
	"fmt"

	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const hudPanelWidth = 250

// Cached font face for HUD rendering (lazy initialized)
var hudFontFace font.Face

// Reused line buffer
var hudLines []string

// DrawHUD renders pool counters and show state in the top-left corner
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	show, ok := getShow(ecs)
	if !ok || !show.ShowHUD {
		return
	}
	if hudFontFace == nil {
		hudFontFace = fonts.HUD.Get()
	}

	stage := show.Stage
	st := stage.Stats()
	opts := stage.Context().Options

	hudLines = append(hudLines[:0],
		fmt.Sprintf("Stars %d / %d   Sparks %d / %d", st.Stars, st.StarsAllocated, st.Sparks, st.SparksAllocated),
		fmt.Sprintf("Shells %d   Bursts %d (%d nested)", st.Shells, show.Bursts, show.NestedBursts),
		fmt.Sprintf("Shell %s %s   Quality %s", opts.ShellType, cfg.ShellSizeName(opts.ShellSize), opts.Quality),
		fmt.Sprintf("Speed %.1fx   Auto %s   Pending %d", stage.SimSpeed(), cfg.OnOff(stage.AutoLaunch()), st.Pending),
	)
	if show.Bursts > 0 {
		hudLines = append(hudLines, "Last burst "+show.LastKind.String())
	}
	if stage.Paused() {
		hudLines = append(hudLines, "PAUSED")
	}

	margin := cfg.HUD.Margin
	lineHeight := cfg.HUD.LineHeight
	vector.FillRect(screen,
		float32(margin), float32(margin),
		hudPanelWidth, float32(lineHeight*float64(len(hudLines))+margin),
		cfg.HUD.PanelColor, false)

	for i, line := range hudLines {
		y := int(margin + lineHeight*float64(i+1))
		text.Draw(screen, line, hudFontFace, int(margin*1.5), y, cfg.HUD.TextColor) //nolint:staticcheck // TODO: migrate to text/v2
	}
}
