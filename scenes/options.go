package scenes

import (
	"sync"

	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/systems"
	"github.com/automoto/fireworks/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// OptionsScene displays the options panel using ebitenui
type OptionsScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	optionsUI    *ui.OptionsUI
	options      cfg.Options
	once         sync.Once
	shouldStart  bool
}

// NewOptionsScene creates a new options scene starting from opts
func NewOptionsScene(sc SceneChanger, opts cfg.Options) *OptionsScene {
	return &OptionsScene{sceneChanger: sc, options: opts}
}

func (o *OptionsScene) Update() {
	o.once.Do(o.configure)

	// Input only, for the Enter shortcut
	o.ecs.Update()

	if o.optionsUI != nil {
		o.optionsUI.Update()
	}

	if systems.JustPressed(o.ecs, cfg.ActionLaunch) {
		o.shouldStart = true
	}
	if o.shouldStart {
		o.startShow()
	}
}

func (o *OptionsScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.OptionsPanel.BackgroundColor)

	if o.optionsUI == nil {
		return
	}
	o.optionsUI.UI.Draw(screen)
}

// Layout keeps the panel in logical pixels
func (o *OptionsScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (o *OptionsScene) configure() {
	o.ecs = ecs.NewECS(donburi.NewWorld())
	o.ecs.AddSystem(systems.UpdateInput)

	optionsUI, err := ui.NewOptionsUI(&o.options, func() { o.shouldStart = true })
	if err != nil {
		// The show can still run on the options we were given
		zap.S().Warnw("options panel unavailable", "error", err)
		o.shouldStart = true
		return
	}
	o.optionsUI = optionsUI
}

// startShow persists the chosen options and switches to the show
func (o *OptionsScene) startShow() {
	o.options.Normalize()
	if err := systems.SaveOptions(o.options); err != nil {
		zap.S().Warnw("could not save options", "error", err)
	}
	o.sceneChanger.ChangeScene(NewFireworksScene(o.sceneChanger, o.options))
}
