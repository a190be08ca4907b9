package scenes

import (
	"image/color"
	"math"
	"sync"

	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/systems"
	"github.com/automoto/fireworks/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FireworksScene runs one show until the viewer backs out
type FireworksScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	options      cfg.Options
	once         sync.Once
	shouldExit   bool

	// Screen size in device pixels, as reported by Layout
	width, height int
	deviceScale   float64
}

// NewFireworksScene creates a show scene with fixed options
func NewFireworksScene(sc SceneChanger, opts cfg.Options) *FireworksScene {
	return &FireworksScene{sceneChanger: sc, options: opts}
}

func (fs *FireworksScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()

	if fs.shouldExit {
		fs.sceneChanger.ChangeScene(NewOptionsScene(fs.sceneChanger, fs.options))
	}
}

func (fs *FireworksScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

// Layout renders at device resolution so strokes stay crisp on high DPI screens
func (fs *FireworksScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	if fs.deviceScale == 0 {
		fs.deviceScale = ebiten.Monitor().DeviceScaleFactor()
		if fs.deviceScale <= 0 {
			fs.deviceScale = 1
		}
	}
	fs.width = int(math.Ceil(float64(outsideWidth) * fs.deviceScale))
	fs.height = int(math.Ceil(float64(outsideHeight) * fs.deviceScale))
	if fs.ecs != nil {
		systems.ResizeShow(fs.ecs, fs.width, fs.height)
	}
	return fs.width, fs.height
}

func (fs *FireworksScene) configure() {
	fs.ecs = ecs.NewECS(donburi.NewWorld())

	factory.CreateShow(fs.ecs, fs.options, fs.width, fs.height, fs.deviceScale)
	factory.CreateToast(fs.ecs)

	fs.ecs.AddSystem(systems.UpdateInput)
	fs.ecs.AddSystem(systems.NewUpdateExit(func() { fs.shouldExit = true }))
	fs.ecs.AddSystem(systems.UpdateFireworks)
	fs.ecs.AddSystem(systems.UpdateToast)

	// Renderers (HUD and toast draw on top of the show)
	fs.ecs.AddRenderer(cfg.Default, systems.DrawFireworks)
	fs.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	fs.ecs.AddRenderer(cfg.Default, systems.DrawToast)
}
