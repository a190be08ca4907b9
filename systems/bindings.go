package systems

import (
	cfg "github.com/automoto/fireworks/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionBinding lists the keys that trigger one action
type ActionBinding struct {
	Keys []ebiten.Key
}

// Bindings maps viewer actions to keys. Mouse and touch launches are read separately.
var Bindings = map[cfg.ActionID]ActionBinding{
	cfg.ActionLaunch:           {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyL}},
	cfg.ActionPause:            {Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyP}},
	cfg.ActionToggleAutoLaunch: {Keys: []ebiten.Key{ebiten.KeyA}},
	cfg.ActionToggleHUD:        {Keys: []ebiten.Key{ebiten.KeyH}},
	cfg.ActionSpeedUp:          {Keys: []ebiten.Key{ebiten.KeyBracketRight, ebiten.KeyEqual}},
	cfg.ActionSpeedDown:        {Keys: []ebiten.Key{ebiten.KeyBracketLeft, ebiten.KeyMinus}},
	cfg.ActionBack:             {Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace}},
}
