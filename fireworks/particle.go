package fireworks

import "math"

// Effect is the action taken when a star expires
type Effect uint8

const (
	EffectNone Effect = iota
	EffectCrossette
	EffectCrackle
	EffectFloral
	EffectFallingLeaves
	// EffectShellBurst bursts the shell that launched the star (comets only)
	EffectShellBurst
)

func (e Effect) String() string {
	switch e {
	case EffectCrossette:
		return "crossette"
	case EffectCrackle:
		return "crackle"
	case EffectFloral:
		return "floral"
	case EffectFallingLeaves:
		return "fallingLeaves"
	case EffectShellBurst:
		return "shellBurst"
	default:
		return "none"
	}
}

// Particle holds the motion state shared by stars and sparks
type Particle struct {
	X, Y           float64
	PrevX, PrevY   float64
	SpeedX, SpeedY float64
	Life           float64
	FullLife       float64
	Color          Color
}

func (p *Particle) place(x, y float64, c Color, angle, speed, life float64) {
	p.X, p.Y = x, y
	p.PrevX, p.PrevY = x, y
	p.Color = c
	p.SpeedX = math.Sin(angle) * speed
	p.SpeedY = math.Cos(angle) * speed
	p.Life = life
	p.FullLife = life
}

// integrate moves the particle one step and applies drag then gravity
func (p *Particle) integrate(speed, drag, gAcc float64) {
	p.PrevX, p.PrevY = p.X, p.Y
	p.X += p.SpeedX * speed
	p.Y += p.SpeedY * speed
	p.SpeedX *= drag
	p.SpeedY *= drag
	p.SpeedY += gAcc
}

// Star is a burst particle or a comet
type Star struct {
	Particle

	Visible bool
	Heavy   bool

	SecondColor    Color
	TransitionTime float64
	ColorChanged   bool

	Strobe     bool
	StrobeFreq float64

	SparkFreq          float64
	SparkSpeed         float64
	SparkLife          float64
	SparkLifeVariation float64
	SparkColor         Color
	SparkTimer         float64

	OnDeath Effect

	shell       *Shell
	updateFrame uint64
}

// Spark is a glitter/trail particle with no secondary behaviour
type Spark struct {
	Particle
}

// BurstFlash is a radial light pulse that lives for a single render pass
type BurstFlash struct {
	X, Y   float64
	Radius float64
}
