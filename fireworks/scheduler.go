package fireworks

import (
	"github.com/automoto/fireworks/config"
)

type deferredLaunch struct {
	delay  float64
	shell  *Shell
	pos    float64
	height float64
}

// Scheduler decides when auto-launched shells go up. Missed frames only
// delay the next launch; nothing is caught up.
type Scheduler struct {
	Countdown float64
	pending   []deferredLaunch
}

// Defer launches shell after delay milliseconds of simulated time
func (sc *Scheduler) Defer(delay float64, shell *Shell, pos, height float64) {
	sc.pending = append(sc.pending, deferredLaunch{delay: delay, shell: shell, pos: pos, height: height})
}

func (sc *Scheduler) update(ctx *Context, timeStep float64) {
	for i := 0; i < len(sc.pending); {
		p := &sc.pending[i]
		p.delay -= timeStep
		if p.delay > 0 {
			i++
			continue
		}
		shell, pos, height := p.shell, p.pos, p.height
		sc.pending = append(sc.pending[:i], sc.pending[i+1:]...)
		shell.Launch(ctx, pos, height)
	}

	if !ctx.Options.AutoLaunch {
		return
	}
	sc.Countdown -= timeStep
	if sc.Countdown <= 0 {
		var next float64
		if ctx.Rand.Float64() < config.Schedule.SingleWeight {
			next = sc.launchSingle(ctx)
		} else {
			next = sc.launchPair(ctx)
		}
		sc.Countdown = next * config.Schedule.IntervalFactor
	}
}

// NextShell builds a shell of the configured type
func (ctx *Context) NextShell(size int) *Shell {
	return Build(ctx.Rand, ctx.Options.ShellType, size)
}

func (sc *Scheduler) interval(ctx *Context) float64 {
	return config.Schedule.MinInterval + ctx.Rand.Float64()*config.Schedule.IntervalJitter
}

func (sc *Scheduler) launchSingle(ctx *Context) float64 {
	r := ctx.Rand
	size := ctx.Options.ShellSize
	if r.Float64() >= 0.5 {
		size = max(0, size-1)
	}
	ctx.NextShell(size).Launch(ctx, r.Float64(), r.Float64()*config.Schedule.MaxHeight)
	return sc.interval(ctx)
}

func (sc *Scheduler) launchPair(ctx *Context) float64 {
	r := ctx.Rand
	s := config.Schedule
	size := ctx.Options.ShellSize
	left := ctx.NextShell(size)
	right := ctx.NextShell(size)
	leftOffset := r.Float64()*s.PairJitter*2 - s.PairJitter
	rightOffset := r.Float64()*s.PairJitter*2 - s.PairJitter
	left.Launch(ctx, s.PairLeft+leftOffset, r.Float64()*s.MaxHeight)
	sc.Defer(s.PairDelay, right, s.PairRight+rightOffset, r.Float64()*s.MaxHeight)
	return sc.interval(ctx)
}
