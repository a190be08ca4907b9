package fireworks

import (
	"math/rand/v2"

	"github.com/automoto/fireworks/config"
)

// BurstEvent describes one burst, reported after its stars were spawned
type BurstEvent struct {
	Kind   ShellKind
	Ring   bool
	Nested bool
	X, Y   float64
	Stars  int
}

// Context is the whole mutable state of one running show. Only Update and
// Render mutate it, and never concurrently.
type Context struct {
	Options config.Options
	Rand    *rand.Rand

	Stars   StarPool
	Sparks  SparkPool
	Flashes FlashPool

	// Width and Height are the stage size in simulation units (viewport / scale factor)
	Width, Height float64

	Frame     uint64
	Scheduler Scheduler
	Sky       Sky

	OnBurst func(BurstEvent)

	shells int
	bursts int

	starSegs  []Segment
	headSegs  []Segment
	sparkSegs []Segment
}

// NewContext builds an empty context. opts is normalised.
func NewContext(opts config.Options, r *rand.Rand) *Context {
	opts.Normalize()
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Context{
		Options: opts,
		Rand:    r,
	}
}

func (ctx *Context) quality() float64 {
	return float64(ctx.Options.Quality)
}

func (ctx *Context) emit(ev BurstEvent) {
	ctx.bursts++
	if ctx.OnBurst != nil {
		ctx.OnBurst(ev)
	}
}

// Stats is a snapshot of pool and show counters
type Stats struct {
	Frame           uint64
	Stars           int
	Sparks          int
	Flashes         int
	StarsAllocated  int
	SparksAllocated int
	Shells          int
	Bursts          int
	Pending         int
}

// Stats reports the current counters
func (ctx *Context) Stats() Stats {
	return Stats{
		Frame:           ctx.Frame,
		Stars:           ctx.Stars.Active.Count(),
		Sparks:          ctx.Sparks.Active.Count(),
		Flashes:         len(ctx.Flashes.Active),
		StarsAllocated:  ctx.Stars.Allocated(),
		SparksAllocated: ctx.Sparks.Allocated(),
		Shells:          ctx.shells,
		Bursts:          ctx.bursts,
		Pending:         len(ctx.Scheduler.pending),
	}
}

// Reset releases every live particle and drops pending launches
func (ctx *Context) Reset() {
	ctx.Stars.Reset()
	ctx.Sparks.Reset()
	ctx.Flashes.Drain(nil)
	ctx.Scheduler.pending = ctx.Scheduler.pending[:0]
}
