package fireworks

import "math"

// Pool is a free list of reusable values. Released values are zeroed so
// nothing from a previous life leaks into the next acquisition.
type Pool[T any] struct {
	free      []*T
	allocated int
}

// Get returns a recycled value or allocates a new one
func (p *Pool[T]) Get() *T {
	if n := len(p.free); n > 0 {
		v := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return v
	}
	p.allocated++
	return new(T)
}

// Put zeroes v and returns it to the free list
func (p *Pool[T]) Put(v *T) {
	var zero T
	*v = zero
	p.free = append(p.free, v)
}

// Allocated is the number of values ever created by the pool
func (p *Pool[T]) Allocated() int { return p.allocated }

// Free is the number of values waiting for reuse
func (p *Pool[T]) Free() int { return len(p.free) }

// Buckets indexes live values by colour so a renderer can batch one path per colour
type Buckets[T any] [ColorCount][]*T

func (b *Buckets[T]) push(c Color, v *T) {
	b[c] = append(b[c], v)
}

// removeAt swap-removes the value at i. Callers iterating a bucket from the
// end may remove the current index without skipping unvisited values.
func (b *Buckets[T]) removeAt(c Color, i int) *T {
	s := b[c]
	v := s[i]
	last := len(s) - 1
	s[i] = s[last]
	s[last] = nil
	b[c] = s[:last]
	return v
}

// Count is the number of live values across all buckets
func (b *Buckets[T]) Count() int {
	n := 0
	for c := range b {
		n += len(b[c])
	}
	return n
}

func (b *Buckets[T]) drain(put func(*T)) {
	for c := range b {
		for i, v := range b[c] {
			put(v)
			b[c][i] = nil
		}
		b[c] = b[c][:0]
	}
}

// StarPool owns every star, live or free
type StarPool struct {
	Pool[Star]
	Active Buckets[Star]
}

// Add acquires a star at (x, y) moving at angle/speed plus an optional velocity offset
func (sp *StarPool) Add(x, y float64, c Color, angle, speed, life, offX, offY float64) *Star {
	s := sp.Get()
	s.place(x, y, c, angle, speed, life)
	s.SpeedX += offX
	s.SpeedY += offY
	s.Visible = true
	s.SecondColor = NoColor
	s.SparkSpeed = 1
	s.SparkLife = 750
	s.SparkLifeVariation = 0.25
	s.SparkColor = c
	sp.Active.push(c, s)
	return s
}

// moveBucket moves the star at index i of bucket from into the bucket of its current colour
func (sp *StarPool) moveBucket(from Color, i int) {
	s := sp.Active.removeAt(from, i)
	sp.Active.push(s.Color, s)
}

// Reset releases every live star
func (sp *StarPool) Reset() {
	sp.Active.drain(sp.Put)
}

// SparkPool owns every spark, live or free
type SparkPool struct {
	Pool[Spark]
	Active Buckets[Spark]
}

// Add acquires a spark; invisible sparks are never created
func (sp *SparkPool) Add(x, y float64, c Color, angle, speed, life float64) *Spark {
	if !c.Visible() {
		c = White
	}
	s := sp.Get()
	s.place(x, y, c, angle, speed, life)
	sp.Active.push(c, s)
	return s
}

// Reset releases every live spark
func (sp *SparkPool) Reset() {
	sp.Active.drain(sp.Put)
}

// FlashPool holds the flashes registered since the last render pass
type FlashPool struct {
	Pool[BurstFlash]
	Active []*BurstFlash
}

// Add registers a flash. Registrations at the same origin within one pass
// share a single flash with the largest radius.
func (fp *FlashPool) Add(x, y, radius float64) *BurstFlash {
	for _, f := range fp.Active {
		if f.X == x && f.Y == y {
			f.Radius = math.Max(f.Radius, radius)
			return f
		}
	}
	f := fp.Get()
	f.X, f.Y, f.Radius = x, y, radius
	fp.Active = append(fp.Active, f)
	return f
}

// Drain hands every registered flash to fn, last registered first, and releases it
func (fp *FlashPool) Drain(fn func(*BurstFlash)) {
	for n := len(fp.Active); n > 0; n = len(fp.Active) {
		f := fp.Active[n-1]
		fp.Active[n-1] = nil
		fp.Active = fp.Active[:n-1]
		if fn != nil {
			fn(f)
		}
		fp.Put(f)
	}
}
