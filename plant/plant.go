package plant

import (
	"math"

	"github.com/npillmayer/flowers"
	"github.com/npillmayer/flowers/spline"
)

// growth bundles what all plants of a field share: the direction table,
// the random source and the parameters.
type growth struct {
	dirs   *Directions
	rnd    Source
	params Params
}

func (g *growth) duration() int64 {
	return int64(randI(g.rnd, g.params.DurationMin, g.params.DurationMax))
}

// Plant is a single vine. It remembers its most recent growth elements in a
// ring buffer; the populated elements, oldest first, form one continuous
// path ending at the plant's current position.
//
// A plant starts uninitialized. The first call to Advance seeds it, later
// calls spawn new elements whenever the newest one has grown completely.
type Plant struct {
	g     *growth
	ring  []RootElement
	first int // ring index of the oldest element
	count int // number of populated elements
	pos   flowers.Pair
	dir   int
	now   int64 // time of the latest Advance
}

func newPlant(g *growth) *Plant {
	return &Plant{
		g:    g,
		ring: make([]RootElement, g.params.Capacity),
	}
}

// Advance moves the plant's growth forward to time now (in milliseconds).
// offset is the origin of the visible area; new targets are chosen around it.
//
// Elements are chained in time: an element spawned during catch-up starts
// where its predecessor ended, not at now. Advancing over a long gap thus
// spawns exactly as many elements as fit into the gap.
func (p *Plant) Advance(now int64, offset flowers.Pair) {
	p.now = now
	if p.count == 0 {
		p.seed(now, offset)
		return
	}
	at := p.newest().StartTime + p.newest().Duration
	for now > at {
		e := p.push()
		e.reset(at, p.g.duration())
		target := randPoint(p.g.rnd, offset)
		p.growToward(e, target)
		at += e.Duration
	}
}

// seed creates the first element: a straight line from a random point.
func (p *Plant) seed(now int64, offset flowers.Pair) {
	e := p.push()
	e.reset(now, p.g.duration())
	p.pos = randPoint(p.g.rnd, offset)
	length := randF(p.g.rnd, p.g.params.InitialLengthMin, p.g.params.InitialLengthMax)
	p.dir = p.g.rnd.IntN(DirectionCount)
	s := e.nextSpline(p.g.params.RootWidth)
	s.SetLine(p.pos, p.g.dirs.At(p.dir), length)
	p.pos = s.Endpoint()
	tracer().Debugf("plant seeded at %v heading %d", s.Start(), p.dir)
}

// push returns the ring slot for a new element. If the ring is full, the
// oldest element is evicted and its storage reused.
func (p *Plant) push() *RootElement {
	capacity := len(p.ring)
	if p.count < capacity {
		p.count++
		return p.element(p.count - 1)
	}
	e := &p.ring[p.first]
	p.first = (p.first + 1) % capacity
	return e
}

// growToward fills e with path splines and branches bringing the plant
// closer to target.
func (p *Plant) growToward(e *RootElement, target flowers.Pair) {
	best := p.searchDirection(target)
	arm := math.Max(randF(p.g.rnd, p.g.params.ArmLengthMin, p.g.params.ArmLengthMax),
		p.pos.Dist(target)/2)
	normalLen := spline.ArcConstant * arm
	tracer().Debugf("target %v: heading %d -> %d, arm length %.3f", target, p.dir, best, arm)
	if best != p.dir {
		p.turn(e, best, arm, normalLen)
	} else {
		p.extend(e, arm, normalLen)
	}
}

// searchDirection returns the direction index with the best Dist score for
// target. Ties keep the current direction.
func (p *Plant) searchDirection(target flowers.Pair) int {
	best := p.dir
	bestDist := Dist(p.pos, p.g.dirs.At(p.dir), target)
	for i := 1; i < DirectionCount; i++ {
		j := wrap(p.dir + i)
		if d := Dist(p.pos, p.g.dirs.At(j), target); d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}

// turn walks from the current heading to heading `to` in arcs of 90°, the
// last one possibly 45°. Index arithmetic does not wrap: the plant turns
// towards `to` on the side the indices lie.
func (p *Plant) turn(e *RootElement, to int, arm, normalLen float64) {
	scale := p.g.params.BranchScale
	k := 1
	if to < p.dir {
		k = -1
	}
	for i := p.dir + k; i*k <= to*k; i += 2 * k {
		s := e.nextSpline(p.g.params.RootWidth)
		s.SetArc(p.pos, p.g.dirs.At(i), arm, p.g.dirs.At(i-2*k), normalLen, arm-normalLen, i == to)
		p.pos = s.Endpoint()
		if p.g.rnd.IntN(p.g.params.BranchChance) == 0 {
			rot := randSign(p.g.rnd, k)
			e.currentBranch().grow(p.g, p.pos, i+k, rot, arm*scale, normalLen*scale)
		}
	}
	p.dir = to
}

// extend grows straight ahead and always attaches a branch.
func (p *Plant) extend(e *RootElement, arm, normalLen float64) {
	scale := p.g.params.BranchScale
	s := e.nextSpline(p.g.params.RootWidth)
	s.SetLine(p.pos, p.g.dirs.At(p.dir), arm)
	p.pos = s.Endpoint()
	rot := randSign(p.g.rnd, 1)
	e.currentBranch().grow(p.g, p.pos, p.dir, rot, arm*scale, normalLen*scale)
}

// Visible appends the splines and flowers visible at time now. The newest
// element grows in while, with the ring full, the oldest one shrinks away at
// the same rate. A plant consisting of its seed element only shows it fully.
func (p *Plant) Visible(splines []spline.Spline, fls []Flower, now int64) ([]spline.Spline, []Flower) {
	if p.count == 0 {
		return splines, fls
	}
	last := p.newest()
	t := flowers.Clamp01(float64(now-last.StartTime) / float64(last.Duration))
	for i := 0; i < p.count; i++ {
		e := p.element(i)
		switch {
		case p.count == 1:
			splines, fls = e.Visible(splines, fls, 0, 1)
		case i == p.count-1:
			splines, fls = e.Visible(splines, fls, 0, t)
		case i == 0 && p.count == len(p.ring):
			splines, fls = e.Visible(splines, fls, t, 1)
		default:
			splines, fls = e.Visible(splines, fls, 0, 1)
		}
	}
	return splines, fls
}

// Reset returns p to its uninitialized state.
func (p *Plant) Reset() {
	p.count = 0
	p.first = 0
}

// IsGrowing is a predicate: has the plant been seeded?
func (p *Plant) IsGrowing() bool {
	return p.count > 0
}

// Len is the number of populated growth elements.
func (p *Plant) Len() int {
	return p.count
}

// Capacity is the size of the plant's growth history.
func (p *Plant) Capacity() int {
	return len(p.ring)
}

// Element returns growth element i, 0 being the oldest.
func (p *Plant) Element(i int) *RootElement {
	return p.element(i)
}

func (p *Plant) element(i int) *RootElement {
	return &p.ring[(p.first+i)%len(p.ring)]
}

func (p *Plant) newest() *RootElement {
	return p.element(p.count - 1)
}

// Position is the head of growth.
func (p *Plant) Position() flowers.Pair {
	return p.pos
}

// DirectionIndex is the current heading.
func (p *Plant) DirectionIndex() int {
	return p.dir
}

// Now is the time of the latest call to Advance.
func (p *Plant) Now() int64 {
	return p.now
}
