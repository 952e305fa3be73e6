package plant

import "github.com/npillmayer/flowers"

// DirectionCount is the number of octilinear directions.
const DirectionCount = 8

// star lists the raw octilinear directions N, NE, E, SE, S, SW, W, NW.
var star = [DirectionCount]flowers.Pair{
	flowers.P(0, 1), flowers.P(1, 1), flowers.P(1, 0), flowers.P(1, -1),
	flowers.P(0, -1), flowers.P(-1, -1), flowers.P(-1, 0), flowers.P(-1, 1),
}

// Directions is the table of the eight directions all growth is restricted to,
// corrected for the aspect ratio of the rendering surface.
//
// A field owns one table and hands it to its plants, which only read from it.
// Index arithmetic wraps around, i.e. At(-1) is At(7).
type Directions struct {
	dirs   [DirectionCount]flowers.Pair
	aspect flowers.Pair
}

// NewDirections creates a direction table for a surface of the given size.
// Non-positive sizes result in a 1:1 aspect ratio.
func NewDirections(width, height int) *Directions {
	d := &Directions{}
	d.Resize(width, height)
	return d
}

// Resize recomputes the table for a new surface size.
func (d *Directions) Resize(width, height int) {
	d.aspect = flowers.P(1, 1)
	if width > 0 && height > 0 {
		m := float64(min(width, height))
		d.aspect = flowers.P(m/float64(width), m/float64(height))
	}
	for i, dir := range star {
		d.dirs[i] = dir.Unit().XYScaled(d.aspect.X(), d.aspect.Y())
	}
	tracer().Debugf("directions resized to %dx%d, aspect ratio %v", width, height, d.aspect)
}

// At returns direction i mod 8.
func (d *Directions) At(i int) flowers.Pair {
	return d.dirs[wrap(i)]
}

// AspectRatio is the per-axis scale applied to the directions.
func (d *Directions) AspectRatio() flowers.Pair {
	return d.aspect
}

// wrap reduces a direction index to 0…7.
func wrap(i int) int {
	i %= DirectionCount
	if i < 0 {
		i += DirectionCount
	}
	return i
}
