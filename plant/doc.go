/*
Package plant implements growth and animation of flowering vines.

A Field holds a fixed set of plants, one per palette color. Each Plant keeps a
rolling history of growth elements (type RootElement) in a ring buffer. An
element is one timed burst of up to five chained path splines, grown at once
in response to one target-seeking decision, with an optional side Branch per
path spline. Branches carry up to three splines and two flowers.

Growth

On every tick a plant is advanced to the current time. Whenever the newest
element's lifetime has passed, a new element is spawned: a random target point
is chosen, the plant's heading is turned towards it in steps of 45°/90° arcs
(or extended straight ahead), and side branches are seeded along the way.
Spawning is chained in time: each new element starts exactly where its
predecessor ended, independent of how sparse ticks are.

	field, err := plant.NewField(palette, plant.DefaultParams(), plant.NewSource(seed))
	...
	field.Resize(width, height)
	for now := range ticks {
	    field.Tick(now, offset)
	    field.Draw(renderer)
	}

Visibility

A plant's geometry is queried for a point in time. The newest element grows
in, the oldest element (once the ring is full) shrinks away at the same rate,
everything in between is fully visible. Fractions are resolved down to single
splines, so animation is continuous at any frame rate.

Memory

Every spline, flower, branch and element is allocated when a plant is
created and overwritten in place afterwards. Queries append value copies to
slices owned by the caller, which may be re-sliced to zero length and reused
from frame to frame.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package plant

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'flowers.plant'
func tracer() tracing.Trace {
	return tracing.Select("flowers.plant")
}

var (
	// ErrEmptyPalette indicates a field without any plant colors.
	ErrEmptyPalette = errors.New("palette must contain at least one color")
	// ErrInvalidParams indicates growth parameters out of range.
	ErrInvalidParams = errors.New("invalid growth parameters")
	// ErrCapacityExceeded indicates a slot pool ran out of slots. This is a
	// programming error; growth never needs more slots than provided.
	ErrCapacityExceeded = errors.New("slot capacity exceeded")
)

// overflow reports a slot pool overflow. Built with tag 'flowersdebug' it
// panics, otherwise the caller clamps to its last slot.
func overflow(pool string, capacity int) {
	err := fmt.Errorf("%w: %s holds %d slots", ErrCapacityExceeded, pool, capacity)
	if strict {
		panic(err)
	}
	tracer().Errorf("%v", err)
}
