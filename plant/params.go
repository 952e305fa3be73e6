package plant

import "fmt"

// Params are the tunables of plant growth. Times are in milliseconds,
// lengths in units of the shorter surface side (the visible area spans
// [-1,1] in both directions after aspect correction).
type Params struct {
	Capacity         int     // number of growth elements a plant remembers
	DurationMin      int     // minimum lifetime of a growth element
	DurationMax      int     // maximum lifetime of a growth element (exclusive)
	InitialLengthMin float64 // length range of a plant's first straight segment
	InitialLengthMax float64
	ArmLengthMin     float64 // length range of a growth step
	ArmLengthMax     float64
	BranchScale      float64 // size of branches relative to the growth step
	BranchChance     int     // while turning, one in BranchChance steps grows a branch
	RootWidth        float64 // stroke width of the main path
	BranchWidth      float64 // stroke width at the base of a branch
	FlowerScale      float64 // scale of a fully grown flower
}

// DefaultParams returns the reference sizing.
func DefaultParams() Params {
	return Params{
		Capacity:         6,
		DurationMin:      500,
		DurationMax:      2000,
		InitialLengthMin: 0.5,
		InitialLengthMax: 0.8,
		ArmLengthMin:     0.3,
		ArmLengthMax:     0.5,
		BranchScale:      0.7,
		BranchChance:     3,
		RootWidth:        0.04,
		BranchWidth:      0.03,
		FlowerScale:      0.1,
	}
}

// Validate checks parameters for consistency. A positive minimum duration is
// required, as element progress is computed by dividing by the duration.
// A plant needs room for two elements, one growing in while the oldest
// shrinks away.
func (p Params) Validate() error {
	switch {
	case p.Capacity < 2:
		return fmt.Errorf("%w: capacity must be at least 2, is %d", ErrInvalidParams, p.Capacity)
	case p.DurationMin <= 0:
		return fmt.Errorf("%w: minimum duration must be > 0, is %d", ErrInvalidParams, p.DurationMin)
	case p.DurationMax < p.DurationMin:
		return fmt.Errorf("%w: duration range [%d,%d] is empty", ErrInvalidParams, p.DurationMin, p.DurationMax)
	case p.InitialLengthMin <= 0 || p.InitialLengthMax < p.InitialLengthMin:
		return fmt.Errorf("%w: initial length range [%g,%g]", ErrInvalidParams, p.InitialLengthMin, p.InitialLengthMax)
	case p.ArmLengthMin <= 0 || p.ArmLengthMax < p.ArmLengthMin:
		return fmt.Errorf("%w: arm length range [%g,%g]", ErrInvalidParams, p.ArmLengthMin, p.ArmLengthMax)
	case p.BranchScale <= 0:
		return fmt.Errorf("%w: branch scale must be > 0, is %g", ErrInvalidParams, p.BranchScale)
	case p.BranchChance < 1:
		return fmt.Errorf("%w: branch chance must be at least 1, is %d", ErrInvalidParams, p.BranchChance)
	case p.RootWidth < 0 || p.BranchWidth < 0:
		return fmt.Errorf("%w: widths must not be negative", ErrInvalidParams)
	case p.FlowerScale < 0 || p.FlowerScale > 1:
		return fmt.Errorf("%w: flower scale must be in [0,1], is %g", ErrInvalidParams, p.FlowerScale)
	}
	return nil
}
