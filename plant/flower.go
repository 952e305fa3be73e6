package plant

import (
	"fmt"
	"math"

	"github.com/npillmayer/flowers"
)

// Flower is an ornament at the tip of a branch.
type Flower struct {
	Position    flowers.Pair
	RotationSin float64 // rotation is kept as sine/cosine pair
	RotationCos float64
	Scale       float64 // in [0,1]
}

// place positions f and orients it along direction index dir.
func (f *Flower) place(pos flowers.Pair, dir int) {
	f.Position = pos
	rotation := math.Pi * 2 * float64(wrap(dir)) / DirectionCount
	f.RotationSin = math.Sin(rotation)
	f.RotationCos = math.Cos(rotation)
	f.Scale = 0
}

// Transform maps the unit flower sprite onto its place: scaled, rotated,
// then moved to Position.
func (f Flower) Transform() flowers.AT {
	return flowers.Scaling(f.Scale).
		Combine(flowers.RotationSinCos(f.RotationSin, f.RotationCos)).
		Combine(flowers.Translation(f.Position))
}

func (f Flower) String() string {
	return fmt.Sprintf("flower%v[sin=%.3f,cos=%.3f,scale=%.3f]",
		f.Position, f.RotationSin, f.RotationCos, f.Scale)
}
