package plant

import (
	"math"
	"math/rand/v2"

	"github.com/npillmayer/flowers"
)

// Source is the random source driving all growth decisions.
// *rand.Rand of math/rand/v2 satisfies it; tests may script it.
type Source interface {
	Float64() float64 // in [0,1)
	IntN(n int) int   // in [0,n)
}

// NewSource creates a seeded source. Equal seeds produce equal growth.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// randF returns a float in [lo,hi).
func randF(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// randI returns an int in [lo,hi), or lo for an empty range.
func randI(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo)
}

// randPoint returns a point in the unit square around the origin, translated
// by offset.
func randPoint(src Source, offset flowers.Pair) flowers.Pair {
	x := randF(src, -0.5, 0.5)
	y := randF(src, -0.5, 0.5)
	return flowers.P(x, y).Shifted(offset)
}

// randSign returns -s or s with equal probability.
func randSign(src Source, s int) int {
	if src.IntN(2) == 0 {
		return -s
	}
	return s
}

// Dist scores heading dir from pos for reaching target; smaller is better.
//
// If target lies ahead, the score is the distance by which the path would
// miss target when continuing straight (the perpendicular distance). If it
// lies behind, heading dir cannot bring the path any closer, and the score
// is the remaining distance plus the distance travelled backwards, which is
// never smaller than any score for a direction ahead.
func Dist(pos, dir, target flowers.Pair) float64 {
	d := target - pos
	u := dir.Unit()
	along := d.Dot(u)
	if along >= 0 {
		return math.Abs(d.Cross(u))
	}
	return d.Length() - along
}
