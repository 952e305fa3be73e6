package plant

import (
	"math"

	"github.com/npillmayer/flowers"
	"github.com/npillmayer/flowers/spline"
)

// Slot capacities of a branch.
const (
	BranchSplineCapacity = 3
	BranchFlowerCapacity = 2
)

// Branch is a decorative side path attached to one spline of the main path.
// It consists of 1–3 arcs and 0–2 flowers.
type Branch struct {
	splines     [BranchSplineCapacity]spline.Spline
	splineCount int
	flowers     [BranchFlowerCapacity]Flower
	flowerCount int
	flowerScale float64
}

func (b *Branch) reset() {
	b.splineCount = 0
	b.flowerCount = 0
}

func (b *Branch) nextSpline() *spline.Spline {
	if b.splineCount >= BranchSplineCapacity {
		overflow("branch splines", BranchSplineCapacity)
		return &b.splines[BranchSplineCapacity-1]
	}
	b.splineCount++
	return &b.splines[b.splineCount-1]
}

func (b *Branch) nextFlower() *Flower {
	if b.flowerCount >= BranchFlowerCapacity {
		overflow("branch flowers", BranchFlowerCapacity)
		return &b.flowers[BranchFlowerCapacity-1]
	}
	b.flowerCount++
	return &b.flowers[b.flowerCount-1]
}

// grow populates b, starting at origin. The first arc heads off rotated by
// rot (±1) from direction startDir and bends back. A random draw decides
// whether the branch ends in a flower right there, forks into a second arc
// with a flower, or additionally forks into a third, half-length arc with a
// second flower.
func (b *Branch) grow(g *growth, origin flowers.Pair, startDir, rot int, length, normalLen float64) {
	w := g.params.BranchWidth
	b.flowerScale = g.params.FlowerScale
	dir := g.dirs.At(startDir + rot)
	normal := g.dirs.At(startDir - rot)
	s := b.nextSpline()
	s.SetWidth(w, 0)
	s.SetArc(origin, dir, length, normal, normalLen, length-normalLen, false)
	fork := s.Endpoint()

	r := g.rnd.IntN(3)
	if r == 0 {
		b.nextFlower().place(fork, startDir)
		return
	}
	s.WidthEnd = w / 2
	dir = g.dirs.At(startDir + 3*rot)
	normal = g.dirs.At(startDir + rot)
	s = b.nextSpline()
	s.SetWidth(w/2, 0)
	s.SetArc(fork, dir, length, normal, normalLen, length-normalLen, false)
	b.nextFlower().place(s.Endpoint(), startDir)
	if r == 1 {
		return
	}
	dir = g.dirs.At(startDir)
	normal = g.dirs.At(startDir + 2*rot)
	s = b.nextSpline()
	s.SetWidth(w/2, 0)
	s.SetArc(fork, dir, length*.5, normal, normalLen*.5, (length-normalLen)*.5, false)
	b.nextFlower().place(s.Endpoint(), startDir+1)
}

// Visible appends the branch's splines and flowers, given the progress
// t ∈ [0,1] of the main path spline the branch is attached to.
// Splines are fully visible; flowers grow during the second half of t.
func (b *Branch) Visible(splines []spline.Spline, fls []Flower, t float64) ([]spline.Spline, []Flower) {
	for i := 0; i < b.splineCount; i++ {
		splines = append(splines, b.splines[i].WithRange(0, 1))
	}
	scale := math.Max(0, (flowers.Clamp01(t)-0.5)*2) * b.flowerScale
	for i := 0; i < b.flowerCount; i++ {
		f := b.flowers[i]
		f.Scale = scale
		fls = append(fls, f)
	}
	return splines, fls
}

// SplineCount is the number of populated splines.
func (b *Branch) SplineCount() int {
	return b.splineCount
}

// FlowerCount is the number of populated flowers.
func (b *Branch) FlowerCount() int {
	return b.flowerCount
}

// Spline returns populated spline i.
func (b *Branch) Spline(i int) spline.Spline {
	return b.splines[i]
}

// Flower returns populated flower i.
func (b *Branch) Flower(i int) Flower {
	return b.flowers[i]
}
