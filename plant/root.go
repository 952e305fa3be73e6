package plant

import (
	"github.com/npillmayer/flowers"
	"github.com/npillmayer/flowers/spline"
)

// RootSplineCapacity is the maximum number of main path splines of a growth
// element. Turning by up to 315° in 90° arcs needs four of them.
const RootSplineCapacity = 5

// RootElement is one growth frame of a plant: 1–5 chained main path splines,
// grown at once, each with a branch slot. It is animated for Duration
// milliseconds, starting at StartTime.
type RootElement struct {
	splines   [RootSplineCapacity]spline.Spline
	branches  [RootSplineCapacity]Branch
	count     int
	StartTime int64
	Duration  int64
}

func (e *RootElement) reset(start, duration int64) {
	e.count = 0
	e.StartTime = start
	e.Duration = duration
}

// nextSpline takes the next main path slot and clears the branch paired
// with it.
func (e *RootElement) nextSpline(width float64) *spline.Spline {
	if e.count >= RootSplineCapacity {
		overflow("root element splines", RootSplineCapacity)
		e.count = RootSplineCapacity - 1
	}
	e.branches[e.count].reset()
	s := &e.splines[e.count]
	s.SetWidth(width, width)
	e.count++
	return s
}

// currentBranch is the branch paired with the latest main path spline.
func (e *RootElement) currentBranch() *Branch {
	return &e.branches[e.count-1]
}

// Visible appends the splines and flowers visible within the window
// [t1,t2] of this element's lifetime. The populated splines divide the
// lifetime evenly; a branch is scaled with the visible portion of its spline.
func (e *RootElement) Visible(splines []spline.Spline, fls []Flower, t1, t2 float64) ([]spline.Spline, []Flower) {
	t1, t2 = flowers.Clamp01(t1), flowers.Clamp01(t2)
	n := float64(e.count)
	for i := 0; i < e.count; i++ {
		v, ok := e.splines[i].Visible(float64(i)/n, float64(i+1)/n, t1, t2)
		if !ok {
			continue
		}
		splines = append(splines, v)
		splines, fls = e.branches[i].Visible(splines, fls, v.EndT-v.StartT)
	}
	return splines, fls
}

// Count is the number of populated main path splines.
func (e *RootElement) Count() int {
	return e.count
}

// Spline returns main path spline i.
func (e *RootElement) Spline(i int) spline.Spline {
	return e.splines[i]
}

// Branch returns the branch paired with main path spline i.
func (e *RootElement) Branch(i int) *Branch {
	return &e.branches[i]
}

// Start is the point the element's path starts at.
func (e *RootElement) Start() flowers.Pair {
	return e.splines[0].Start()
}

// End is the point the element's path ends at.
func (e *RootElement) End() flowers.Pair {
	return e.splines[e.count-1].Endpoint()
}
