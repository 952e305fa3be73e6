package spline

import (
	"fmt"
	"math"

	"github.com/npillmayer/flowers"
)

// ArcConstant is the control point offset fraction making a 4-point spline
// approximate a quarter circle arc: 2(√2−1)/3.
const ArcConstant float64 = 0.27614237

// Spline is a cubic Bézier segment with a width taper and a visible range.
//
// Splines are owned by growth elements and are overwritten in place each time
// their slot is regrown. Clients receive copies (views) only.
type Spline struct {
	Points     [4]flowers.Pair // control points
	WidthStart float64         // width at t=0
	WidthEnd   float64         // width at t=1
	StartT     float64         // visible range start
	EndT       float64         // visible range end
}

// SetArc sets the control points of s to approximate an arc of the given
// length, leaving start in direction dir and bowing towards normal.
// n1 and n2 are the offsets of the inner control points, usually
// ArcConstant·length and length−n1. If flatEnd is set, the arc arrives
// heading dir instead of dir−normal.
func (s *Spline) SetArc(start, dir flowers.Pair, length float64, normal flowers.Pair,
	n1, n2 float64, flatEnd bool) {
	//
	s.Points[0] = start
	s.Points[1] = start.Shifted((dir + normal).Scaled(n1))
	s.Points[2] = start.Shifted(dir.Scaled(n2))
	if !flatEnd {
		s.Points[2] = s.Points[2].Shifted(normal.Scaled(length - n2))
	}
	s.Points[3] = start.Shifted(dir.Scaled(length))
}

// SetLine sets the control points of s to a straight line of the given length,
// evenly spaced at t = 0, 1/3, 2/3 and 1.
func (s *Spline) SetLine(start, dir flowers.Pair, length float64) {
	s.Points[0] = start
	for i := 1; i < 3; i++ {
		s.Points[i] = start.Shifted(dir.Scaled(float64(i) * length / 3))
	}
	s.Points[3] = start.Shifted(dir.Scaled(length))
}

// SetWidth sets the width taper of s.
func (s *Spline) SetWidth(start, end float64) {
	s.WidthStart, s.WidthEnd = start, end
}

// Start is the first control point.
func (s Spline) Start() flowers.Pair {
	return s.Points[0]
}

// Endpoint is the last control point.
func (s Spline) Endpoint() flowers.Pair {
	return s.Points[3]
}

// Point evaluates the Bézier curve at parameter t.
func (s Spline) Point(t float64) flowers.Pair {
	m := 1 - t
	p0 := s.Points[0].Scaled(m * m * m)
	p1 := s.Points[1].Scaled(3 * m * m * t)
	p2 := s.Points[2].Scaled(3 * m * t * t)
	p3 := s.Points[3].Scaled(t * t * t)
	return p0 + p1 + p2 + p3
}

// Width is the stroke width at parameter t.
func (s Spline) Width(t float64) float64 {
	return s.WidthStart + (s.WidthEnd-s.WidthStart)*t
}

// WithRange returns a copy of s with its visible range set to [lo,hi],
// clamped to the unit interval.
func (s Spline) WithRange(lo, hi float64) Spline {
	s.StartT = flowers.Clamp01(lo)
	s.EndT = flowers.Clamp01(hi)
	if s.EndT < s.StartT {
		s.EndT = s.StartT
	}
	return s
}

// Range maps the visible window [t1,t2] of a growth element onto a slot
// occupying the span [s0,s1] of that element. It returns the visible range
// within the slot's own parameterization, or false if the slot lies
// completely outside the window.
func Range(s0, s1, t1, t2 float64) (lo, hi float64, ok bool) {
	if s1 <= s0 || t2 <= t1 || s1 <= t1 || s0 >= t2 {
		return 0, 0, false
	}
	w := s1 - s0
	lo = flowers.Clamp01((t1 - s0) / w)
	hi = flowers.Clamp01((t2 - s0) / w)
	return lo, hi, hi > lo
}

// Visible returns a view of s restricted to the window [t1,t2] of its element,
// with s occupying span [s0,s1] of the element. If s is not visible at all,
// false is returned.
func (s Spline) Visible(s0, s1, t1, t2 float64) (Spline, bool) {
	lo, hi, ok := Range(s0, s1, t1, t2)
	if !ok {
		return s, false
	}
	return s.WithRange(lo, hi), true
}

// IsValid is a predicate: are all control points finite and is the visible
// range well-formed?
func (s Spline) IsValid() bool {
	for _, p := range s.Points {
		if math.IsNaN(p.X()) || math.IsNaN(p.Y()) || math.IsInf(p.X(), 0) || math.IsInf(p.Y(), 0) {
			return false
		}
	}
	return 0 <= s.StartT && s.StartT <= s.EndT && s.EndT <= 1
}

// AsString returns a spline as a (debugging) string, in a notation close to
// MetaPost's, followed by its visible range.
func AsString(s Spline) string {
	return fmt.Sprintf("%s .. controls %s and %s .. %s [%g,%g]",
		ptstring(s.Points[0], false), ptstring(s.Points[1], true),
		ptstring(s.Points[2], true), ptstring(s.Points[3], false),
		s.StartT, s.EndT)
}

func ptstring(p flowers.Pair, iscontrol bool) string {
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
