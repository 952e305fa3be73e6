/*
Package polygon implements closed polygons for culling and filling.

Polygons are thin wrappers around polyclip-go polygons, using the pair type
of package flowers for knots. Renderers use them for the control point hulls
of splines, the viewport, and for flower petals, which are clipped against
the viewport and then filled.

	pg := NullPolygon().Knot(flowers.P(0, 0)).Knot(flowers.P(1, 3)).Knot(flowers.P(3, 0)).Cycle()

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"bytes"
	"fmt"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/flowers"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to key 'flowers.polygon'
func L() tracing.Trace {
	return tracing.Select("flowers.polygon")
}

// Polygon is a set of closed contours. The zero value is an empty polygon.
type Polygon struct {
	pg polyclip.Polygon
}

// Builder collects knots for a single contour.
type Builder struct {
	contour polyclip.Contour
}

// NullPolygon starts a new contour without any knots.
func NullPolygon() *Builder {
	return &Builder{}
}

// Knot appends a knot to the contour.
func (b *Builder) Knot(p flowers.Pair) *Builder {
	b.contour.Add(pt(p))
	return b
}

// Cycle closes the contour and returns it as a polygon.
func (b *Builder) Cycle() *Polygon {
	pg := &Polygon{}
	if len(b.contour) > 0 {
		pg.pg.Add(b.contour)
	}
	b.contour = nil
	return pg
}

// Box creates a rectangle with corners a and b.
func Box(a, b flowers.Pair) *Polygon {
	x0, x1 := min(a.X(), b.X()), max(a.X(), b.X())
	y0, y1 := min(a.Y(), b.Y()), max(a.Y(), b.Y())
	return NullPolygon().Knot(flowers.P(x0, y0)).Knot(flowers.P(x1, y0)).
		Knot(flowers.P(x1, y1)).Knot(flowers.P(x0, y1)).Cycle()
}

// Hull creates a polygon from the given points, taken in order. For the
// control points of a Bézier curve this is its control polygon, which
// contains the curve.
func Hull(points ...flowers.Pair) *Polygon {
	b := NullPolygon()
	for _, p := range points {
		b.Knot(p)
	}
	return b.Cycle()
}

// N returns the number of knots over all contours.
func (pg *Polygon) N() int {
	n := 0
	for _, c := range pg.pg {
		n += len(c)
	}
	return n
}

// IsEmpty is a predicate: does pg have no knots at all?
func (pg *Polygon) IsEmpty() bool {
	return pg.N() == 0
}

// BBox returns the lower left and upper right corner of the bounding box.
// For an empty polygon both are the origin.
func (pg *Polygon) BBox() (flowers.Pair, flowers.Pair) {
	if pg.IsEmpty() {
		return flowers.Origin, flowers.Origin
	}
	r := pg.pg.BoundingBox()
	return pair(r.Min), pair(r.Max)
}

// Overlaps is a predicate: do the bounding boxes of pg and other intersect?
// Touching boxes overlap. Empty polygons never overlap anything.
func (pg *Polygon) Overlaps(other *Polygon) bool {
	if pg.IsEmpty() || other.IsEmpty() {
		return false
	}
	return pg.pg.BoundingBox().Overlaps(other.pg.BoundingBox())
}

// Contains is a predicate: does p lie inside pg? Contours are combined with
// the even-odd rule, so nested contours form holes.
func (pg *Polygon) Contains(p flowers.Pair) bool {
	inside := false
	for _, c := range pg.pg {
		if len(c) > 2 && c.Contains(pt(p)) {
			inside = !inside
		}
	}
	return inside
}

// Intersection returns the area common to pg and other.
func (pg *Polygon) Intersection(other *Polygon) *Polygon {
	return pg.construct(polyclip.INTERSECTION, other)
}

// Union returns the area covered by pg or other.
func (pg *Polygon) Union(other *Polygon) *Polygon {
	return pg.construct(polyclip.UNION, other)
}

func (pg *Polygon) construct(op polyclip.Op, other *Polygon) *Polygon {
	if pg.IsEmpty() || other.IsEmpty() {
		if op == polyclip.UNION {
			if pg.IsEmpty() {
				return other.clone()
			}
			return pg.clone()
		}
		return &Polygon{}
	}
	return &Polygon{pg: pg.pg.Construct(op, other.pg)}
}

// Transformed returns a copy of pg with every knot transformed by at.
func (pg *Polygon) Transformed(at flowers.AT) *Polygon {
	r := &Polygon{pg: make(polyclip.Polygon, 0, len(pg.pg))}
	for _, c := range pg.pg {
		tc := make(polyclip.Contour, len(c))
		for i, p := range c {
			tc[i] = pt(at.Transform(pair(p)))
		}
		r.pg.Add(tc)
	}
	return r
}

// Contours returns the number of contours.
func (pg *Polygon) Contours() int {
	return len(pg.pg)
}

// Knots returns the knots of contour i.
func (pg *Polygon) Knots(i int) []flowers.Pair {
	knots := make([]flowers.Pair, len(pg.pg[i]))
	for j, p := range pg.pg[i] {
		knots[j] = pair(p)
	}
	return knots
}

func (pg *Polygon) clone() *Polygon {
	return pg.Transformed(flowers.Identity())
}

// AsString returns a polygon as a (debugging) string, one cycle per contour.
func AsString(pg *Polygon) string {
	var buf bytes.Buffer
	for i, c := range pg.pg {
		if i > 0 {
			buf.WriteString(", ")
		}
		for _, p := range c {
			fmt.Fprintf(&buf, "(%.4g,%.4g) -- ", p.X, p.Y)
		}
		buf.WriteString("cycle")
	}
	if buf.Len() == 0 {
		return "<empty>"
	}
	return buf.String()
}

func pt(p flowers.Pair) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}

func pair(p polyclip.Point) flowers.Pair {
	return flowers.P(p.X, p.Y)
}
