/*
Package render draws flower fields onto a character cell surface.

The visible area is the square [-1,1]² around a view offset, stretched over
the whole surface. Growth directions are aspect corrected by the field, so
geometry appears undistorted as long as the field is resized with the
surface's dimensions in square units (see CellAspect).

Splines are sampled at a configurable number of inner points and drawn as
line strips of box drawing characters; splines whose control polygon lies
outside the visible area are skipped. Flowers are filled polygons, clipped
against the visible area.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/flowers"
	"github.com/npillmayer/flowers/plant"
	"github.com/npillmayer/flowers/polygon"
	"github.com/npillmayer/flowers/spline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'flowers.render'
func tracer() tracing.Trace {
	return tracing.Select("flowers.render")
}

// CellAspect is the height of a character cell in units of its width.
const CellAspect = 2

// DefaultSplitCount is the default number of inner sample points per spline.
const DefaultSplitCount = 8

// Surface is what a canvas draws on. tcell.Screen implements it.
type Surface interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Fill(r rune, style tcell.Style)
}

// Canvas renders plants onto a surface.
type Canvas struct {
	surface    Surface
	width      int
	height     int
	offset     flowers.Pair
	view       *polygon.Polygon
	splitCount int
	background colorful.Color
	samples    []flowers.Pair
	drawn      int // cells set since the last Clear
}

var _ plant.Renderer = (*Canvas)(nil)

// NewCanvas creates a canvas for s. A negative splitCount selects
// DefaultSplitCount.
func NewCanvas(s Surface, splitCount int) *Canvas {
	if splitCount < 0 {
		splitCount = DefaultSplitCount
	}
	c := &Canvas{
		surface:    s,
		splitCount: splitCount,
		samples:    make([]flowers.Pair, 0, splitCount+2),
	}
	c.SetView(flowers.Origin)
	c.Resize()
	return c
}

// Resize picks up the current size of the surface.
func (c *Canvas) Resize() {
	c.width, c.height = c.surface.Size()
	tracer().Debugf("canvas resized to %dx%d cells", c.width, c.height)
}

// SquareSize returns the surface dimensions in square units, suitable for
// resizing a field's direction table.
func (c *Canvas) SquareSize() (int, int) {
	return c.width, c.height * CellAspect
}

// SetView moves the visible area to be centered at offset.
func (c *Canvas) SetView(offset flowers.Pair) {
	c.offset = offset
	one := flowers.P(1, 1)
	c.view = polygon.Box(offset-one, offset+one)
}

// View returns the center of the visible area.
func (c *Canvas) View() flowers.Pair {
	return c.offset
}

// SetBackground sets the color the surface is cleared with. Flower
// outlines are blended towards it.
func (c *Canvas) SetBackground(bg colorful.Color) {
	c.background = bg
}

// Clear blanks the whole surface.
func (c *Canvas) Clear() {
	c.surface.Fill(' ', tcell.StyleDefault.Background(tcellColor(c.background)))
	c.drawn = 0
}

// Drawn is the number of cells set since the last Clear.
func (c *Canvas) Drawn() int {
	return c.drawn
}

// Render draws the visible geometry of one plant. Flowers are drawn on top
// of all splines.
func (c *Canvas) Render(color colorful.Color, splines []spline.Spline, fls []plant.Flower) {
	fg := tcellColor(color)
	culled := 0
	for _, s := range splines {
		if !c.Visible(s) {
			culled++
			continue
		}
		c.stroke(s, fg)
	}
	for _, f := range fls {
		c.flower(f, color)
	}
	if culled > 0 {
		tracer().Debugf("culled %d of %d splines", culled, len(splines))
	}
}

// Visible is a predicate: may any part of s appear in the visible area?
func (c *Canvas) Visible(s spline.Spline) bool {
	if s.EndT <= s.StartT {
		return false
	}
	return polygon.Hull(s.Points[:]...).Overlaps(c.view)
}

// Samples returns splitCount+2 points of s, evenly spaced in parameter over
// its visible range. The returned slice is reused by the next call.
func (c *Canvas) Samples(s spline.Spline) []flowers.Pair {
	c.samples = c.samples[:0]
	n := c.splitCount + 1
	for i := 0; i <= n; i++ {
		t := s.StartT + (s.EndT-s.StartT)*float64(i)/float64(n)
		c.samples = append(c.samples, s.Point(t))
	}
	return c.samples
}

// ToCell maps a point to the cell containing it. Cells outside the surface
// are returned as well.
func (c *Canvas) ToCell(p flowers.Pair) (int, int) {
	q := p - c.offset
	x := (q.X() + 1) / 2 * float64(c.width)
	y := (1 - q.Y()) / 2 * float64(c.height)
	return int(math.Floor(x)), int(math.Floor(y))
}

// ToPoint maps the center of cell (x,y) back to a point.
func (c *Canvas) ToPoint(x, y int) flowers.Pair {
	px := (float64(x)+0.5)/float64(c.width)*2 - 1
	py := 1 - (float64(y)+0.5)/float64(c.height)*2
	return flowers.P(px, py) + c.offset
}

func (c *Canvas) stroke(s spline.Spline, fg tcell.Color) {
	pts := c.Samples(s)
	n := len(pts) - 1
	for i := 0; i < n; i++ {
		w := s.Width(s.StartT + (s.EndT-s.StartT)*(float64(i)+0.5)/float64(n))
		c.segment(pts[i], pts[i+1], w, fg)
	}
}

// segment rasterizes the line from a to b by stepping cell by cell along
// its major axis.
func (c *Canvas) segment(a, b flowers.Pair, width float64, fg tcell.Color) {
	x0, y0 := c.ToCell(a)
	x1, y1 := c.ToCell(b)
	dx, dy := x1-x0, y1-y0
	heavy := width*float64(c.width)/2 >= 1
	r := glyph(dx, dy, heavy)
	style := tcell.StyleDefault.Foreground(fg).Background(tcellColor(c.background)).Bold(heavy)
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		c.set(x0, y0, r, style)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + int(math.Round(float64(dx*i)/float64(steps)))
		y := y0 + int(math.Round(float64(dy*i)/float64(steps)))
		c.set(x, y, r, style)
	}
}

// glyph selects a line drawing character for a step of (dx,dy) cells,
// y pointing down.
func glyph(dx, dy int, heavy bool) rune {
	sx := float64(dx)
	sy := float64(dy) * CellAspect
	switch {
	case dx == 0 && dy == 0:
		if heavy {
			return '●'
		}
		return '•'
	case math.Abs(sy) <= 0.5*math.Abs(sx):
		if heavy {
			return '━'
		}
		return '─'
	case math.Abs(sx) <= 0.5*math.Abs(sy):
		if heavy {
			return '┃'
		}
		return '│'
	case (dx > 0) != (dy > 0):
		return '╱'
	}
	return '╲'
}

func (c *Canvas) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.surface.SetContent(x, y, r, nil, style)
	c.drawn++
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
