package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/flowers"
	"github.com/npillmayer/flowers/plant"
	"github.com/npillmayer/flowers/polygon"
)

// Flower sprite geometry, in units of a flower's scale.
const (
	petalCount    = 5
	petalDistance = 1.7 / 3 // distance of petal centers from the flower center
	petalRadius   = 0.4
	centerRadius  = 0.35
	outlineGrowth = 1.3 // outline size relative to the filled sprite
	diskCorners   = 12
)

// sprite is the unit flower: center disk first, then the petals.
var sprite = makeSprite(1)

// outline is the sprite's halo, drawn first in a dimmer color.
var outline = makeSprite(outlineGrowth)

func makeSprite(grow float64) []*polygon.Polygon {
	disks := []*polygon.Polygon{disk(flowers.Origin, centerRadius*grow)}
	for i := 0; i < petalCount; i++ {
		a := 2 * math.Pi * float64(i) / petalCount
		center := flowers.P(math.Cos(a), math.Sin(a)).Scaled(petalDistance)
		disks = append(disks, disk(center, petalRadius*grow))
	}
	return disks
}

func disk(center flowers.Pair, r float64) *polygon.Polygon {
	b := polygon.NullPolygon()
	for i := 0; i < diskCorners; i++ {
		a := 2 * math.Pi * float64(i) / diskCorners
		b.Knot(center + flowers.P(math.Cos(a), math.Sin(a)).Scaled(r))
	}
	return b.Cycle()
}

// flower draws f: its outline at half intensity, then the filled sprite,
// then a marker in the center cell, which keeps tiny flowers visible.
func (c *Canvas) flower(f plant.Flower, color colorful.Color) {
	if f.Scale <= 0 {
		return
	}
	at := f.Transform()
	bg := tcellColor(c.background)
	dim := tcell.StyleDefault.Foreground(tcellColor(color.BlendLab(c.background, 0.5))).Background(bg)
	full := tcell.StyleDefault.Foreground(tcellColor(color)).Background(bg)
	for _, pg := range outline {
		c.fill(pg.Transformed(at), '▒', dim)
	}
	for _, pg := range sprite {
		c.fill(pg.Transformed(at), '█', full)
	}
	x, y := c.ToCell(f.Position)
	c.set(x, y, '✿', full.Bold(true))
}

// fill sets every cell whose center lies inside pg, after clipping pg to the
// visible area.
func (c *Canvas) fill(pg *polygon.Polygon, r rune, style tcell.Style) {
	if !pg.Overlaps(c.view) {
		return
	}
	clipped := pg.Intersection(c.view)
	if clipped.IsEmpty() {
		return
	}
	lo, hi := clipped.BBox()
	x0, y0 := c.ToCell(flowers.P(lo.X(), hi.Y()))
	x1, y1 := c.ToCell(flowers.P(hi.X(), lo.Y()))
	for y := max(y0, 0); y <= min(y1, c.height-1); y++ {
		for x := max(x0, 0); x <= min(x1, c.width-1); x++ {
			if clipped.Contains(c.ToPoint(x, y)) {
				c.set(x, y, r, style)
			}
		}
	}
}
