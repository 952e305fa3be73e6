package plant

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/flowers"
	"github.com/npillmayer/flowers/spline"
)

// Renderer consumes the visible geometry of a plant. The slices are valid
// for the duration of the call only.
type Renderer interface {
	Render(color colorful.Color, splines []spline.Spline, flowers []Flower)
}

// Field is a set of independently animated plants, one per palette color.
// A field is not safe for concurrent use; it is meant to be driven by a
// single render loop.
type Field struct {
	g       *growth
	plants  []*Plant
	palette []colorful.Color
	splines []spline.Spline // per-plant output buffers, reused between calls
	flowers []Flower
}

// NewField creates a field with one plant per palette color. The direction
// table starts out for a square surface; call Resize once the surface size
// is known. If rnd is nil, a time-seeded source is used.
func NewField(palette []colorful.Color, params Params, rnd Source) (*Field, error) {
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = NewSource(uint64(time.Now().UnixNano()))
	}
	f := &Field{
		g: &growth{
			dirs:   NewDirections(0, 0),
			rnd:    rnd,
			params: params,
		},
		palette: append([]colorful.Color(nil), palette...),
	}
	f.plants = make([]*Plant, len(palette))
	for i := range f.plants {
		f.plants[i] = newPlant(f.g)
	}
	perElement := RootSplineCapacity * (1 + BranchSplineCapacity)
	f.splines = make([]spline.Spline, 0, params.Capacity*perElement)
	f.flowers = make([]Flower, 0, params.Capacity*RootSplineCapacity*BranchFlowerCapacity)
	tracer().Infof("field created with %d plants", len(f.plants))
	return f, nil
}

// MustNewField is like NewField, but panics on error.
func MustNewField(palette []colorful.Color, params Params, rnd Source) *Field {
	f, err := NewField(palette, params, rnd)
	if err != nil {
		panic(err)
	}
	return f
}

// Resize adapts the direction basis to a new surface size. Geometry grown
// earlier is kept, new growth uses the new basis.
func (f *Field) Resize(width, height int) {
	f.g.dirs.Resize(width, height)
}

// Reset makes all plants start over on their next advance.
func (f *Field) Reset() {
	for _, p := range f.plants {
		p.Reset()
	}
}

// Tick advances every plant to time now (milliseconds).
func (f *Field) Tick(now int64, offset flowers.Pair) {
	for _, p := range f.plants {
		p.Advance(now, offset)
	}
}

// Advance advances plant i to time now.
func (f *Field) Advance(i int, now int64, offset flowers.Pair) {
	f.plant(i).Advance(now, offset)
}

// CollectVisible appends the geometry of plant i visible at the time of its
// latest advance. Repeated calls without advancing yield identical results.
func (f *Field) CollectVisible(i int, splines []spline.Spline, fls []Flower) ([]spline.Spline, []Flower) {
	p := f.plant(i)
	return p.Visible(splines, fls, p.Now())
}

// Draw hands the visible geometry of every plant, tagged with the plant's
// color, to r.
func (f *Field) Draw(r Renderer) {
	for i := range f.plants {
		f.splines, f.flowers = f.CollectVisible(i, f.splines[:0], f.flowers[:0])
		r.Render(f.palette[i], f.splines, f.flowers)
	}
}

// Len is the number of plants.
func (f *Field) Len() int {
	return len(f.plants)
}

// Plant returns plant i.
func (f *Field) Plant(i int) *Plant {
	return f.plant(i)
}

// Color returns the color of plant i.
func (f *Field) Color(i int) colorful.Color {
	return f.palette[i]
}

// Directions returns the field's direction table.
func (f *Field) Directions() *Directions {
	return f.g.dirs
}

func (f *Field) plant(i int) *Plant {
	if i < 0 || i >= len(f.plants) {
		panic(fmt.Sprintf("plant index %d out of range [0,%d)", i, len(f.plants)))
	}
	return f.plants[i]
}
