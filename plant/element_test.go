package plant

import (
	"errors"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/flowers"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionsSquare(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := NewDirections(100, 100)
	for i := 0; i < DirectionCount; i++ {
		assert.InDelta(t, 1.0, d.At(i).Length(), flowers.Epsilon, "direction %d", i)
	}
	assert.Equal(t, d.At(7), d.At(-1))
	assert.Equal(t, d.At(0), d.At(8))
	assert.InDelta(t, math.Sqrt(0.5), d.At(1).X(), flowers.Epsilon)
}

func TestDirectionsAspect(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := NewDirections(200, 100)
	assert.Equal(t, flowers.P(0.5, 1), d.AspectRatio())
	assert.True(t, d.At(0).Equal(flowers.P(0, 1)))
	assert.True(t, d.At(6).Equal(flowers.P(-0.5, 0)))
	assert.True(t, d.At(1).Equal(flowers.P(0.5*math.Sqrt(0.5), math.Sqrt(0.5))))
	d.Resize(0, 50)
	assert.Equal(t, flowers.P(1, 1), d.AspectRatio())
}

func TestDist(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pos := flowers.P(1, 1)
	east := flowers.P(1, 0)
	assert.InDelta(t, 0, Dist(pos, east, flowers.P(3, 1)), flowers.Epsilon)
	assert.InDelta(t, 0.5, Dist(pos, east, flowers.P(3, 1.5)), flowers.Epsilon)
	// behind: remaining distance plus the way backwards
	assert.InDelta(t, 4, Dist(pos, east, flowers.P(-1, 1)), flowers.Epsilon)
	// any heading ahead scores better than any heading away
	target := flowers.P(2, 3)
	ahead := Dist(pos, flowers.P(1, 1).Unit(), target)
	away := Dist(pos, flowers.P(0, -1), target)
	assert.Less(t, ahead, away)
	assert.GreaterOrEqual(t, away, pos.Dist(target))
	// direction length does not matter
	assert.InDelta(t, Dist(pos, east, target), Dist(pos, east.Scaled(0.3), target), flowers.Epsilon)
}

func TestRandomHelpers(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rnd := NewSource(4)
	for i := 0; i < 1000; i++ {
		f := randF(rnd, 0.3, 0.5)
		assert.True(t, f >= 0.3 && f < 0.5)
		n := randI(rnd, 500, 2000)
		assert.True(t, n >= 500 && n < 2000)
		p := randPoint(rnd, flowers.P(10, -10))
		assert.True(t, p.X() >= 9.5 && p.X() < 10.5 && p.Y() >= -10.5 && p.Y() < -9.5)
		s := randSign(rnd, 3)
		assert.True(t, s == 3 || s == -3)
	}
	assert.Equal(t, 7, randI(rnd, 7, 7))
}

func branchGrowth(r int) *growth {
	return testGrowth(newScript(nil, []int{r}))
}

func TestBranchFlowerAtFork(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := branchGrowth(0)
	var b Branch
	b.grow(g, flowers.Origin, 2, 1, 0.3, 0.3*0.27614237)
	require.Equal(t, 1, b.SplineCount())
	require.Equal(t, 1, b.FlowerCount())
	s := b.Spline(0)
	assert.Equal(t, flowers.Origin, s.Start())
	assert.Equal(t, g.params.BranchWidth, s.WidthStart)
	assert.Equal(t, 0.0, s.WidthEnd)
	// heads south-east, rotated by one step from east
	assert.True(t, s.Endpoint().Equal(g.dirs.At(3).Scaled(0.3)))
	f := b.Flower(0)
	assert.Equal(t, s.Endpoint(), f.Position)
	assert.InDelta(t, 1, f.RotationSin, flowers.Epsilon)
	assert.InDelta(t, 0, f.RotationCos, flowers.Epsilon)
}

func TestBranchSecondArc(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := branchGrowth(1)
	var b Branch
	b.grow(g, flowers.Origin, 0, -1, 0.2, 0.05)
	require.Equal(t, 2, b.SplineCount())
	require.Equal(t, 1, b.FlowerCount())
	w := g.params.BranchWidth
	assert.Equal(t, w/2, b.Spline(0).WidthEnd)
	assert.Equal(t, w/2, b.Spline(1).WidthStart)
	assert.Equal(t, 0.0, b.Spline(1).WidthEnd)
	assert.Equal(t, b.Spline(0).Endpoint(), b.Spline(1).Start())
	assert.Equal(t, b.Spline(1).Endpoint(), b.Flower(0).Position)
}

func TestBranchThirdArc(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := branchGrowth(2)
	var b Branch
	b.grow(g, flowers.P(1, 1), 4, 1, 0.2, 0.05)
	require.Equal(t, 3, b.SplineCount())
	require.Equal(t, 2, b.FlowerCount())
	fork := b.Spline(0).Endpoint()
	third := b.Spline(2)
	assert.Equal(t, fork, third.Start())
	assert.InDelta(t, 0.1, third.Start().Dist(third.Endpoint()), flowers.Epsilon)
	assert.Equal(t, third.Endpoint(), b.Flower(1).Position)
	// second flower is turned one step further than the first
	f0, f1 := b.Flower(0), b.Flower(1)
	a0 := math.Atan2(f0.RotationSin, f0.RotationCos)
	a1 := math.Atan2(f1.RotationSin, f1.RotationCos)
	assert.InDelta(t, math.Pi/4, math.Remainder(a1-a0, 2*math.Pi), flowers.Epsilon)
}

func TestBranchRegrowReplaces(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var b Branch
	b.grow(branchGrowth(2), flowers.Origin, 0, 1, 0.2, 0.05)
	b.reset()
	b.grow(branchGrowth(0), flowers.Origin, 0, 1, 0.2, 0.05)
	assert.Equal(t, 1, b.SplineCount())
	assert.Equal(t, 1, b.FlowerCount())
}

func TestBranchOverflowClamps(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if strict {
		t.Skip("overflow panics in debug builds")
	}
	var b Branch
	for i := 0; i < BranchSplineCapacity+2; i++ {
		b.nextSpline()
	}
	for i := 0; i < BranchFlowerCapacity+2; i++ {
		b.nextFlower()
	}
	assert.Equal(t, BranchSplineCapacity, b.SplineCount())
	assert.Equal(t, BranchFlowerCapacity, b.FlowerCount())
	var e RootElement
	for i := 0; i < RootSplineCapacity+1; i++ {
		e.nextSpline(0.1)
	}
	assert.Equal(t, RootSplineCapacity, e.Count())
}

func TestBranchFlowerGrowth(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var b Branch
	b.grow(branchGrowth(2), flowers.Origin, 0, 1, 0.2, 0.05)
	scale := DefaultParams().FlowerScale
	for _, c := range []struct{ t, scale float64 }{
		{0, 0}, {0.5, 0}, {0.75, scale / 2}, {1, scale}, {2, scale},
	} {
		splines, fls := b.Visible(nil, nil, c.t)
		assert.Len(t, splines, 3)
		require.Len(t, fls, 2)
		assert.InDelta(t, c.scale, fls[0].Scale, flowers.Epsilon, "t=%g", c.t)
		assert.Equal(t, 1.0, splines[0].EndT)
	}
}

// straight builds an element of four unit-length lines heading east.
func straight() *RootElement {
	e := &RootElement{}
	e.reset(0, 1000)
	pos := flowers.Origin
	for i := 0; i < 4; i++ {
		s := e.nextSpline(0.04)
		s.SetLine(pos, flowers.P(1, 0), 1)
		pos = s.Endpoint()
	}
	return e
}

func TestRootElementWindow(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := straight()
	assert.Equal(t, flowers.Origin, e.Start())
	assert.Equal(t, flowers.P(4, 0), e.End())

	splines, _ := e.Visible(nil, nil, 0, 0.5)
	require.Len(t, splines, 2)
	assert.Equal(t, [2]float64{0, 1}, [2]float64{splines[1].StartT, splines[1].EndT})

	splines, _ = e.Visible(nil, nil, 0, 0.375)
	require.Len(t, splines, 2)
	assert.InDelta(t, 0.5, splines[1].EndT, flowers.Epsilon)

	splines, _ = e.Visible(nil, nil, 0.125, 1)
	require.Len(t, splines, 4)
	assert.InDelta(t, 0.5, splines[0].StartT, flowers.Epsilon)
	assert.Equal(t, 1.0, splines[3].EndT)

	splines, _ = e.Visible(nil, nil, -1, 2)
	assert.Len(t, splines, 4)

	splines, _ = e.Visible(nil, nil, 0, 0)
	assert.Empty(t, splines)
}

func TestRootElementBranchFollowsSpline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := straight()
	e.Branch(1).grow(branchGrowth(0), e.Spline(1).Endpoint(), 2, 1, 0.2, 0.05)
	splines, fls := e.Visible(nil, nil, 0, 0.375) // spline 1 half grown
	require.Len(t, splines, 3)
	require.Len(t, fls, 1)
	assert.Equal(t, 0.0, fls[0].Scale)
	_, fls = e.Visible(nil, nil, 0, 0.4375) // spline 1 three quarters grown
	assert.InDelta(t, DefaultParams().FlowerScale/2, fls[0].Scale, flowers.Epsilon)
	_, fls = e.Visible(nil, nil, 0.25, 1) // spline 0 gone, spline 1 complete
	require.Len(t, fls, 1)
	assert.InDelta(t, DefaultParams().FlowerScale, fls[0].Scale, flowers.Epsilon)
}

func TestRootElementNextSplineClearsBranch(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := straight()
	e.Branch(0).grow(branchGrowth(2), flowers.Origin, 0, 1, 0.2, 0.05)
	e.reset(1000, 1000)
	e.nextSpline(0.04)
	assert.Equal(t, 0, e.Branch(0).SplineCount())
	assert.Equal(t, 1, e.Count())
}

func TestFlowerTransform(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var f Flower
	f.place(flowers.P(2, 3), 2) // quarter turn
	f.Scale = 0.1
	p := f.Transform().Transform(flowers.P(1, 0))
	assert.True(t, p.Equal(flowers.P(2, 3.1)), "got %v", p)
	f.place(flowers.P(2, 3), 10)
	assert.InDelta(t, 1, f.RotationSin, flowers.Epsilon)
	assert.Equal(t, 0.0, f.Scale)
}

func TestParamsValidate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.NoError(t, DefaultParams().Validate())
	broken := []func(*Params){
		func(p *Params) { p.Capacity = 0 },
		func(p *Params) { p.Capacity = 1 },
		func(p *Params) { p.DurationMin = 0 },
		func(p *Params) { p.DurationMax = p.DurationMin - 1 },
		func(p *Params) { p.InitialLengthMax = 0.1 },
		func(p *Params) { p.ArmLengthMin = -1 },
		func(p *Params) { p.BranchScale = 0 },
		func(p *Params) { p.BranchChance = 0 },
		func(p *Params) { p.RootWidth = -0.1 },
		func(p *Params) { p.FlowerScale = 2 },
	}
	for i, b := range broken {
		p := DefaultParams()
		b(&p)
		err := p.Validate()
		assert.True(t, errors.Is(err, ErrInvalidParams), "case %d: %v", i, err)
	}
}

func TestNewFieldErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := NewField(nil, DefaultParams(), nil)
	assert.ErrorIs(t, err, ErrEmptyPalette)
	p := DefaultParams()
	p.Capacity = 0
	_, err = NewField([]colorful.Color{{R: 1}}, p, nil)
	assert.ErrorIs(t, err, ErrInvalidParams)
	p.Capacity = 1
	_, err = NewField([]colorful.Color{{R: 1}}, p, nil)
	assert.ErrorIs(t, err, ErrInvalidParams, "a single slot cannot grow in and shrink away")
	assert.Panics(t, func() { MustNewField(nil, DefaultParams(), nil) })
}
