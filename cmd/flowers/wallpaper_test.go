package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/npillmayer/flowers"
	"github.com/npillmayer/flowers/config"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWallpaper(t *testing.T) (*wallpaper, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(60, 20)
	t.Cleanup(s.Fini)
	cfg := config.Default()
	cfg.Seed = 3
	w, err := newWallpaper(s, cfg)
	require.NoError(t, err)
	return w, s
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestQuitKeys(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	w, _ := testWallpaper(t)
	assert.False(t, w.handleInput(key(tcell.KeyEscape, 0)))
	assert.False(t, w.handleInput(key(tcell.KeyCtrlC, 0)))
	assert.False(t, w.handleInput(key(tcell.KeyRune, 'q')))
	assert.True(t, w.handleInput(key(tcell.KeyRune, 'x')))
}

func TestScrolling(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	w, _ := testWallpaper(t)
	w.handleInput(key(tcell.KeyRight, 0))
	w.handleInput(key(tcell.KeyRight, 0))
	w.handleInput(key(tcell.KeyDown, 0))
	assert.True(t, w.offset.Equal(flowers.P(0.2, -0.1)))
	assert.Equal(t, w.offset, w.canvas.View())
	w.handleInput(key(tcell.KeyRune, '0'))
	assert.True(t, w.offset.Equal(flowers.Origin))
}

func TestResize(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	w, s := testWallpaper(t)
	// 60x20 cells are 60x40 square units
	assert.True(t, w.field.Directions().AspectRatio().Equal(flowers.P(40.0/60, 1)))
	s.SetSize(20, 30)
	w.handleInput(tcell.NewEventResize(20, 30))
	assert.True(t, w.field.Directions().AspectRatio().Equal(flowers.P(1, 20.0/60)))
}

func TestFramesAndReplant(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	w, _ := testWallpaper(t)
	for now := int64(0); now < 10000; now += 50 {
		w.frame(now)
	}
	assert.Greater(t, w.canvas.Drawn(), 0)
	assert.True(t, w.field.Plant(0).IsGrowing())
	w.handleInput(key(tcell.KeyRune, 'r'))
	assert.False(t, w.field.Plant(0).IsGrowing())
	w.frame(10050)
	assert.Equal(t, 1, w.field.Plant(0).Len())
}
