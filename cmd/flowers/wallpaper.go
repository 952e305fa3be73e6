package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/npillmayer/flowers"
	"github.com/npillmayer/flowers/config"
	"github.com/npillmayer/flowers/plant"
	"github.com/npillmayer/flowers/render"
	"github.com/npillmayer/schuko/tracing"
)

// scrollStep is the view offset change per arrow key press.
const scrollStep = 0.1

// wallpaper animates a flower field on a terminal screen.
type wallpaper struct {
	screen tcell.Screen
	field  *plant.Field
	canvas *render.Canvas
	offset flowers.Pair
	start  time.Time
	fps    int
}

func newWallpaper(screen tcell.Screen, cfg *config.Config) (*wallpaper, error) {
	field, err := cfg.Field()
	if err != nil {
		return nil, err
	}
	w := &wallpaper{
		screen: screen,
		field:  field,
		canvas: render.NewCanvas(screen, cfg.Render.SplitCount),
		start:  time.Now(),
		fps:    cfg.Render.FPS,
	}
	w.handleResize()
	return w, nil
}

// handleInput reacts to a terminal event. It returns false if the user
// asked to quit.
func (w *wallpaper) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			w.scroll(flowers.P(-scrollStep, 0))
		case tcell.KeyRight:
			w.scroll(flowers.P(scrollStep, 0))
		case tcell.KeyUp:
			w.scroll(flowers.P(0, scrollStep))
		case tcell.KeyDown:
			w.scroll(flowers.P(0, -scrollStep))
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'r':
				tracing.Select("flowers").Infof("replanting")
				w.field.Reset()
			case '0':
				w.scroll(-w.offset)
			}
		}
	case *tcell.EventResize:
		w.screen.Sync()
		w.handleResize()
	}
	return true
}

func (w *wallpaper) handleResize() {
	w.canvas.Resize()
	w.field.Resize(w.canvas.SquareSize())
}

func (w *wallpaper) scroll(delta flowers.Pair) {
	w.offset += delta
	w.canvas.SetView(w.offset)
}

// frame advances the field to now (milliseconds since start) and shows it.
func (w *wallpaper) frame(now int64) {
	w.field.Tick(now, w.offset)
	w.canvas.Clear()
	w.field.Draw(w.canvas)
	w.screen.Show()
}

func (w *wallpaper) run() {
	ticker := time.NewTicker(time.Second / time.Duration(w.fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := w.screen.PollEvent()
			if ev == nil { // screen finalized
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !w.handleInput(ev) {
				return
			}
		case <-ticker.C:
			w.frame(time.Since(w.start).Milliseconds())
		}
	}
}
