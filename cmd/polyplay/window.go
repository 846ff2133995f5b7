package main

import (
	"github.com/gogpu/polyplay"
	"github.com/gogpu/polyplay/canvas"
	"github.com/gogpu/polyplay/internal/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// wheelNotch converts ebiten wheel units to browser-style pixel deltas,
// which the exponential zoom model is tuned for.
const wheelNotch = 100

// runWindow opens a desktop window hosting the session. It blocks until the
// window closes.
func runWindow(cfg *config.Config) error {
	s, cv, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer s.Unmount()

	cv.SetStatus(statusLine(s))
	cancel := s.Subscribe(func(polyplay.Event) {
		cv.SetStatus(statusLine(s))
	})
	defer cancel()

	w := &hostWindow{session: s, canvas: cv, output: cfg.Output}
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(w)
}

type hostWindow struct {
	session *polyplay.Session
	canvas  *canvas.Canvas
	frame   *ebiten.Image
	output  string

	lastX, lastY int
	cursor       polyplay.Cursor
}

func (w *hostWindow) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	w.handleKeys()

	mx, my := ebiten.CursorPosition()
	ev := polyplay.PointerEvent{X: float64(mx), Y: float64(my)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.session.PointerDown(ev)
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && (mx != w.lastX || my != w.lastY) {
		w.session.PointerMove(ev)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		w.session.PointerUp(ev)
	}
	w.lastX, w.lastY = mx, my

	// ebiten reports positive dy when scrolling up; browsers report
	// negative deltas for the same gesture.
	if _, dy := ebiten.Wheel(); dy != 0 {
		w.session.Wheel(polyplay.WheelEvent{DeltaY: -dy * wheelNotch, X: ev.X, Y: ev.Y})
	}

	w.syncCursor()
	return nil
}

func (w *hostWindow) handleKeys() {
	s := w.session
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		s.EnableDraw()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.EnablePan()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		s.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		s.ZoomIn()
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		s.ZoomOut()
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit0):
		s.ResetView()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if err := w.canvas.SavePNG(w.output); err != nil {
			polyplay.Logger().Warn("polyplay: save failed", "path", w.output, "err", err)
		} else {
			polyplay.Logger().Info("polyplay: sketch saved", "path", w.output)
		}
	}
}

func (w *hostWindow) syncCursor() {
	c := w.session.Cursor()
	if c == w.cursor {
		return
	}
	w.cursor = c
	if c == polyplay.CursorMove {
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

func (w *hostWindow) Draw(screen *ebiten.Image) {
	cv := w.canvas
	dirty := cv.IsDirty()
	if err := cv.Render(); err != nil {
		return
	}

	cw, ch := cv.Size()
	if w.frame == nil || w.frame.Bounds().Dx() != cw || w.frame.Bounds().Dy() != ch {
		if w.frame != nil {
			w.frame.Deallocate()
		}
		w.frame = ebiten.NewImage(cw, ch)
		dirty = true
	}
	if dirty {
		w.frame.WritePixels(cv.Context().ResizeTarget().Data())
	}
	screen.DrawImage(w.frame, nil)
}

// Layout keeps the canvas the size of the window.
func (w *hostWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	if cw, ch := w.canvas.Size(); cw != outsideWidth || ch != outsideHeight {
		w.session.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
