package editor

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/example/posterlayer/internal/gesture"
	"github.com/example/posterlayer/internal/geom"
	"github.com/example/posterlayer/internal/theme"
	"go.uber.org/zap"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

const (
	statusHeight = 20
	margin       = 16
)

// Run opens the editor window and blocks until it is closed.
func (s *Session) Run() { driver.Main(s.Main) }

// Main is the window event loop.
func (s *Session) Main(scr screen.Screen) {
	canvas := s.Canvas.Size.Pixels()
	width := canvas.X + 2*margin
	height := canvas.Y + 2*margin + statusHeight
	w, err := scr.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "PosterLayer"})
	if err != nil {
		s.log.Error("new window", zap.Error(err))
		return
	}
	defer w.Release()

	prev := s.changed
	s.changed = func() {
		if prev != nil {
			prev()
		}
		w.Send(paint.Event{})
	}
	defer func() { s.changed = prev }()

	rec := gesture.NewRecognizer(s.hit)
	rec.Origin = geom.FromImage(canvasOrigin(width, height, canvas))

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
			if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff {
				rec.Cancel()
			}
		case size.Event:
			width, height = e.WidthPx, e.HeightPx
			rec.Origin = geom.FromImage(canvasOrigin(width, height, canvas))
			w.Send(paint.Event{})
		case paint.Event:
			s.paint(scr, w, width, height)
		case mouse.Event:
			if rec.Handle(e) {
				w.Send(paint.Event{})
				continue
			}
			if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
				s.Canvas.Activate(nil)
				w.Send(paint.Event{})
			}
		case key.Event:
			if e.Direction == key.DirPress && e.Code == key.CodeQ && e.Modifiers == key.ModControl {
				return
			}
			if s.HandleKey(e) {
				w.Send(paint.Event{})
			}
		case error:
			s.log.Error("window", zap.Error(e))
		}
	}
}

func (s *Session) hit(p geom.Point) gesture.Target {
	if l := s.Canvas.LayerAt(p); l != nil {
		return l
	}
	return nil
}

// canvasOrigin centers the canvas above the status bar.
func canvasOrigin(width, height int, canvas image.Point) image.Point {
	x := (width - canvas.X) / 2
	y := (height - statusHeight - canvas.Y) / 2
	return image.Pt(max(x, 0), max(y, 0))
}

func (s *Session) paint(scr screen.Screen, w screen.Window, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	b, err := scr.NewBuffer(image.Point{width, height})
	if err != nil {
		s.log.Error("new buffer", zap.Error(err))
		return
	}
	defer b.Release()
	s.Frame(b.RGBA(), width, height)
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

// Frame draws the whole window contents into dst.
func (s *Session) Frame(dst *image.RGBA, width, height int) {
	th := s.Style.Theme
	if th == nil {
		th = theme.Default()
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(th.Background), image.Point{}, draw.Src)
	st := s.Style
	st.Theme = th
	st.Editing = true
	s.Canvas.Draw(dst, canvasOrigin(width, height, s.Canvas.Size.Pixels()), st)

	bar := image.Rect(0, height-statusHeight, width, height)
	draw.Draw(dst, bar, image.NewUniform(th.StatusBackground), image.Point{}, draw.Src)
	text := s.Status()
	if msg := s.Message(); msg != "" {
		text = msg
	}
	drawString(dst, image.Pt(6, height-6), text, th.StatusText)
}

func drawString(dst *image.RGBA, at image.Point, text string, col color.RGBA) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: basicfont.Face7x13, Dot: fixed.P(at.X, at.Y)}
	d.DrawString(text)
}
