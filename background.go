package main

import (
	"github.com/neurlang/wayland/wl"
	"github.com/sirupsen/logrus"

	"github.com/mstarongithub/gayshell/apps"
	"github.com/mstarongithub/gayshell/menu"
	"github.com/mstarongithub/gayshell/render"
	"github.com/mstarongithub/gayshell/westonshell"
)

// BTN_LEFT from linux input-event-codes
const btnLeft = 0x110

// presenter pushes a finished frame to the compositor and arranges for
// onFrame to run once the compositor wants the next one
type presenter interface {
	present(buffer *Buffer, width, height int32, onFrame func()) error
}

// wlPresenter is the live implementation: attach, damage, frame callback, commit
// as one atomic commit
type wlPresenter struct {
	surface *wl.Surface
}

func (p *wlPresenter) present(buffer *Buffer, width, height int32, onFrame func()) error {
	if err := p.surface.Attach(buffer.wlBuffer, 0, 0); err != nil {
		return err
	}
	if err := p.surface.Damage(0, 0, width, height); err != nil {
		return err
	}
	callback, err := p.surface.Frame()
	if err != nil {
		return err
	}
	callback.AddDoneHandler(callbackDoneFunc(onFrame))
	return p.surface.Commit()
}

type callbackDoneFunc func()

func (f callbackDoneFunc) HandleCallbackDone(wl.CallbackDoneEvent) { f() }

// Background is the full-screen launcher surface of one output
// Redraws are throttled to one in-flight frame: while a frame callback is
// outstanding new draw reasons only set needsDraw, and the callback replays
// the one pending draw
type Background struct {
	surfaceBase
	output  *Output
	menu    *menu.Model
	painter *render.Painter
	pool    *BufferPool
	present presenter
	launch  func(apps.Entry)

	// Optional crop/scale handle for the surface, nil in tests
	viewport *westonshell.Viewport

	width  int32
	height int32

	frameOutstanding bool
	needsDraw        bool
}

func newBackground(
	output *Output,
	model *menu.Model,
	painter *render.Painter,
	pool *BufferPool,
	present presenter,
	cursor string,
	launch func(apps.Entry),
) *Background {
	return &Background{
		surfaceBase: newSurfaceBase(cursor),
		output:      output,
		menu:        model,
		painter:     painter,
		pool:        pool,
		present:     present,
		launch:      launch,
	}
}

// Configure adopts the size the compositor dictates and redraws
// The compositor resends configure on mode changes, so the old buffers turn
// stale here and age out of the pool
func (b *Background) Configure(edges uint32, width, height int32) {
	b.width = width
	b.height = height
	if b.viewport != nil {
		// Pin the surface size so the compositor scales the buffer if it
		// ever disagrees with the output
		if err := b.viewport.SetDestination(width, height); err != nil {
			logrus.WithError(err).Warningln("Failed to set the viewport destination")
		}
	}
	b.Draw()
}

// Draw renders one frame, or remembers that one is wanted if a frame
// callback is still outstanding
// A failed buffer allocation skips the cycle and leaves the previous frame
// on screen, the next input event will retry
func (b *Background) Draw() {
	if b.frameOutstanding {
		b.needsDraw = true
		return
	}
	b.needsDraw = false
	if b.width <= 0 || b.height <= 0 {
		return
	}

	stride := xrgbStride(b.width)
	buffer, err := b.pool.Acquire(b.width, b.height, stride)
	if err != nil {
		logrus.WithError(err).WithField("output", b.output.Name()).Errorln("No buffer for this frame, skipping draw")
		return
	}

	rowHeight, ascent := b.painter.RowMetrics()
	b.menu.SetViewport(float64(b.height))
	b.menu.SetMetrics(rowHeight, ascent)
	b.menu.ClampScroll()

	canvas := render.NewCanvas(buffer.Data(), int(b.width), int(b.height), int(stride))
	_, cursorY := b.CursorPos()
	b.painter.Paint(canvas, b.menu, cursorY)

	buffer.busy = true
	b.frameOutstanding = true
	if err := b.present.present(buffer, b.width, b.height, b.frameDone); err != nil {
		buffer.busy = false
		b.frameOutstanding = false
		logrus.WithError(err).WithField("output", b.output.Name()).Errorln("Failed to present frame")
	}
}

// frameDone runs when the compositor asks for the next frame
// Exactly one redraw happens here no matter how many draw reasons piled up
func (b *Background) frameDone() {
	b.frameOutstanding = false
	if b.needsDraw {
		b.Draw()
	}
}

func (b *Background) OnCursorEnter(*Seat)  { b.Draw() }
func (b *Background) OnCursorLeave(*Seat)  { b.Draw() }
func (b *Background) OnCursorMotion(*Seat) { b.Draw() }
func (b *Background) OnPointerFrame(*Seat) {}

// OnPointerButton launches the menu entry under the pointer on left button release
// Before the first draw no row metrics exist, so nothing is hittable
func (b *Background) OnPointerButton(_ *Seat, button, state uint32) {
	if button != btnLeft || state != wl.PointerButtonStateReleased {
		return
	}
	_, cursorY := b.CursorPos()
	idx, ok := b.menu.HitTest(cursorY)
	if !ok {
		return
	}
	b.launch(b.menu.Entry(idx))
}

// OnPointerAxis scrolls the menu on the vertical axis
// Clamping happens in the model, the redraw shows the result
func (b *Background) OnPointerAxis(_ *Seat, axis uint32, value float64) {
	if axis != wl.PointerAxisVerticalScroll {
		return
	}
	b.menu.ScrollBy(value)
	b.Draw()
}
