package main

import (
	"github.com/neurlang/wayland/wl"
	"github.com/sirupsen/logrus"
)

// Seat owns the pointer of one wl_seat and routes its events to whichever
// desktop surface currently has pointer focus
type Seat struct {
	session *Session
	wlSeat  *wl.Seat
	pointer *wl.Pointer
	focus   DesktopSurface
}

func newSeat(session *Session, wlSeat *wl.Seat) *Seat {
	return &Seat{session: session, wlSeat: wlSeat}
}

func (s *Seat) HandleSeatCapabilities(ev wl.SeatCapabilitiesEvent) {
	if ev.Capabilities&wl.SeatCapabilityPointer == 0 || s.pointer != nil {
		return
	}
	pointer, err := s.wlSeat.GetPointer()
	if err != nil {
		logrus.WithError(err).Errorln("Failed to get pointer for seat")
		return
	}
	s.pointer = pointer
	pointer.AddEnterHandler(s)
	pointer.AddLeaveHandler(s)
	pointer.AddMotionHandler(s)
	pointer.AddButtonHandler(s)
	pointer.AddAxisHandler(s)
	pointer.AddFrameHandler(s)
	logrus.Debugln("Pointer attached to seat")
}

func (s *Seat) HandlePointerEnter(ev wl.PointerEnterEvent) {
	surface := s.session.desktopSurface(ev.Surface)
	if surface == nil {
		return
	}
	s.focus = surface
	if name := surface.Cursor(); name != "" {
		s.session.setCursor(name, s, ev.Serial)
	}
	surface.SetCursorPos(float64(ev.SurfaceX), float64(ev.SurfaceY))
	surface.OnCursorEnter(s)
}

func (s *Seat) HandlePointerLeave(ev wl.PointerLeaveEvent) {
	if surface := s.session.desktopSurface(ev.Surface); surface != nil {
		surface.ClearCursorPos()
		surface.OnCursorLeave(s)
	}
	s.focus = nil
	// The next enter has to re-set the cursor no matter its name
	s.session.invalidateCursor()
}

func (s *Seat) HandlePointerMotion(ev wl.PointerMotionEvent) {
	if s.focus == nil {
		return
	}
	s.focus.SetCursorPos(float64(ev.SurfaceX), float64(ev.SurfaceY))
	s.focus.OnCursorMotion(s)
}

func (s *Seat) HandlePointerButton(ev wl.PointerButtonEvent) {
	if s.focus == nil {
		return
	}
	s.focus.OnPointerButton(s, ev.Button, ev.State)
}

func (s *Seat) HandlePointerAxis(ev wl.PointerAxisEvent) {
	if s.focus == nil {
		return
	}
	s.focus.OnPointerAxis(s, ev.Axis, float64(ev.Value))
}

func (s *Seat) HandlePointerFrame(ev wl.PointerFrameEvent) {
	if s.focus == nil {
		return
	}
	s.focus.OnPointerFrame(s)
}
