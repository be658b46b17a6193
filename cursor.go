package main

import (
	"github.com/neurlang/wayland/wlcursor"
	"github.com/sirupsen/logrus"
)

// loadCursorTheme loads the configured cursor theme over the shm global
// A missing theme is not fatal, the shell just runs without a visible cursor
// change (the compositor default stays)
func (s *Session) loadCursorTheme() {
	theme, err := wlcursor.LoadTheme(uint32(s.conf.CursorSize), s.shm)
	if err != nil {
		logrus.WithError(err).Warningln("Failed to load cursor theme, cursor stays untouched")
		return
	}
	s.cursorTheme = theme
}

// setCursor shows the named cursor on the given seat
// Repeat calls with the name already shown are dropped, a pointer leave
// resets that memory via invalidateCursor
func (s *Session) setCursor(name string, seat *Seat, serial uint32) {
	if s.cursorTheme == nil || s.cursorSurface == nil || seat.pointer == nil {
		return
	}
	if s.currentCursor == name {
		return
	}
	cursor, err := s.cursorTheme.GetCursor(name)
	if err != nil {
		logrus.WithError(err).WithField("cursor", name).Debugln("Cursor not in theme")
		return
	}
	images := cursor.Images
	if len(images) == 0 {
		return
	}
	image := images[0]
	buffer := image.GetBuffer()
	if err := s.cursorSurface.Attach(buffer, 0, 0); err != nil {
		logrus.WithError(err).Errorln("Failed to attach cursor buffer")
		return
	}
	width, height := image.GetWidth(), image.GetHeight()
	if err := s.cursorSurface.Damage(0, 0, int32(width), int32(height)); err != nil {
		logrus.WithError(err).Errorln("Failed to damage cursor surface")
		return
	}
	if err := s.cursorSurface.Commit(); err != nil {
		logrus.WithError(err).Errorln("Failed to commit cursor surface")
		return
	}
	hotX, hotY := image.GetHotspotX(), image.GetHotspotY()
	if err := seat.pointer.SetCursor(serial, s.cursorSurface, int32(hotX), int32(hotY)); err != nil {
		logrus.WithError(err).Errorln("Failed to set pointer cursor")
		return
	}
	s.currentCursor = name
}

// invalidateCursor forgets the shown cursor name so the next enter sets it again
func (s *Session) invalidateCursor() {
	s.currentCursor = ""
}
