// Package westonshell carries client bindings for the weston_desktop_shell
// and wp_viewporter protocols, in the style of the generated core bindings
package westonshell

import (
	"sync"

	"github.com/neurlang/wayland/wl"
)

// Panel positions accepted by SetPanelPosition
const (
	PanelPositionTop uint32 = iota
	PanelPositionBottom
	PanelPositionLeft
	PanelPositionRight
)

// Cursor ids delivered by the grab_cursor event
const (
	CursorNone uint32 = iota
	CursorResizeTop
	CursorResizeBottom
	CursorArrow
	CursorResizeLeft
	CursorResizeTopLeft
	CursorResizeBottomLeft
	CursorMove
	CursorResizeRight
	CursorResizeTopRight
	CursorResizeBottomRight
	CursorBusy
)

type ShellConfigureEvent struct {
	Edges   uint32
	Surface *wl.Surface
	Width   int32
	Height  int32
}

type ShellConfigureHandler interface {
	HandleShellConfigure(ShellConfigureEvent)
}

type ShellPrepareLockSurfaceEvent struct{}

type ShellPrepareLockSurfaceHandler interface {
	HandleShellPrepareLockSurface(ShellPrepareLockSurfaceEvent)
}

type ShellGrabCursorEvent struct {
	Cursor uint32
}

type ShellGrabCursorHandler interface {
	HandleShellGrabCursor(ShellGrabCursorEvent)
}

// Shell is a proxy for the weston_desktop_shell global
type Shell struct {
	wl.BaseProxy
	mu                         sync.RWMutex
	configureHandlers          []ShellConfigureHandler
	prepareLockSurfaceHandlers []ShellPrepareLockSurfaceHandler
	grabCursorHandlers         []ShellGrabCursorHandler
}

func NewShell(ctx *wl.Context) *Shell {
	ret := new(Shell)
	ctx.Register(ret)
	return ret
}

// BindShell binds the weston_desktop_shell global advertised under name
func BindShell(registry *wl.Registry, name, version uint32) (*Shell, error) {
	shell := NewShell(registry.Context())
	if err := registry.Bind(name, "weston_desktop_shell", version, shell); err != nil {
		return nil, err
	}
	return shell, nil
}

// SetBackground hands surface to the compositor as the background of output
func (p *Shell) SetBackground(output *wl.Output, surface *wl.Surface) error {
	return p.Context().SendRequest(p, 0, output, surface)
}

// SetPanel hands surface to the compositor as the panel of output
func (p *Shell) SetPanel(output *wl.Output, surface *wl.Surface) error {
	return p.Context().SendRequest(p, 1, output, surface)
}

// SetLockSurface names the surface shown while the session is locked
func (p *Shell) SetLockSurface(surface *wl.Surface) error {
	return p.Context().SendRequest(p, 2, surface)
}

// Unlock tells the compositor to end the locked state
func (p *Shell) Unlock() error {
	return p.Context().SendRequest(p, 3)
}

// SetGrabSurface names the surface that receives pointer grabs
func (p *Shell) SetGrabSurface(surface *wl.Surface) error {
	return p.Context().SendRequest(p, 4, surface)
}

// DesktopReady tells the compositor the shell finished starting up,
// which ends the startup fade
func (p *Shell) DesktopReady() error {
	return p.Context().SendRequest(p, 5)
}

// SetPanelPosition picks the screen edge the compositor reserves for the panel
func (p *Shell) SetPanelPosition(position uint32) error {
	return p.Context().SendRequest(p, 6, position)
}

func (p *Shell) AddConfigureHandler(h ShellConfigureHandler) {
	if h != nil {
		p.mu.Lock()
		p.configureHandlers = append(p.configureHandlers, h)
		p.mu.Unlock()
	}
}

func (p *Shell) AddPrepareLockSurfaceHandler(h ShellPrepareLockSurfaceHandler) {
	if h != nil {
		p.mu.Lock()
		p.prepareLockSurfaceHandlers = append(p.prepareLockSurfaceHandlers, h)
		p.mu.Unlock()
	}
}

func (p *Shell) AddGrabCursorHandler(h ShellGrabCursorHandler) {
	if h != nil {
		p.mu.Lock()
		p.grabCursorHandlers = append(p.grabCursorHandlers, h)
		p.mu.Unlock()
	}
}

func (p *Shell) Dispatch(event *wl.Event) {
	switch event.Opcode {
	case 0:
		p.mu.RLock()
		handlers := p.configureHandlers
		p.mu.RUnlock()
		if len(handlers) > 0 {
			ev := ShellConfigureEvent{}
			ev.Edges = event.Uint32()
			proxy := event.Proxy(p.Context())
			if surface, ok := proxy.(*wl.Surface); ok {
				ev.Surface = surface
			}
			ev.Width = event.Int32()
			ev.Height = event.Int32()
			for _, h := range handlers {
				h.HandleShellConfigure(ev)
			}
		}
	case 1:
		p.mu.RLock()
		handlers := p.prepareLockSurfaceHandlers
		p.mu.RUnlock()
		for _, h := range handlers {
			h.HandleShellPrepareLockSurface(ShellPrepareLockSurfaceEvent{})
		}
	case 2:
		p.mu.RLock()
		handlers := p.grabCursorHandlers
		p.mu.RUnlock()
		if len(handlers) > 0 {
			ev := ShellGrabCursorEvent{Cursor: event.Uint32()}
			for _, h := range handlers {
				h.HandleShellGrabCursor(ev)
			}
		}
	}
}
