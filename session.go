package main

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/neurlang/wayland/wl"
	"github.com/neurlang/wayland/wlclient"
	"github.com/neurlang/wayland/wlcursor"
	"github.com/neurlang/wayland/xdg"
	"github.com/sirupsen/logrus"

	"github.com/mstarongithub/gayshell/apps"
	"github.com/mstarongithub/gayshell/config"
	"github.com/mstarongithub/gayshell/menu"
	"github.com/mstarongithub/gayshell/render"
	"github.com/mstarongithub/gayshell/westonshell"
)

// Versions this client knows how to speak
// Compositors may advertise more, the bind never exceeds these
const (
	maxCompositorVersion = 5
	maxSeatVersion       = 5
	maxShmVersion        = 1
	maxOutputVersion     = 4
	maxShellVersion      = 1
	maxWmBaseVersion     = 4
	maxViewporterVersion = 1
)

// Session is the one connection to the compositor and everything hanging off it
// All Wayland traffic runs on the single dispatch goroutine, the only
// cross-goroutine state is the stopping flag the repl flips
type Session struct {
	conf     *config.Config
	entries  []apps.Entry
	launcher *apps.Launcher
	painter  *render.Painter

	display    *wl.Display
	registry   *wl.Registry
	compositor *wl.Compositor
	shm        *wl.Shm
	shell      *westonshell.Shell
	wmBase     *xdg.WmBase
	viewporter *westonshell.Viewporter

	cursorTheme   *wlcursor.Theme
	cursorSurface *wl.Surface
	currentCursor string

	outputs  []*Output
	seats    []*Seat
	surfaces map[wl.ProxyId]DesktopSurface

	// provision runs once per output when its first done event lands
	// Tool mode clears it to stay surface-free
	provision func(*Output)

	// Set while binding an output; its geometry only arrives after another roundtrip
	needRoundtrip bool
	stopping      atomic.Bool
}

func NewSession(conf *config.Config, entries []apps.Entry, launcher *apps.Launcher, painter *render.Painter) *Session {
	s := &Session{
		conf:     conf,
		entries:  entries,
		launcher: launcher,
		painter:  painter,
		surfaces: map[wl.ProxyId]DesktopSurface{},
	}
	s.provision = s.provisionBackground
	return s
}

// Connect dials the compositor and runs global discovery
// Outputs bound during a roundtrip answer with their geometry only on the
// next one, so the roundtrip repeats until a pass binds nothing new
func (s *Session) Connect() error {
	display, err := wlclient.DisplayConnect(nil)
	if err != nil {
		return fmt.Errorf("failed to connect to the wayland display: %w", err)
	}
	s.display = display
	registry, err := display.GetRegistry()
	if err != nil {
		return fmt.Errorf("failed to get the registry: %w", err)
	}
	s.registry = registry
	registry.AddGlobalHandler(s)

	s.needRoundtrip = true
	for s.needRoundtrip {
		s.needRoundtrip = false
		if err := wlclient.DisplayRoundtrip(display); err != nil {
			return fmt.Errorf("discovery roundtrip failed: %w", err)
		}
	}
	return nil
}

// RequireShellGlobals verifies everything the shell needs came up during discovery
// Core globals get checked too, a compositor without them is broken anyway
func (s *Session) RequireShellGlobals() error {
	switch {
	case s.compositor == nil:
		return errors.New("compositor never advertised wl_compositor")
	case s.shm == nil:
		return errors.New("compositor never advertised wl_shm")
	case s.shell == nil:
		return errors.New("compositor never advertised weston_desktop_shell, not running under weston's shell plugin?")
	case s.wmBase == nil:
		return errors.New("compositor never advertised xdg_wm_base")
	case s.viewporter == nil:
		return errors.New("compositor never advertised wp_viewporter")
	}
	return nil
}

// AnnounceReady tells the compositor where the panel goes and that startup
// is finished, which ends weston's startup fade
func (s *Session) AnnounceReady() error {
	if err := s.shell.SetPanelPosition(panelPositionCode(s.conf.PanelPosition)); err != nil {
		return fmt.Errorf("failed to set the panel position: %w", err)
	}
	if err := s.shell.DesktopReady(); err != nil {
		return fmt.Errorf("failed to announce desktop readiness: %w", err)
	}
	logrus.Infoln("Desktop announced as ready")
	return nil
}

func panelPositionCode(position string) uint32 {
	switch position {
	case "bottom":
		return westonshell.PanelPositionBottom
	case "left":
		return westonshell.PanelPositionLeft
	case "right":
		return westonshell.PanelPositionRight
	default:
		return westonshell.PanelPositionTop
	}
}

// HandleRegistryGlobal binds every global the shell cares about as it appears
func (s *Session) HandleRegistryGlobal(ev wl.RegistryGlobalEvent) {
	logrus.WithFields(logrus.Fields{
		"interface": ev.Interface,
		"version":   ev.Version,
	}).Debugln("Global advertised")
	switch ev.Interface {
	case "wl_compositor":
		s.compositor = wlclient.RegistryBindCompositorInterface(s.registry, ev.Name, capVersion(ev.Version, maxCompositorVersion))
		surface, err := s.compositor.CreateSurface()
		if err != nil {
			logrus.WithError(err).Errorln("Failed to create the cursor surface")
			return
		}
		s.cursorSurface = surface
	case "wl_shm":
		s.shm = wlclient.RegistryBindShmInterface(s.registry, ev.Name, capVersion(ev.Version, maxShmVersion))
		s.loadCursorTheme()
	case "wl_seat":
		wlSeat := wlclient.RegistryBindSeatInterface(s.registry, ev.Name, capVersion(ev.Version, maxSeatVersion))
		seat := newSeat(s, wlSeat)
		wlSeat.AddCapabilitiesHandler(seat)
		s.seats = append(s.seats, seat)
	case "wl_output":
		wlOutput := wlclient.RegistryBindOutputInterface(s.registry, ev.Name, capVersion(ev.Version, maxOutputVersion))
		output := newOutput(wlOutput, s.provision)
		wlOutput.AddGeometryHandler(output)
		wlOutput.AddModeHandler(output)
		wlOutput.AddScaleHandler(output)
		wlOutput.AddDoneHandler(output)
		s.outputs = append(s.outputs, output)
		s.needRoundtrip = true
	case "weston_desktop_shell":
		shell, err := westonshell.BindShell(s.registry, ev.Name, capVersion(ev.Version, maxShellVersion))
		if err != nil {
			logrus.WithError(err).Errorln("Failed to bind weston_desktop_shell")
			return
		}
		shell.AddConfigureHandler(s)
		shell.AddPrepareLockSurfaceHandler(s)
		shell.AddGrabCursorHandler(s)
		s.shell = shell
	case "xdg_wm_base":
		wmBase := xdg.NewWmBase(s.display.Context())
		if err := s.registry.Bind(ev.Name, ev.Interface, capVersion(ev.Version, maxWmBaseVersion), wmBase); err != nil {
			logrus.WithError(err).Errorln("Failed to bind xdg_wm_base")
			return
		}
		wmBase.AddPingHandler(s)
		s.wmBase = wmBase
	case "wp_viewporter":
		viewporter, err := westonshell.BindViewporter(s.registry, ev.Name, capVersion(ev.Version, maxViewporterVersion))
		if err != nil {
			logrus.WithError(err).Errorln("Failed to bind wp_viewporter")
			return
		}
		s.viewporter = viewporter
	}
}

func capVersion(advertised, supported uint32) uint32 {
	if advertised < supported {
		return advertised
	}
	return supported
}

// HandleWmBasePing answers the compositor's liveness check
func (s *Session) HandleWmBasePing(ev xdg.WmBasePingEvent) {
	s.wmBase.Pong(ev.Serial)
}

// HandleShellConfigure routes a shell configure to the surface it names
func (s *Session) HandleShellConfigure(ev westonshell.ShellConfigureEvent) {
	surface := s.desktopSurface(ev.Surface)
	if surface == nil {
		logrus.Warningln("Configure for a surface this shell never made")
		return
	}
	surface.Configure(ev.Edges, ev.Width, ev.Height)
}

// HandleShellPrepareLockSurface answers with an immediate unlock
// This shell has no lock screen, blocking the session forever would be worse
func (s *Session) HandleShellPrepareLockSurface(westonshell.ShellPrepareLockSurfaceEvent) {
	logrus.Debugln("Lock requested, unlocking right away")
	if err := s.shell.Unlock(); err != nil {
		logrus.WithError(err).Errorln("Failed to unlock the session")
	}
}

// HandleShellGrabCursor is ignored, there is no grab surface to show cursors on
func (s *Session) HandleShellGrabCursor(westonshell.ShellGrabCursorEvent) {}

// desktopSurface finds the shell-side object behind a wl_surface
func (s *Session) desktopSurface(surface *wl.Surface) DesktopSurface {
	if surface == nil {
		return nil
	}
	return s.surfaces[surface.Id()]
}

// provisionBackground gives a fully-announced output its background surface
func (s *Session) provisionBackground(output *Output) {
	// Globals land a full roundtrip before the first output done, but a
	// broken compositor shouldn't crash us
	if s.compositor == nil || s.shell == nil || s.viewporter == nil {
		logrus.WithField("output", output.Name()).Errorln("Output announced before the shell globals")
		return
	}
	surface, err := s.compositor.CreateSurface()
	if err != nil {
		logrus.WithError(err).WithField("output", output.Name()).Errorln("Failed to create a background surface")
		return
	}
	background := newBackground(
		output,
		menu.New(s.entries, s.conf.MenuPadding),
		s.painter,
		newBufferPool(&shmAllocator{shm: s.shm}),
		&wlPresenter{surface: surface},
		s.conf.CursorName,
		s.launcher.Launch,
	)
	if viewport, err := s.viewporter.GetViewport(surface); err != nil {
		logrus.WithError(err).Warningln("Failed to get a viewport for the background")
	} else {
		background.viewport = viewport
	}
	output.background = background
	s.surfaces[surface.Id()] = background
	if err := s.shell.SetBackground(output.wlOutput, surface); err != nil {
		logrus.WithError(err).WithField("output", output.Name()).Errorln("Failed to hand over the background surface")
		return
	}
	logrus.WithFields(logrus.Fields{
		"output": output.Name(),
		"width":  output.width,
		"height": output.height,
	}).Infoln("Background provisioned")
}

// Run dispatches compositor events until the connection dies or Stop is called
func (s *Session) Run() error {
	for {
		if err := wlclient.DisplayDispatch(s.display); err != nil {
			if s.stopping.Load() {
				logrus.Debugln("Dispatch ended by shutdown")
				return nil
			}
			return fmt.Errorf("failed to dispatch display events: %w", err)
		}
	}
}

// Stop marks the session as shutting down and severs the connection,
// which unblocks the dispatch loop
func (s *Session) Stop() {
	s.stopping.Store(true)
	wlclient.DisplayDisconnect(s.display)
}

// Disconnect drops the compositor connection
func (s *Session) Disconnect() {
	if s.stopping.Load() {
		return
	}
	wlclient.DisplayDisconnect(s.display)
}
