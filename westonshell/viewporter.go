package westonshell

import (
	"github.com/neurlang/wayland/wl"
)

// Viewporter is a proxy for the wp_viewporter global
type Viewporter struct {
	wl.BaseProxy
}

func NewViewporter(ctx *wl.Context) *Viewporter {
	ret := new(Viewporter)
	ctx.Register(ret)
	return ret
}

// BindViewporter binds the wp_viewporter global advertised under name
func BindViewporter(registry *wl.Registry, name, version uint32) (*Viewporter, error) {
	viewporter := NewViewporter(registry.Context())
	if err := registry.Bind(name, "wp_viewporter", version, viewporter); err != nil {
		return nil, err
	}
	return viewporter, nil
}

func (p *Viewporter) Destroy() error {
	return p.Context().SendRequest(p, 0)
}

// GetViewport creates a viewport extension object for the given surface
func (p *Viewporter) GetViewport(surface *wl.Surface) (*Viewport, error) {
	ret := NewViewport(p.Context())
	return ret, p.Context().SendRequest(p, 1, ret, surface)
}

func (p *Viewporter) Dispatch(event *wl.Event) {}

// Viewport crops and scales the surface it was created for
type Viewport struct {
	wl.BaseProxy
}

func NewViewport(ctx *wl.Context) *Viewport {
	ret := new(Viewport)
	ctx.Register(ret)
	return ret
}

func (p *Viewport) Destroy() error {
	return p.Context().SendRequest(p, 0)
}

// SetSource picks the rectangle of the buffer the surface shows
// All values -1 disables cropping again
func (p *Viewport) SetSource(x, y, width, height float32) error {
	return p.Context().SendRequest(p, 1, x, y, width, height)
}

// SetDestination sets the surface size the source rectangle is scaled to
// Width and height of -1 disable scaling again
func (p *Viewport) SetDestination(width, height int32) error {
	return p.Context().SendRequest(p, 2, width, height)
}

func (p *Viewport) Dispatch(event *wl.Event) {}
