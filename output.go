package main

import (
	"strings"

	"github.com/neurlang/wayland/wl"
	"github.com/sirupsen/logrus"
)

// displayMode is one advertised mode of an output
type displayMode struct {
	width   int32
	height  int32
	refresh int32
	current bool
}

// Output tracks one display advertised by the compositor
// Geometry and modes stream in first, the done event marks the set complete.
// Provisioning of the background happens on done and only once, later done
// events (mode changes, hotplug updates) leave the existing background alone
type Output struct {
	wlOutput *wl.Output

	vendor string
	model  string
	scale  int32
	width  int32
	height int32
	modes  []displayMode

	background *Background
	provision  func(*Output)
}

func newOutput(wlOutput *wl.Output, provision func(*Output)) *Output {
	return &Output{wlOutput: wlOutput, scale: 1, provision: provision}
}

// Name is a human readable output name built from make and model
func (o *Output) Name() string {
	return strings.TrimSpace(o.vendor + " " + o.model)
}

func (o *Output) HandleOutputGeometry(ev wl.OutputGeometryEvent) {
	o.vendor = ev.Make
	o.model = ev.Model
}

func (o *Output) HandleOutputMode(ev wl.OutputModeEvent) {
	o.modes = append(o.modes, displayMode{
		width:   ev.Width,
		height:  ev.Height,
		refresh: ev.Refresh,
		current: ev.Flags&wl.OutputModeCurrent != 0,
	})
	if ev.Flags&wl.OutputModeCurrent != 0 {
		o.width = ev.Width
		o.height = ev.Height
	}
}

func (o *Output) HandleOutputScale(ev wl.OutputScaleEvent) {
	o.scale = ev.Factor
}

func (o *Output) HandleOutputDone(ev wl.OutputDoneEvent) {
	if o.background != nil || o.provision == nil {
		return
	}
	logrus.WithFields(logrus.Fields{
		"output": o.Name(),
		"width":  o.width,
		"height": o.height,
	}).Debugln("Output atlas complete")
	o.provision(o)
}
