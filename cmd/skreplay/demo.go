package main

import (
	"fmt"

	"github.com/agiangrant/simplekit/event"
	"github.com/agiangrant/simplekit/retained"
)

// demo is the widget tree scripts are replayed against. Widgets are tagged so
// script authors can find them in the geometry dump.
type demo struct {
	root   *retained.Widget
	status *retained.Widget
	input  *retained.Widget
	volume *retained.Widget
	mute   *retained.Widget
}

func buildDemo() *demo {
	d := &demo{}

	d.status = retained.Label("ready", "text-sm text-slate-700").WithTag("status")
	d.input = retained.Textfield("", "").WithTag("input").WithFill(1, 0)

	ok := retained.Button("OK", "bg-blue-500 text-white hover:bg-blue-700").WithTag("ok")
	ok.On(event.Action, func(e event.Event) bool {
		d.status.SetText(fmt.Sprintf("submitted %q", d.input.Text()))
		return true
	})
	clear := retained.Button("Clear", "").WithTag("clear")
	clear.On(event.Action, func(e event.Event) bool {
		d.input.SetText("")
		d.status.SetText("cleared")
		return true
	})

	d.volume = retained.Slider(0, 100, 50, "").WithTag("volume")
	d.volume.On(event.ValueChanged, func(e event.Event) bool {
		d.status.SetText(fmt.Sprintf("volume %g", d.volume.Value()))
		return true
	})
	d.mute = retained.Checkbox("mute", "").WithTag("mute")
	d.mute.On(event.Action, func(e event.Event) bool {
		d.status.SetText(fmt.Sprintf("mute %t", d.mute.Checked()))
		return true
	})

	toolbar := retained.FillRowContainer(8, "p-2 bg-slate-100",
		d.input, ok, clear,
	).WithTag("toolbar").WithPosition(0, 0)

	options := retained.WrapRowContainer(8, "p-2",
		d.volume, d.mute,
		retained.Label("drag the slider or click the box", "text-xs text-gray-500"),
	).WithTag("options").WithPosition(0, 60)

	footer := retained.CentredContainer("bg-gray-200", d.status).
		WithTag("footer").WithPosition(0, 140).WithSize(400, 32)

	d.root = retained.Container("bg-white", toolbar, options, footer).WithTag("root")
	return d
}

// fitWidth stretches the fixed-position rows to the surface width.
func (d *demo) fitWidth(width float32) {
	for _, c := range d.root.Children() {
		c.SetWidth(width)
	}
}
