// Command skreplay replays a recorded input script against a demo widget
// tree. Every semantic event is logged; the final geometry can be dumped and
// the final frame written to a PNG.
package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/simplekit"
	"github.com/agiangrant/simplekit/event"
	"github.com/agiangrant/simplekit/internal/raster"
	"github.com/agiangrant/simplekit/retained"
	"github.com/agiangrant/simplekit/textmeasure"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	app.Name = "skreplay"
	app.Version = simplekit.Version
	app.Usage = "replay raw input against the simplekit demo UI"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load configuration from `FILE`",
		},
		cli.StringFlag{
			Name:  "script, s",
			Usage: "replay frames from `FILE`",
		},
		cli.StringFlag{
			Name:  "out, o",
			Usage: "write the last frame as PNG to `FILE`",
		},
		cli.IntFlag{
			Name:  "width",
			Value: 400,
			Usage: "surface width unless the script sets one",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 200,
			Usage: "surface height unless the script sets one",
		},
		cli.BoolFlag{
			Name:  "dump",
			Usage: "print the widget geometry after the last frame",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "log at debug level and draw widget boxes",
		},
	}

	app.Action = replay
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func replay(c *cli.Context) error {
	config, err := simplekit.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if c.Bool("debug") {
		config.Log.Level = "debug"
		config.Layout.DrawBoxes = true
	}
	logger, err := simplekit.NewLogger(config.Log)
	if err != nil {
		return err
	}
	logger.SetFormatter(&log.TextFormatter{DisableColors: true})

	if c.String("script") == "" {
		return cli.NewExitError("missing --script", 2)
	}
	script, err := LoadScript(c.String("script"))
	if err != nil {
		return err
	}

	width, height := float32(c.Int("width")), float32(c.Int("height"))
	if script.Width > 0 && script.Height > 0 {
		width, height = script.Width, script.Height
	}

	measurer := textmeasure.NewFaceMeasurer(textmeasure.DefaultCacheSize)
	tk, err := simplekit.New(config, simplekit.Options{
		Width:    width,
		Height:   height,
		Logger:   logger,
		Measurer: measurer,
	})
	if err != nil {
		return err
	}

	d := buildDemo()
	d.fitWidth(width)
	tk.SetRoot(d.root)
	tk.SetEventListener(eventLogger(logger, d))

	run(tk, script.Frames)

	stats := tk.Stats()
	logger.WithFields(log.Fields{
		"frames":  stats.Frames,
		"events":  stats.Events,
		"layouts": stats.Layouts,
	}).Info("replay finished")

	if c.Bool("dump") {
		fmt.Print(retained.Dump(tk.Root()))
	}
	if out := c.String("out"); out != "" {
		w, h := tk.Size()
		return writePNG(out, tk, int(w), int(h), measurer)
	}
	return nil
}

// run feeds every frame to the toolkit. A script without frames still gets
// one frame so the tree is laid out.
func run(tk *retained.Toolkit, frames []Frame) []retained.FrameResult {
	if len(frames) == 0 {
		frames = []Frame{{}}
	}
	results := make([]retained.FrameResult, 0, len(frames))
	for _, f := range frames {
		results = append(results, tk.RunFrame(f.Queue(), f.Time))
	}
	return results
}

// eventLogger logs each semantic event and keeps the demo rows as wide as
// the surface.
func eventLogger(logger log.FieldLogger, d *demo) func(event.Event) {
	return func(e event.Event) {
		entry := logger.WithFields(log.Fields{
			"type": e.Type(),
			"time": e.Timestamp(),
		})
		switch ev := e.(type) {
		case *event.PointerEvent:
			entry = entry.WithFields(log.Fields{"x": ev.X, "y": ev.Y})
		case *event.KeyEvent:
			entry = entry.WithField("key", ev.Key)
		case *event.ResizeEvent:
			d.fitWidth(ev.Width)
			entry = entry.WithFields(log.Fields{"width": ev.Width, "height": ev.Height})
		}
		if ev, ok := e.Source().(*retained.Widget); ok {
			entry = entry.WithField("source", ev.String())
		}
		entry.Info("event")
	}
}

func writePNG(path string, tk *retained.Toolkit, width, height int, faces raster.FaceSource) error {
	s := raster.New(width, height, "white", faces)
	tk.Draw(s)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := s.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
