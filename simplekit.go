// Package simplekit wires the toolkit packages together from a Config: it
// installs the style and theme, builds the logger and text measurer, and
// returns a ready retained.Toolkit.
package simplekit

import (
	"os"

	"github.com/agiangrant/simplekit/retained"
	"github.com/agiangrant/simplekit/textmeasure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Version of the toolkit.
const Version = "0.1.0"

// Options customise New beyond what the configuration file holds.
type Options struct {
	// Width and Height are the initial surface size.
	Width, Height float32

	// Logger overrides the logger built from Config.Log.
	Logger logrus.FieldLogger

	// Measurer overrides the default OpenType measurer.
	Measurer retained.TextMeasurer
}

// NewLogger builds a logrus logger writing to stderr at the configured level.
func NewLogger(c LogConfig) (*logrus.Logger, error) {
	l := logrus.New()
	l.Out = os.Stderr
	level := c.Level
	if level == "" {
		level = "warn"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", c.Level)
	}
	l.Level = lvl
	return l, nil
}

// New applies the process-wide parts of config (widget style, theme and
// widget warning logger) and returns a toolkit configured from the rest.
// Text is measured with the Go fonts unless opts supplies a measurer.
//
// Widgets are built before they belong to a toolkit, so the style, theme and
// warning logger they read are shared by every toolkit in the process: a
// later New replaces them for widgets created or painted afterwards.
// Thresholds, layout settings, the measurer and the toolkit logger stay per
// instance.
func New(config Config, opts Options) (*retained.Toolkit, error) {
	log := opts.Logger
	if log == nil {
		l, err := NewLogger(config.Log)
		if err != nil {
			return nil, err
		}
		log = l
	}

	if err := retained.SetTheme(config.Theme); err != nil {
		return nil, errors.Wrap(err, "theme")
	}
	retained.SetStyle(config.Style)
	retained.SetLogger(log)

	measurer := opts.Measurer
	if measurer == nil {
		measurer = textmeasure.NewFaceMeasurer(textmeasure.DefaultCacheSize)
	}

	loop := retained.DefaultLoopConfig()
	loop.Thresholds = config.Gesture.Thresholds()
	loop.Coalesce = config.Gesture.Coalesce
	loop.Measurer = measurer
	loop.Log = log
	loop.LayoutDebug = config.Layout.Debug
	loop.LayoutWarnings = config.Layout.Warnings
	loop.Debug = config.Layout.DrawBoxes
	if opts.Width > 0 && opts.Height > 0 {
		loop.Width, loop.Height = opts.Width, opts.Height
	}

	return retained.NewToolkit(loop), nil
}
