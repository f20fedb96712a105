package retained

import (
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// monoMeasurer measures every rune as 8x16.
var monoMeasurer = TextMeasurerFunc(func(text, font string) (float32, float32, bool) {
	return float32(8 * utf8.RuneCountInString(text)), 16, true
})

// block returns a fixed-size leaf.
func block(width, height float32) *Widget {
	return Custom("").WithSize(width, height)
}

func newTestContext() (*LayoutContext, *test.Hook) {
	logger, hook := test.NewNullLogger()
	return &LayoutContext{Measurer: monoMeasurer, Log: logger, Warnings: true}, hook
}

// newTestToolkit returns a toolkit with a silent logger and a width x height
// surface, laid out once with root installed.
func newTestToolkit(root *Widget, width, height float32) (*Toolkit, *test.Hook) {
	logger, hook := test.NewNullLogger()
	config := DefaultLoopConfig()
	config.Log = logger
	config.Measurer = monoMeasurer
	config.Width, config.Height = width, height
	tk := NewToolkit(config)
	tk.SetRoot(root)
	tk.RunFrame(nil, 0)
	return tk, hook
}

func warnings(hook *test.Hook) []string {
	var out []string
	for _, e := range hook.AllEntries() {
		if e.Level <= logrus.WarnLevel {
			out = append(out, e.Message)
		}
	}
	return out
}
