package textmeasure

import (
	"strings"

	"github.com/agiangrant/simplekit/tw"
	"github.com/mattn/go-runewidth"
)

// CellMeasurer measures text on a fixed grid: every terminal cell is
// CellRatio x font size wide and every line LineRatio x font size tall.
// East Asian wide runes take two cells. It needs no font data, which makes
// layout deterministic across machines.
type CellMeasurer struct {
	CellRatio float32
	LineRatio float32
}

// NewCellMeasurer returns a measurer with half-em cells and 1.25 line height.
// A 12pt (16px) font gives 8x20 cells.
func NewCellMeasurer() *CellMeasurer {
	return &CellMeasurer{CellRatio: 0.5, LineRatio: 1.25}
}

// MeasureText implements retained.TextMeasurer.
func (c *CellMeasurer) MeasureText(text, cssFont string) (width, height float32, ok bool) {
	f, err := tw.ParseFont(cssFont)
	if err != nil {
		return 0, 0, false
	}
	lines := strings.Split(text, "\n")
	cells := 0
	for _, line := range lines {
		cells = max(cells, runewidth.StringWidth(line))
	}
	return float32(cells) * c.CellRatio * f.Size, float32(len(lines)) * c.LineRatio * f.Size, true
}
