package textmeasure

import (
	"testing"

	"github.com/agiangrant/simplekit/tw"
)

func TestCellMeasurer(t *testing.T) {
	m := NewCellMeasurer()
	tests := []struct {
		text, font string
		w, h       float32
		ok         bool
	}{
		{"hello", "12pt sans-serif", 40, 20, true},
		{"", "16px monospace", 0, 20, true},
		{"ab\nabcd", "16px monospace", 32, 40, true},
		{"日本", "16px monospace", 32, 20, true},
		{"hello", "not a font", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.font, func(t *testing.T) {
			w, h, ok := m.MeasureText(tt.text, tt.font)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("MeasureText(%q, %q) = %gx%g, want %gx%g", tt.text, tt.font, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestFaceMeasurer(t *testing.T) {
	m := NewFaceMeasurer(0)

	w1, h1, ok := m.MeasureText("hello", "16px sans-serif")
	if !ok {
		t.Fatal("expected measurement to succeed")
	}
	if w1 <= 0 || h1 <= 0 {
		t.Fatalf("size = %gx%g, want positive", w1, h1)
	}

	w2, _, _ := m.MeasureText("hello hello", "16px sans-serif")
	if w2 <= w1 {
		t.Errorf("longer text width = %g, want > %g", w2, w1)
	}

	w3, _, _ := m.MeasureText("hello", "32px sans-serif")
	if w3 <= w1 {
		t.Errorf("larger font width = %g, want > %g", w3, w1)
	}

	_, h4, _ := m.MeasureText("a\nb", "16px sans-serif")
	if h4 != 2*h1 {
		t.Errorf("two-line height = %g, want %g", h4, 2*h1)
	}

	if _, _, ok := m.MeasureText("hello", ""); ok {
		t.Error("expected failure for empty font")
	}
}

func TestFaceMeasurerMonospace(t *testing.T) {
	m := NewFaceMeasurer(0)
	wi, _, _ := m.MeasureText("iiii", "16px monospace")
	wm, _, _ := m.MeasureText("mmmm", "16px monospace")
	if wi != wm {
		t.Errorf("monospace widths differ: %g vs %g", wi, wm)
	}
}

func TestFaceMeasurerCaches(t *testing.T) {
	m := NewFaceMeasurer(2)
	m.MeasureText("a", "16px sans-serif")
	m.MeasureText("b", "16px sans-serif")
	m.MeasureText("a", "16px sans-serif")
	m.MeasureText("c", "16px sans-serif")
	if got := m.cache.len(); got != 2 {
		t.Errorf("cache len = %d, want 2", got)
	}
	// "b" was least recently used and evicted.
	if _, _, ok := m.cache.get(cacheKey{font: "16px sans-serif", text: "b"}); ok {
		t.Error("expected b to be evicted")
	}
	if _, _, ok := m.cache.get(cacheKey{font: "16px sans-serif", text: "a"}); !ok {
		t.Error("expected a to be cached")
	}

	m.ClearCache()
	if got := m.cache.len(); got != 0 {
		t.Errorf("cache len after clear = %d, want 0", got)
	}
}

func TestTTFName(t *testing.T) {
	tests := []struct {
		font tw.Font
		want string
	}{
		{tw.Font{Weight: 400, Family: "sans-serif"}, "regular"},
		{tw.Font{Weight: 700, Family: "sans-serif"}, "bold"},
		{tw.Font{Weight: 400, Italic: true, Family: "serif"}, "italic"},
		{tw.Font{Weight: 700, Italic: true, Family: "Go"}, "bolditalic"},
		{tw.Font{Weight: 400, Family: "monospace"}, "mono"},
		{tw.Font{Weight: 800, Family: "Go Mono"}, "monobold"},
		{tw.Font{Weight: 400, Italic: true, Family: "Courier New"}, "monoitalic"},
	}
	for _, tt := range tests {
		if got := ttfName(tt.font); got != tt.want {
			t.Errorf("ttfName(%+v) = %q, want %q", tt.font, got, tt.want)
		}
	}
}
