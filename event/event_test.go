package event

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func types(events []Event) []Type {
	out := make([]Type, len(events))
	for i, e := range events {
		out[i] = e.Type()
	}
	return out
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		a    []Event
		b    []Event
		want []Type
	}{
		{
			name: "empty injected",
			a:    []Event{NewPointer(PointerDown, 1, 0, 0)},
			want: []Type{PointerDown},
		},
		{
			name: "empty tree",
			b:    []Event{New(Action, 1, nil)},
			want: []Type{Action},
		},
		{
			name: "interleaved by time",
			a:    []Event{NewPointer(PointerDown, 1, 0, 0), NewPointer(PointerUp, 5, 0, 0)},
			b:    []Event{New(Action, 3, nil), New(TextChanged, 9, nil)},
			want: []Type{PointerDown, Action, PointerUp, TextChanged},
		},
		{
			name: "tree wins ties",
			a:    []Event{NewPointer(PointerDown, 2, 0, 0)},
			b:    []Event{New(Action, 2, nil)},
			want: []Type{PointerDown, Action},
		},
		{
			name: "injected before all",
			a:    []Event{NewPointer(PointerMove, 10, 0, 0)},
			b:    []Event{New(Action, 1, nil), New(ValueChanged, 2, nil)},
			want: []Type{Action, ValueChanged, PointerMove},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := types(Merge(tt.a, tt.b))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPointerWithType(t *testing.T) {
	move := NewPointer(PointerMove, 7, 3, 4)
	enter := move.WithType(Enter)

	if enter.Type() != Enter {
		t.Errorf("enter.Type() = %v, want %v", enter.Type(), Enter)
	}
	if move.Type() != PointerMove {
		t.Errorf("original type changed to %v", move.Type())
	}
	if enter.X != 3 || enter.Y != 4 || enter.Timestamp() != 7 {
		t.Errorf("enter = %+v, want position (3,4) at 7", enter)
	}
}

func TestTypeClassification(t *testing.T) {
	for _, typ := range []Type{Click, DoubleClick, Drag, Enter, Exit, LongPress} {
		if !typ.IsPointer() {
			t.Errorf("%s.IsPointer() = false, want true", typ)
		}
	}
	for _, typ := range []Type{KeyDown, KeyUp, FocusIn, FocusOut} {
		if !typ.IsKeyboard() {
			t.Errorf("%s.IsKeyboard() = false, want true", typ)
		}
		if typ.IsPointer() {
			t.Errorf("%s.IsPointer() = true, want false", typ)
		}
	}
	if Action.IsPointer() || Action.IsKeyboard() {
		t.Error("action should be neither pointer nor keyboard")
	}
}

func TestParseRawType(t *testing.T) {
	for _, rt := range []RawType{RawNull, RawPointerDown, RawPointerMove, RawPointerUp, RawKeyDown, RawKeyUp, RawResize} {
		got, ok := ParseRawType(rt.String())
		if !ok || got != rt {
			t.Errorf("ParseRawType(%q) = %v, %v, want %v, true", rt.String(), got, ok, rt)
		}
	}
	if _, ok := ParseRawType("wheel"); ok {
		t.Error("ParseRawType(wheel) should fail")
	}
}

func TestRawIsPointer(t *testing.T) {
	if !Pointer(RawPointerDown, 0, 1, 1).IsPointer() {
		t.Error("positioned pointerdown should be a pointer event")
	}
	if (RawEvent{Type: RawPointerDown}).IsPointer() {
		t.Error("pointerdown without coordinates should not be a pointer event")
	}
	if Key(RawKeyDown, 0, "a").IsPointer() {
		t.Error("keydown should not be a pointer event")
	}
}
