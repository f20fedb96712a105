package retained

import "testing"

func TestTextBufferEditing(t *testing.T) {
	tests := []struct {
		name       string
		initial    string
		edit       func(b *TextBuffer)
		wantText   string
		wantCursor int
	}{
		{
			name:       "insert at end",
			initial:    "ab",
			edit:       func(b *TextBuffer) { b.Insert("c") },
			wantText:   "abc",
			wantCursor: 3,
		},
		{
			name:    "insert in the middle",
			initial: "ac",
			edit: func(b *TextBuffer) {
				b.SetCursor(1)
				b.Insert("b")
			},
			wantText:   "abc",
			wantCursor: 2,
		},
		{
			name:       "newlines are dropped",
			initial:    "",
			edit:       func(b *TextBuffer) { b.Insert("a\nb\r") },
			wantText:   "ab",
			wantCursor: 2,
		},
		{
			name:       "backspace",
			initial:    "abc",
			edit:       func(b *TextBuffer) { b.Delete(-1) },
			wantText:   "ab",
			wantCursor: 2,
		},
		{
			name:    "forward delete",
			initial: "abc",
			edit: func(b *TextBuffer) {
				b.MoveToStart()
				b.Delete(1)
			},
			wantText:   "bc",
			wantCursor: 0,
		},
		{
			name:       "delete word backward",
			initial:    "hello big world",
			edit:       func(b *TextBuffer) { b.DeleteWord(false) },
			wantText:   "hello big ",
			wantCursor: 10,
		},
		{
			name:    "delete word forward",
			initial: "hello big world",
			edit: func(b *TextBuffer) {
				b.SetCursor(5)
				b.DeleteWord(true)
			},
			wantText:   "hello world",
			wantCursor: 5,
		},
		{
			name:       "unicode runes",
			initial:    "héllo",
			edit:       func(b *TextBuffer) { b.Delete(-4) },
			wantText:   "h",
			wantCursor: 1,
		},
		{
			name:       "cursor clamps",
			initial:    "abc",
			edit:       func(b *TextBuffer) { b.SetCursor(99) },
			wantText:   "abc",
			wantCursor: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewTextBuffer(tt.initial)
			tt.edit(b)
			if got := b.Text(); got != tt.wantText {
				t.Errorf("Text() = %q, want %q", got, tt.wantText)
			}
			if got := b.Cursor(); got != tt.wantCursor {
				t.Errorf("Cursor() = %d, want %d", got, tt.wantCursor)
			}
		})
	}
}

func TestTextBufferMaxLength(t *testing.T) {
	b := NewTextBuffer("")
	b.SetMaxLength(3)
	b.Insert("abcdef")
	if got := b.Text(); got != "abc" {
		t.Errorf("Text() = %q, want %q", got, "abc")
	}
	if b.Insert("x") {
		t.Error("Insert into a full buffer reported a change")
	}
	b.SetText("wxyz")
	if got := b.Length(); got != 3 {
		t.Errorf("Length() = %d, want 3", got)
	}
}

func TestTextBufferApplyKey(t *testing.T) {
	tests := []struct {
		key         string
		wantChanged bool
		wantMoved   bool
	}{
		{"a", true, false},
		{"Backspace", true, false},
		{"Delete", true, false},
		{"ArrowLeft", false, true},
		{"ArrowRight", false, true},
		{"Home", false, true},
		{"End", false, true},
		{"Shift", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			b := NewTextBuffer("abc")
			b.SetCursor(1)
			changed, moved := b.ApplyKey(tt.key)
			if changed != tt.wantChanged || moved != tt.wantMoved {
				t.Errorf("ApplyKey(%q) = %v, %v, want %v, %v",
					tt.key, changed, moved, tt.wantChanged, tt.wantMoved)
			}
		})
	}
}
