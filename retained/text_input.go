package retained

import (
	"unicode"
	"unicode/utf8"
)

// TextBuffer holds single-line editable text and a cursor.
// It is the editing engine behind Textfield.
type TextBuffer struct {
	// Content
	content []rune // Using runes for proper Unicode handling

	// Cursor position (index into content, 0 = before first char)
	cursor int

	maxLength int // 0 = no limit
}

// NewTextBuffer creates a buffer holding text with the cursor at the end.
func NewTextBuffer(text string) *TextBuffer {
	b := &TextBuffer{}
	b.SetText(text)
	return b
}

// Text returns the current text content.
func (b *TextBuffer) Text() string {
	return string(b.content)
}

// SetText replaces the content and moves the cursor to the end.
func (b *TextBuffer) SetText(text string) {
	b.content = []rune(text)
	if b.maxLength > 0 && len(b.content) > b.maxLength {
		b.content = b.content[:b.maxLength]
	}
	b.cursor = len(b.content)
}

// Length returns the number of characters.
func (b *TextBuffer) Length() int {
	return len(b.content)
}

// Cursor returns the cursor position.
func (b *TextBuffer) Cursor() int {
	return b.cursor
}

// SetCursor moves the cursor, clamped to the content.
func (b *TextBuffer) SetCursor(pos int) {
	b.cursor = b.clampPosition(pos)
}

// SetMaxLength limits the number of characters. 0 removes the limit.
func (b *TextBuffer) SetMaxLength(n int) {
	b.maxLength = max(0, n)
}

// Insert inserts text at the cursor. Newlines are dropped. It returns false
// when nothing was inserted.
func (b *TextBuffer) Insert(text string) bool {
	runes := make([]rune, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		if r != '\n' && r != '\r' {
			runes = append(runes, r)
		}
	}

	// Check max length
	if b.maxLength > 0 {
		available := max(0, b.maxLength-len(b.content))
		if len(runes) > available {
			runes = runes[:available]
		}
	}
	if len(runes) == 0 {
		return false
	}

	newContent := make([]rune, 0, len(b.content)+len(runes))
	newContent = append(newContent, b.content[:b.cursor]...)
	newContent = append(newContent, runes...)
	newContent = append(newContent, b.content[b.cursor:]...)
	b.content = newContent
	b.cursor += len(runes)
	return true
}

// Delete removes characters. count > 0 deletes forward, count < 0 deletes
// backward. It returns false when nothing was deleted.
func (b *TextBuffer) Delete(count int) bool {
	switch {
	case count > 0:
		delEnd := b.clampPosition(b.cursor + count)
		if b.cursor < delEnd {
			b.content = append(b.content[:b.cursor], b.content[delEnd:]...)
			return true
		}
	case count < 0:
		delStart := b.clampPosition(b.cursor + count)
		if delStart < b.cursor {
			b.content = append(b.content[:delStart], b.content[b.cursor:]...)
			b.cursor = delStart
			return true
		}
	}
	return false
}

// DeleteWord deletes the word before the cursor, or after it when forward.
func (b *TextBuffer) DeleteWord(forward bool) bool {
	if forward {
		return b.Delete(b.findWordEnd(b.cursor) - b.cursor)
	}
	return b.Delete(b.findWordStart(b.cursor) - b.cursor)
}

// MoveCursor moves the cursor by delta characters. It returns false when the
// cursor did not move.
func (b *TextBuffer) MoveCursor(delta int) bool {
	pos := b.clampPosition(b.cursor + delta)
	moved := pos != b.cursor
	b.cursor = pos
	return moved
}

// MoveToStart moves the cursor before the first character.
func (b *TextBuffer) MoveToStart() bool {
	return b.MoveCursor(-b.cursor)
}

// MoveToEnd moves the cursor after the last character.
func (b *TextBuffer) MoveToEnd() bool {
	return b.MoveCursor(len(b.content) - b.cursor)
}

// ApplyKey edits the buffer for a key name as reported by keydown. Single
// characters are inserted; Backspace, Delete, ArrowLeft, ArrowRight, Home
// and End edit or move. It reports whether the text changed and whether the
// cursor moved.
func (b *TextBuffer) ApplyKey(key string) (changed, moved bool) {
	switch key {
	case "Backspace":
		return b.Delete(-1), false
	case "Delete":
		return b.Delete(1), false
	case "ArrowLeft":
		return false, b.MoveCursor(-1)
	case "ArrowRight":
		return false, b.MoveCursor(1)
	case "Home":
		return false, b.MoveToStart()
	case "End":
		return false, b.MoveToEnd()
	}
	if utf8.RuneCountInString(key) == 1 {
		return b.Insert(key), false
	}
	return false, false
}

// Helper methods

func (b *TextBuffer) clampPosition(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b.content) {
		return len(b.content)
	}
	return pos
}

func (b *TextBuffer) findWordStart(pos int) int {
	if pos <= 0 {
		return 0
	}
	// Skip any whitespace before cursor
	for pos > 0 && unicode.IsSpace(b.content[pos-1]) {
		pos--
	}
	// Find start of word
	for pos > 0 && !unicode.IsSpace(b.content[pos-1]) {
		pos--
	}
	return pos
}

func (b *TextBuffer) findWordEnd(pos int) int {
	length := len(b.content)
	if pos >= length {
		return length
	}
	// Skip any whitespace after cursor
	for pos < length && unicode.IsSpace(b.content[pos]) {
		pos++
	}
	// Find end of word
	for pos < length && !unicode.IsSpace(b.content[pos]) {
		pos++
	}
	return pos
}
