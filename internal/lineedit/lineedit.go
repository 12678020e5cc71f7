// Package lineedit implements a single-line text buffer with a cursor.
//
// Positions are counted in runes, so the cursor always sits on a
// character boundary regardless of the input encoding.
package lineedit

// Buffer is a line of text plus a cursor offset in [0, Len()].
// The zero value is an empty buffer with the cursor at 0.
type Buffer struct {
	text   []rune
	cursor int
}

// New returns a buffer holding s with the cursor at the end.
func New(s string) Buffer {
	r := []rune(s)
	return Buffer{text: r, cursor: len(r)}
}

// Value returns the buffer contents.
func (b Buffer) Value() string {
	return string(b.text)
}

// Cursor returns the cursor offset.
func (b Buffer) Cursor() int {
	return b.cursor
}

// Len returns the number of runes in the buffer.
func (b Buffer) Len() int {
	return len(b.text)
}

// IsEmpty reports whether the buffer holds no text.
func (b Buffer) IsEmpty() bool {
	return len(b.text) == 0
}

// Insert inserts r at the cursor and advances the cursor past it.
func (b *Buffer) Insert(r rune) {
	text := make([]rune, 0, len(b.text)+1)
	text = append(text, b.text[:b.cursor]...)
	text = append(text, r)
	b.text = append(text, b.text[b.cursor:]...)
	b.cursor++
}

// InsertString inserts every rune of s in order.
func (b *Buffer) InsertString(s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

// Backspace removes the rune before the cursor. No-op at offset 0.
func (b *Buffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	b.text = splice(b.text, b.cursor-1)
	b.cursor--
}

// DeleteForward removes the rune under the cursor. No-op at the end.
func (b *Buffer) DeleteForward() {
	if b.cursor >= len(b.text) {
		return
	}
	b.text = splice(b.text, b.cursor)
}

// splice returns a fresh slice without the rune at i. Copies of a Buffer
// must never share a backing array.
func splice(text []rune, i int) []rune {
	out := make([]rune, 0, len(text)-1)
	out = append(out, text[:i]...)
	return append(out, text[i+1:]...)
}

// MoveLeft moves the cursor one rune left, stopping at 0.
func (b *Buffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveRight moves the cursor one rune right, stopping at the end.
func (b *Buffer) MoveRight() {
	if b.cursor < len(b.text) {
		b.cursor++
	}
}

// MoveHome puts the cursor at 0.
func (b *Buffer) MoveHome() {
	b.cursor = 0
}

// MoveEnd puts the cursor after the last rune.
func (b *Buffer) MoveEnd() {
	b.cursor = len(b.text)
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.text = nil
	b.cursor = 0
}

// Split returns the text before and after the cursor.
func (b Buffer) Split() (before, after string) {
	return string(b.text[:b.cursor]), string(b.text[b.cursor:])
}
