package effect

import (
	"strings"
	"unicode"
)

// TextBuffer is the rage-text input line. It accepts printable runes only
// and holds at most max of them (0 means unlimited).
type TextBuffer struct {
	runes []rune
	max   int
}

// Insert appends r if it is printable and there is room.
func (b *TextBuffer) Insert(r rune) bool {
	if !unicode.IsPrint(r) {
		return false
	}
	if b.max > 0 && len(b.runes) >= b.max {
		return false
	}
	b.runes = append(b.runes, r)
	return true
}

// InsertString appends the printable runes of s. Line breaks become
// spaces. It returns the number of runes accepted.
func (b *TextBuffer) InsertString(s string) int {
	n := 0
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' {
			r = ' '
		}
		if b.Insert(r) {
			n++
		}
	}
	return n
}

// Backspace removes the last rune.
func (b *TextBuffer) Backspace() {
	if len(b.runes) > 0 {
		b.runes = b.runes[:len(b.runes)-1]
	}
}

// Clear empties the buffer.
func (b *TextBuffer) Clear() {
	b.runes = b.runes[:0]
}

func (b *TextBuffer) String() string {
	return string(b.runes)
}

// Trimmed returns the contents without surrounding whitespace.
func (b *TextBuffer) Trimmed() string {
	return strings.TrimSpace(string(b.runes))
}
