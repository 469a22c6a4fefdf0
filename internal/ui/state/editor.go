package state

import "unicode"

// Editor is the filter line editor: a rune buffer plus a cursor,
// mutated through readline-style operations. Every operation reports
// whether it changed anything, and every text mutation invokes the
// change callback with the new content so the owner can re-filter.
// The cursor never leaves [0, len].
type Editor struct {
	runes    []rune
	cursor   int
	onChange func(string)
}

// NewEditor returns an empty editor.
func NewEditor() *Editor {
	return &Editor{}
}

// OnChange registers fn to run after every text mutation.
func (e *Editor) OnChange(fn func(string)) {
	e.onChange = fn
}

// Text returns the current content.
func (e *Editor) Text() string {
	return string(e.runes)
}

// Cursor returns the rune offset of the cursor.
func (e *Editor) Cursor() int {
	return e.cursor
}

// Len returns the content length in runes.
func (e *Editor) Len() int {
	return len(e.runes)
}

// SetText replaces content and cursor wholesale, clamping the cursor
// into [0, len]. The callback fires only when the text actually
// changed.
func (e *Editor) SetText(text string, cursor int) {
	prev := string(e.runes)
	e.runes = []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(e.runes) {
		cursor = len(e.runes)
	}
	e.cursor = cursor
	if prev != text {
		e.notify()
	}
}

// Insert adds text at the cursor and moves the cursor past it.
func (e *Editor) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	updated := make([]rune, 0, len(e.runes)+len(insert))
	updated = append(updated, e.runes[:e.cursor]...)
	updated = append(updated, insert...)
	updated = append(updated, e.runes[e.cursor:]...)
	e.runes = updated
	e.cursor += len(insert)
	e.notify()
	return true
}

// DeleteRuneBackward removes the rune before the cursor.
func (e *Editor) DeleteRuneBackward() bool {
	if e.cursor == 0 {
		return false
	}
	e.remove(e.cursor-1, e.cursor)
	return true
}

// DeleteRuneForward removes the rune under the cursor.
func (e *Editor) DeleteRuneForward() bool {
	if e.cursor >= len(e.runes) {
		return false
	}
	e.remove(e.cursor, e.cursor+1)
	return true
}

// DeleteWordBackward removes the word before the cursor along with the
// whitespace between it and the cursor.
func (e *Editor) DeleteWordBackward() bool {
	start := e.prevWord()
	if start == e.cursor {
		return false
	}
	e.remove(start, e.cursor)
	return true
}

// DeleteWordForward removes through the next word and the whitespace
// that follows it.
func (e *Editor) DeleteWordForward() bool {
	end := e.nextWord()
	if end == e.cursor {
		return false
	}
	e.remove(e.cursor, end)
	return true
}

// DeleteToStart removes everything before the cursor.
func (e *Editor) DeleteToStart() bool {
	if e.cursor == 0 {
		return false
	}
	e.remove(0, e.cursor)
	return true
}

// DeleteToEnd truncates the content at the cursor.
func (e *Editor) DeleteToEnd() bool {
	if e.cursor >= len(e.runes) {
		return false
	}
	e.remove(e.cursor, len(e.runes))
	return true
}

// MoveStart places the cursor before the first rune.
func (e *Editor) MoveStart() bool {
	if e.cursor == 0 {
		return false
	}
	e.cursor = 0
	return true
}

// MoveEnd places the cursor after the last rune.
func (e *Editor) MoveEnd() bool {
	if e.cursor == len(e.runes) {
		return false
	}
	e.cursor = len(e.runes)
	return true
}

// MoveRuneBackward moves the cursor one rune backward.
func (e *Editor) MoveRuneBackward() bool {
	if e.cursor == 0 {
		return false
	}
	e.cursor--
	return true
}

// MoveRuneForward moves the cursor one rune forward.
func (e *Editor) MoveRuneForward() bool {
	if e.cursor >= len(e.runes) {
		return false
	}
	e.cursor++
	return true
}

// MoveWordBackward moves the cursor to the start of the previous word.
func (e *Editor) MoveWordBackward() bool {
	start := e.prevWord()
	if start == e.cursor {
		return false
	}
	e.cursor = start
	return true
}

// MoveWordForward moves the cursor past the next word and the
// whitespace following it.
func (e *Editor) MoveWordForward() bool {
	end := e.nextWord()
	if end == e.cursor {
		return false
	}
	e.cursor = end
	return true
}

// prevWord finds the start of the word before the cursor: whitespace
// immediately behind the cursor is skipped, then the run of
// non-whitespace before that.
func (e *Editor) prevWord() int {
	i := e.cursor
	for i > 0 && unicode.IsSpace(e.runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(e.runes[i-1]) {
		i--
	}
	return i
}

// nextWord finds the position past the next word: whitespace under the
// cursor, then the word, then the whitespace run after it.
func (e *Editor) nextWord() int {
	i := e.cursor
	for i < len(e.runes) && unicode.IsSpace(e.runes[i]) {
		i++
	}
	for i < len(e.runes) && !unicode.IsSpace(e.runes[i]) {
		i++
	}
	for i < len(e.runes) && unicode.IsSpace(e.runes[i]) {
		i++
	}
	return i
}

// remove drops runes[from:to], leaves the cursor at from, and fires
// the change callback.
func (e *Editor) remove(from, to int) {
	updated := make([]rune, 0, len(e.runes)-(to-from))
	updated = append(updated, e.runes[:from]...)
	updated = append(updated, e.runes[to:]...)
	e.runes = updated
	e.cursor = from
	e.notify()
}

func (e *Editor) notify() {
	if e.onChange != nil {
		e.onChange(string(e.runes))
	}
}
