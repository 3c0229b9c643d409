package deinflect

import (
	"iter"
	"unicode/utf8"
)

// Runes streams the text of a candidate last rune first without building it.
//
// The text of a candidate is its replacement appended to what is left of its
// parent after trimming. Runes emits the replacement, then moves up one layer
// and emits the parent's replacement minus the trimmed runes, and so on until
// the original word. Runes a layer was asked to trim but could not, because
// its parent's replacement was too short, are carried up to the next layer.
//
// A Runes is single pass; call Deinflections.Runes again to restart.
type Runes struct {
	d        *Deinflections
	layer    ID
	rest     string
	carry    int
	original bool
}

// Runes returns the text of candidate id as a backward rune stream.
func (d *Deinflections) Runes(id ID) *Runes {
	return &Runes{d: d, layer: id, rest: d.items[id].with}
}

// Next returns the next rune, or false once the text is exhausted.
func (it *Runes) Next() (rune, bool) {
	for {
		if len(it.rest) > 0 {
			c, size := utf8.DecodeLastRuneInString(it.rest)
			it.rest = it.rest[:len(it.rest)-size]
			return c, true
		}
		if it.original {
			return 0, false
		}

		cur := &it.d.items[it.layer]
		skip := cur.trim + it.carry
		if cur.parent == original {
			it.original = true
			it.rest = trimRunes(it.d.word, skip)
			continue
		}

		it.layer = cur.parent
		parent := &it.d.items[it.layer]
		it.rest = trimRunes(parent.with, skip)
		it.carry = max(0, skip-parent.withLen)
	}
}

// All adapts the stream for range loops.
func (it *Runes) All() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for c, ok := it.Next(); ok; c, ok = it.Next() {
			if !yield(c) {
				return
			}
		}
	}
}

// trimRunes drops up to n runes from the end of s.
func trimRunes(s string, n int) string {
	for ; n > 0 && len(s) > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
	}
	return s
}
