// Package deinflect recovers the possible dictionary forms of inflected
// Japanese words.
//
// A word is deinflected by repeatedly matching the end of every candidate
// against a table of suffix rules (食べました -> 食べます -> 食べる). Each
// match that is allowed by the candidate's class produces a new candidate,
// tagged with the reasons accumulated on the way. The result is a forest
// rooted at the unmodified word:
//
//	d := deinflect.FromWord("聞かれました")
//	for id := range d.IDs() {
//		fmt.Println(d.String(id), d.Data(id).Reasons)
//	}
//
// Candidates are hypotheses, not words: filter them against a dictionary.
package deinflect

import (
	"iter"
	"unicode/utf8"
)

// ID identifies a candidate within its Deinflections.
type ID int

// original marks a candidate whose parent is the original word itself.
const original ID = -1

// Deinflection describes one candidate as an edit of its parent: trim
// runes from the end of the parent's text, then append With.
type Deinflection struct {
	parent  ID
	trim    int
	with    string
	withLen int

	Classes Class
	Reasons Reason
}

// Parent returns the candidate this one was derived from. ok is false for the
// root candidate.
func (d Deinflection) Parent() (id ID, ok bool) {
	if d.parent == original {
		return 0, false
	}
	return d.parent, true
}

// Deinflections is the forest of candidates for one word. Index 0 is always
// the word itself with no class and no reasons.
type Deinflections struct {
	word  string
	items []Deinflection
}

// FromWord deinflects word with the built-in rule table.
func FromWord(word string) *Deinflections {
	return DefaultIndex().Deinflect(word)
}

// FromText deinflects every prefix of s using the built-in rule table. The
// k-th forest is for s with its last k runes removed.
func FromText(s string) []*Deinflections {
	return DefaultIndex().DeinflectText(s)
}

// Deinflect derives all candidates for word.
func (ix *Index) Deinflect(word string) *Deinflections {
	d := &Deinflections{
		word:  word,
		items: []Deinflection{{parent: original}},
	}
	var buf []Deinflection
	for i := 0; i < len(d.items); i++ {
		prev := d.items[i]
		for e := range ix.Match(d.Runes(ID(i))) {
			if prev.Classes != 0 && prev.Classes&e.Rule.ClassesIn == 0 {
				continue
			}
			buf = append(buf, Deinflection{
				parent:  ID(i),
				trim:    e.InLen,
				with:    e.Rule.Out,
				withLen: e.OutLen,
				Classes: e.Rule.ClassesOut,
				Reasons: prev.Reasons | e.Reason,
			})
		}
		d.items = append(d.items, buf...)
		buf = buf[:0]
	}
	return d
}

// DeinflectText deinflects s, then s without its last rune, and so on down to
// the first rune alone. An empty s yields no forests.
func (ix *Index) DeinflectText(s string) []*Deinflections {
	out := make([]*Deinflections, 0, utf8.RuneCountInString(s))
	for len(s) > 0 {
		out = append(out, ix.Deinflect(s))
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
	}
	return out
}

// Word returns the original word.
func (d *Deinflections) Word() string {
	return d.word
}

// Len returns the number of candidates, including the original word.
func (d *Deinflections) Len() int {
	return len(d.items)
}

// IDs iterates over all candidates in creation order.
func (d *Deinflections) IDs() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for i := range d.items {
			if !yield(ID(i)) {
				return
			}
		}
	}
}

// Data returns the candidate with the given ID. It panics if id is out of range.
func (d *Deinflections) Data(id ID) Deinflection {
	return d.items[id]
}

// String returns the text of a candidate.
//
// It allocates; prefer Runes when the text can be consumed last rune first.
func (d *Deinflections) String(id ID) string {
	var rev []rune
	it := d.Runes(id)
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		rev = append(rev, c)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return string(rev)
}
