package deinflect

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"
	"slices"
	"sync"
	"unicode/utf8"
)

// ErrInvalidRule is wrapped by every error NewIndex reports for a malformed table.
var ErrInvalidRule = errors.New("invalid inflection rule")

// RuneSource yields runes one at a time. Index.Match pulls from it only as far
// as the trie walk needs, so the source may be computed lazily.
type RuneSource interface {
	Next() (rune, bool)
}

// Entry is a rule stored in the index together with its reason and the
// rune lengths of both suffixes.
type Entry struct {
	Reason Reason
	Rule   *Rule
	InLen  int
	OutLen int
}

type node struct {
	c        rune
	children []node
	entries  []Entry
}

// Index is a suffix trie over the reversed input suffixes of a rule table.
// It is immutable once built and safe for concurrent use.
type Index struct {
	root node
	size int
}

var (
	defaultIndex     *Index
	defaultIndexOnce sync.Once
)

// DefaultIndex returns the index over the built-in rule table. It is built on
// first use and panics if the table is malformed.
func DefaultIndex() *Index {
	defaultIndexOnce.Do(func() {
		ix, err := NewIndex(inflectionRules)
		if err != nil {
			panic(fmt.Sprintf("deinflect: built-in rule table: %v", err))
		}
		defaultIndex = ix
	})
	return defaultIndex
}

// Rules returns the built-in rule table. The returned slice must not be modified.
func Rules() []RuleGroup {
	return inflectionRules
}

// NewIndex validates groups and builds an index over them. All problems found
// are reported together.
func NewIndex(groups []RuleGroup) (*Index, error) {
	var errs []error
	ix := &Index{}
	for gi := range groups {
		g := &groups[gi]
		if bits.OnesCount64(uint64(g.Reason)) != 1 {
			errs = append(errs, fmt.Errorf("group %d: reason %#x must have exactly one bit: %w", gi, uint64(g.Reason), ErrInvalidRule))
			continue
		}
		for ri := range g.Rules {
			rule := &g.Rules[ri]
			if err := validateRule(rule); err != nil {
				errs = append(errs, fmt.Errorf("group %d (%s) rule %d: %w", gi, g.Reason, ri, err))
				continue
			}
			ix.insert(rule.In, Entry{
				Reason: g.Reason,
				Rule:   rule,
				InLen:  utf8.RuneCountInString(rule.In),
				OutLen: utf8.RuneCountInString(rule.Out),
			})
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return ix, nil
}

func validateRule(rule *Rule) error {
	switch {
	case rule.In == "":
		return fmt.Errorf("empty input suffix: %w", ErrInvalidRule)
	case !utf8.ValidString(rule.In) || !utf8.ValidString(rule.Out):
		return fmt.Errorf("suffix %q -> %q is not valid UTF-8: %w", rule.In, rule.Out, ErrInvalidRule)
	case rule.ClassesOut == 0:
		return fmt.Errorf("%q -> %q has no output class: %w", rule.In, rule.Out, ErrInvalidRule)
	}
	return nil
}

// Len returns the number of rules in the index.
func (ix *Index) Len() int {
	return ix.size
}

// insert adds e under suffix read back to front.
func (ix *Index) insert(suffix string, e Entry) {
	n := &ix.root
	for len(suffix) > 0 {
		c, size := utf8.DecodeLastRuneInString(suffix)
		suffix = suffix[:len(suffix)-size]
		i, found := n.child(c)
		if !found {
			n.children = slices.Insert(n.children, i, node{c: c})
		}
		n = &n.children[i]
	}
	n.entries = append(n.entries, e)
	ix.size++
}

func (n *node) child(c rune) (int, bool) {
	return slices.BinarySearchFunc(n.children, c, func(n node, c rune) int {
		return int(n.c - c)
	})
}

// Match walks the trie with runes pulled from src, which should produce the
// text last rune first. Every entry whose input suffix is a suffix of that
// text is yielded; shorter suffixes come first and entries with the same
// suffix keep table order.
func (ix *Index) Match(src RuneSource) iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		n := &ix.root
		for {
			for i := range n.entries {
				if !yield(&n.entries[i]) {
					return
				}
			}
			c, ok := src.Next()
			if !ok {
				return
			}
			i, found := n.child(c)
			if !found {
				return
			}
			n = &n.children[i]
		}
	}
}
