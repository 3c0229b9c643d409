// Package lookup confirms deinflection candidates against a lexicon.
package lookup

import (
	"errors"
	"strings"
	"sync"

	"github.com/ikawaha/kagome/v2/tokenizer"

	"jpdeinflect/deinflect"
	"jpdeinflect/kana"
	"jpdeinflect/model"
	"jpdeinflect/tokenize"
)

// ErrNoTokenizer is returned when a Kagome lexicon is built without a tokenizer.
var ErrNoTokenizer = errors.New("lookup: no tokenizer")

// Lexicon knows dictionary forms and the word classes they inflect as.
// A class of 0 means the word does not inflect.
type Lexicon interface {
	Lookup(word string) (model.DictionaryEntry, deinflect.Class, bool)
}

// Hit is a candidate confirmed by a lexicon.
type Hit struct {
	ID    deinflect.ID
	Entry model.DictionaryEntry
}

// Filter returns the candidates of d that lex knows with a compatible class,
// in candidate order. The unmodified word matches whatever class it has.
func Filter(lex Lexicon, d *deinflect.Deinflections) []Hit {
	var hits []Hit
	for id := range d.IDs() {
		data := d.Data(id)
		entry, class, ok := lex.Lookup(d.String(id))
		if !ok {
			continue
		}
		if data.Classes != 0 && data.Classes&class == 0 {
			continue
		}
		hits = append(hits, Hit{ID: id, Entry: entry})
	}
	return hits
}

type result struct {
	entry model.DictionaryEntry
	class deinflect.Class
	ok    bool
}

// Kagome is a lexicon backed by a kagome dictionary. A word is known when it
// tokenizes to exactly one dictionary token whose base form is the word.
type Kagome struct {
	t      *tokenizer.Tokenizer
	source string
	cache  sync.Map // string -> result
}

// NewKagome wraps t. source names the dictionary in returned entries.
func NewKagome(t *tokenizer.Tokenizer, source string) (*Kagome, error) {
	if t == nil {
		return nil, ErrNoTokenizer
	}
	return &Kagome{t: t, source: source}, nil
}

// KagomeDict builds a Kagome lexicon over one of the tokenize dictionaries.
func KagomeDict(name string) (*Kagome, error) {
	t, err := tokenize.Tokenizer(name)
	if err != nil {
		return nil, err
	}
	return NewKagome(t, name)
}

// Lookup is safe for concurrent use. Results are cached.
func (k *Kagome) Lookup(word string) (model.DictionaryEntry, deinflect.Class, bool) {
	if v, ok := k.cache.Load(word); ok {
		r := v.(result)
		return r.entry, r.class, r.ok
	}
	r := k.lookup(word)
	k.cache.Store(word, r)
	return r.entry, r.class, r.ok
}

func (k *Kagome) lookup(word string) result {
	if word == "" {
		return result{}
	}
	toks := k.t.Tokenize(word)
	if len(toks) != 1 {
		return result{}
	}
	kt := toks[0]
	if kt.Class == tokenizer.UNKNOWN || kt.Surface != word {
		return result{}
	}
	if base, ok := kt.BaseForm(); !ok || base != word {
		return result{}
	}
	conj, _ := kt.InflectionalType()
	pos := kt.POS()
	reading, _ := kt.Reading()
	if reading == "*" {
		reading = ""
	}
	class := ClassOf(pos, conj)
	return result{
		entry: model.DictionaryEntry{
			Source:  k.source,
			Lemma:   word,
			Reading: kana.KatakanaToHiragana(reading),
			POS:     strings.Join(pos, ","),
			Classes: class.Names(),
		},
		class: class,
		ok:    true,
	}
}

// ClassOf maps IPA or UniDic part of speech and conjugation type onto a
// word class. Words that do not inflect get 0.
func ClassOf(pos []string, conj string) deinflect.Class {
	switch {
	case strings.Contains(conj, "一段"):
		return deinflect.V1
	case strings.HasPrefix(conj, "五段"):
		return deinflect.V5
	case strings.HasPrefix(conj, "サ変・−ズル"):
		return deinflect.VZ
	case strings.HasPrefix(conj, "サ変"), strings.HasPrefix(conj, "サ行変格"):
		return deinflect.VS
	case strings.HasPrefix(conj, "カ変"), strings.HasPrefix(conj, "カ行変格"):
		return deinflect.VK
	case strings.HasPrefix(conj, "形容詞"):
		return deinflect.AdjI
	}
	if len(pos) > 0 && pos[0] == "形容詞" {
		return deinflect.AdjI
	}
	return 0
}
