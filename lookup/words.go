package lookup

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"jpdeinflect/deinflect"
	"jpdeinflect/model"
)

// Word is one entry of a word list file:
//
//	# words.yaml
//	- {lemma: 食べる, reading: たべる, classes: [v1]}
//	- {lemma: 本}
type Word struct {
	Lemma   string   `yaml:"lemma"`
	Reading string   `yaml:"reading,omitempty"`
	Classes []string `yaml:"classes,omitempty,flow"`
}

type wordEntry struct {
	entry model.DictionaryEntry
	class deinflect.Class
}

// Words is an in-memory lexicon.
type Words map[string]wordEntry

// NewWords builds a lexicon from words. Later duplicates merge their classes
// into the first entry and fill in its reading if it has none.
func NewWords(source string, words []Word) (Words, error) {
	ws := make(Words, len(words))
	for i, w := range words {
		if w.Lemma == "" {
			return nil, fmt.Errorf("word %d: empty lemma", i)
		}
		var class deinflect.Class
		for _, name := range w.Classes {
			c, err := deinflect.ParseClass(name)
			if err != nil {
				return nil, fmt.Errorf("word %d (%s): %w", i, w.Lemma, err)
			}
			class |= c
		}
		entry := model.DictionaryEntry{Source: source, Lemma: w.Lemma, Reading: w.Reading}
		if prev, ok := ws[w.Lemma]; ok {
			class |= prev.class
			entry = prev.entry
			if entry.Reading == "" {
				entry.Reading = w.Reading
			}
		}
		entry.Classes = class.Names()
		ws[w.Lemma] = wordEntry{entry: entry, class: class}
	}
	return ws, nil
}

// LoadWords reads a YAML word list.
func LoadWords(r io.Reader, source string) (Words, error) {
	var words []Word
	if err := yaml.NewDecoder(r).Decode(&words); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode word list: %w", err)
	}
	return NewWords(source, words)
}

// LoadWordsFile reads a YAML word list from path.
func LoadWordsFile(path string) (Words, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadWords(f, path)
}

func (ws Words) Lookup(word string) (model.DictionaryEntry, deinflect.Class, bool) {
	w, ok := ws[word]
	return w.entry, w.class, ok
}
