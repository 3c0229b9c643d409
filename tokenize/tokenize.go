package tokenize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"jpdeinflect/model"
)

// Token represents a token / morpheme produced by the tokenizer.
type Token = model.Token

// DefaultDict is the dictionary used by Tokenize.
const DefaultDict = "ipa"

// ErrUnknownDict is returned for a dictionary name other than "ipa" or "uni".
var ErrUnknownDict = errors.New("unknown dictionary")

var dicts = map[string]func() *dict.Dict{
	"ipa": ipa.Dict,
	"uni": uni.Dict,
}

type lazyTokenizer struct {
	once sync.Once
	t    *tokenizer.Tokenizer
	err  error
}

// Dictionaries are large, so each tokenizer is built on first use and shared.
var tokenizers = map[string]*lazyTokenizer{
	"ipa": {},
	"uni": {},
}

// Tokenizer returns the shared kagome tokenizer for a dictionary name.
// BOS/EOS tokens are omitted.
func Tokenizer(name string) (*tokenizer.Tokenizer, error) {
	lt, ok := tokenizers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDict, name)
	}
	lt.once.Do(func() {
		lt.t, lt.err = tokenizer.New(dicts[name](), tokenizer.OmitBosEos())
	})
	return lt.t, lt.err
}

// Tokenize uses kagome to produce tokens for the input text (normal mode).
func Tokenize(ctx context.Context, text string) ([]Token, error) {
	return TokenizeWith(ctx, DefaultDict, text)
}

// TokenizeWith tokenizes text with the named dictionary.
func TokenizeWith(ctx context.Context, name, text string) ([]Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	t, err := Tokenizer(name)
	if err != nil {
		return nil, err
	}
	return Convert(t.Tokenize(text)), nil
}

// TokenizeModes runs kagome.Analyze in Normal, Search and Extended modes and returns
// a map from mode name to the resulting tokens. Useful to compare segmentations.
func TokenizeModes(ctx context.Context, name, text string) (map[string][]Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t, err := Tokenizer(name)
	if err != nil {
		return nil, err
	}
	res := make(map[string][]Token, 3)
	if text == "" {
		return res, nil
	}
	res["normal"] = Convert(t.Analyze(text, tokenizer.Normal))
	res["search"] = Convert(t.Analyze(text, tokenizer.Search))
	res["extended"] = Convert(t.Analyze(text, tokenizer.Extended))
	return res, nil
}

// Convert maps kagome tokens onto model tokens. Unknown words get their
// surface as lemma.
func Convert(ktoks []tokenizer.Token) []Token {
	out := make([]Token, 0, len(ktoks))
	for _, kt := range ktoks {
		lemma, _ := kt.BaseForm()
		if lemma == "" || lemma == "*" {
			lemma = kt.Surface
		}
		reading, _ := kt.Reading()
		pron, _ := kt.Pronunciation()
		infType, _ := kt.InflectionalType()
		infForm, _ := kt.InflectionalForm()
		out = append(out, Token{
			Text:           kt.Surface,
			Lemma:          lemma,
			POS:            strings.Join(kt.POS(), ","),
			Start:          kt.Start,
			End:            kt.End,
			Reading:        star(reading),
			Pronunciation:  star(pron),
			TokenID:        kt.ID,
			InflectionType: star(infType),
			InflectionForm: star(infForm),
		})
	}
	return out
}

// star drops the "*" placeholder dictionaries use for empty features.
func star(s string) string {
	if s == "*" {
		return ""
	}
	return s
}

// isAuxiliary reports whether a token can extend a preceding verb or adjective.
func isAuxiliary(tk Token) bool {
	return strings.HasPrefix(tk.POS, "助動詞") ||
		strings.HasPrefix(tk.POS, "動詞,非自立") ||
		strings.HasPrefix(tk.POS, "動詞,接尾") ||
		strings.HasPrefix(tk.POS, "形容詞,非自立") ||
		(strings.HasPrefix(tk.POS, "助詞,接続助詞") && (tk.Text == "て" || tk.Text == "で" || tk.Text == "ば"))
}

// MergeVerbAuxiliaries scans tokens and merges verb+auxiliary sequences into a single token.
// Adjectives are merged the same way so that 高かった becomes one token.
func MergeVerbAuxiliaries(tokens []Token) []Token {
	var out []Token
	i := 0
	for i < len(tokens) {
		tk := tokens[i]
		if strings.HasPrefix(tk.POS, "動詞") || strings.HasPrefix(tk.POS, "形容詞") {
			// collect auxiliaries following the head
			auxs := []Token{}
			indices := []int{tk.Start}
			j := i + 1
			for j < len(tokens) && isAuxiliary(tokens[j]) {
				auxs = append(auxs, tokens[j])
				indices = append(indices, tokens[j].Start)
				j++
			}
			if len(auxs) > 0 {
				merged := tk
				conjugation := []string{}
				for _, aux := range auxs {
					merged.Text += aux.Text
					merged.Reading += aux.Reading
					merged.Pronunciation += aux.Pronunciation
					conjugation = append(conjugation, aux.Lemma)
				}
				merged.End = auxs[len(auxs)-1].End
				merged.Conjugation = conjugation
				merged.Auxiliaries = auxs
				merged.MergedIndices = indices
				out = append(out, merged)
				i = j
				continue
			}
		}
		out = append(out, tk)
		i++
	}
	return out
}
