package analyze

import (
	"context"
	"unicode/utf8"

	"jpdeinflect/deinflect"
	"jpdeinflect/ingest"
	"jpdeinflect/kana"
	"jpdeinflect/lookup"
	"jpdeinflect/model"
	"jpdeinflect/tokenize"
)

// DefaultMaxLen bounds the words Scan tries, in runes.
const DefaultMaxLen = 12

// Analysis is the result of analyzing one sentence.
type Analysis struct {
	SentenceID string        `json:"sentence_id"`
	Text       string        `json:"text"`
	TokenCount int           `json:"token_count"`
	Tokens     []model.Token `json:"tokens"`
	Matches    []model.Match `json:"matches,omitempty"`
}

// Forest converts the candidates of d to their JSON form.
func Forest(d *deinflect.Deinflections) model.Forest {
	f := model.Forest{Word: d.Word(), Candidates: make([]model.Candidate, 0, d.Len())}
	for id := range d.IDs() {
		f.Candidates = append(f.Candidates, candidate(d, id))
	}
	return f
}

// Confirmed is Forest restricted to the candidates lex knows.
func Confirmed(d *deinflect.Deinflections, lex lookup.Lexicon) model.Forest {
	hits := lookup.Filter(lex, d)
	f := model.Forest{Word: d.Word(), Candidates: make([]model.Candidate, 0, len(hits))}
	for _, h := range hits {
		c := candidate(d, h.ID)
		c.Entry = &h.Entry
		f.Candidates = append(f.Candidates, c)
	}
	return f
}

func candidate(d *deinflect.Deinflections, id deinflect.ID) model.Candidate {
	data := d.Data(id)
	c := model.Candidate{
		ID:      int(id),
		Text:    d.String(id),
		Classes: data.Classes.Names(),
		Reasons: data.Reasons.Names(),
	}
	if p, ok := data.Parent(); ok {
		parent := int(p)
		c.Parent = &parent
	}
	return c
}

// Scan finds dictionary words in text, longest first. At each position it
// deinflects the run of Japanese characters there, up to maxLen runes, and
// takes the longest prefix with a candidate lex confirms. Scanning resumes
// after the match, or one rune later if nothing matched. Without a lexicon
// nothing can be confirmed and Scan returns nil.
func Scan(ix *deinflect.Index, text string, lex lookup.Lexicon, maxLen int) []model.Match {
	if lex == nil {
		return nil
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	runes := []rune(text)
	var matches []model.Match
	for i := 0; i < len(runes); {
		end := i
		for end < len(runes) && end-i < maxLen && kana.IsJapanese(runes[end]) {
			end++
		}
		if end == i {
			i++
			continue
		}
		m, ok := longest(ix, string(runes[i:end]), lex)
		if !ok {
			i++
			continue
		}
		m.Start = i
		m.End = i + utf8.RuneCountInString(m.Surface)
		matches = append(matches, m)
		i = m.End
	}
	return matches
}

// longest returns a match for the longest prefix of window with a confirmed
// candidate. Forests come longest prefix first.
func longest(ix *deinflect.Index, window string, lex lookup.Lexicon) (model.Match, bool) {
	for _, d := range ix.DeinflectText(window) {
		hits := lookup.Filter(lex, d)
		if len(hits) == 0 {
			continue
		}
		h := hits[0]
		return model.Match{
			Surface: d.Word(),
			Lemma:   d.String(h.ID),
			Reasons: d.Data(h.ID).Reasons.Names(),
			Entry:   &h.Entry,
		}, true
	}
	return model.Match{}, false
}

// Annotate labels tokens whose surface differs from their lemma with the
// reasons of the first candidate that leads back to the lemma. Tokens with
// no such candidate are left alone.
func Annotate(ix *deinflect.Index, tokens []model.Token) []model.Token {
	for i := range tokens {
		tk := &tokens[i]
		if tk.Lemma == "" || tk.Lemma == tk.Text {
			continue
		}
		d := ix.Deinflect(tk.Text)
		for id := range d.IDs() {
			if d.String(id) != tk.Lemma {
				continue
			}
			r := d.Data(id).Reasons
			tk.Reasons = r.Names()
			tk.ConjugationLabel = r.String()
			break
		}
	}
	return tokens
}

// Analyze tokenizes a sentence, merges verbs with their auxiliaries,
// annotates them and scans the text for dictionary words. lex may be nil,
// in which case no scan is done.
func Analyze(ctx context.Context, ix *deinflect.Index, dict string, sentence ingest.Sentence, lex lookup.Lexicon) (Analysis, error) {
	tokens, err := tokenize.TokenizeWith(ctx, dict, sentence.Text)
	if err != nil {
		return Analysis{}, err
	}
	merged := Annotate(ix, tokenize.MergeVerbAuxiliaries(tokens))

	a := Analysis{
		SentenceID: sentence.ID,
		Text:       sentence.Text,
		TokenCount: len(merged),
		Tokens:     merged,
	}
	if lex != nil {
		if err := ctx.Err(); err != nil {
			return Analysis{}, err
		}
		a.Matches = Scan(ix, sentence.Text, lex, DefaultMaxLen)
	}
	return a, nil
}
