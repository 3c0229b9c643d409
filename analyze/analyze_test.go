package analyze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jpdeinflect/deinflect"
	"jpdeinflect/ingest"
	"jpdeinflect/lookup"
	"jpdeinflect/model"
)

func words(t *testing.T, ws ...lookup.Word) lookup.Words {
	t.Helper()
	lex, err := lookup.NewWords("test", ws)
	require.NoError(t, err)
	return lex
}

func TestForest(t *testing.T) {
	f := Forest(deinflect.FromWord("食べました"))
	assert.Equal(t, "食べました", f.Word)
	require.NotEmpty(t, f.Candidates)

	root := f.Candidates[0]
	assert.Equal(t, "食べました", root.Text)
	assert.Nil(t, root.Parent)
	assert.Empty(t, root.Reasons)

	var masu model.Candidate
	for _, c := range f.Candidates {
		if c.Text == "食べます" && len(c.Classes) == 1 && c.Classes[0] == "masu" {
			masu = c
		}
	}
	require.NotNil(t, masu.Parent)
	assert.Equal(t, 0, *masu.Parent)
	assert.Equal(t, []string{"past"}, masu.Reasons)
}

func TestConfirmed(t *testing.T) {
	lex := words(t, lookup.Word{Lemma: "食べる", Reading: "たべる", Classes: []string{"v1"}})
	f := Confirmed(deinflect.FromWord("食べました"), lex)
	require.Len(t, f.Candidates, 1)

	c := f.Candidates[0]
	assert.Equal(t, "食べる", c.Text)
	assert.Equal(t, []string{"past", "polite"}, c.Reasons)
	require.NotNil(t, c.Entry)
	assert.Equal(t, "たべる", c.Entry.Reading)
}

func TestScan(t *testing.T) {
	lex := words(t,
		lookup.Word{Lemma: "昨日"},
		lookup.Word{Lemma: "寿司"},
		lookup.Word{Lemma: "食べる", Classes: []string{"v1"}},
	)
	got := Scan(deinflect.DefaultIndex(), "昨日、寿司を食べました。", lex, 0)
	require.Len(t, got, 3)

	assert.Equal(t, 0, got[0].Start)
	assert.Equal(t, 2, got[0].End)
	assert.Equal(t, "昨日", got[0].Lemma)
	assert.Empty(t, got[0].Reasons)
	assert.Equal(t, 3, got[1].Start)
	assert.Equal(t, 5, got[1].End)

	m := got[2]
	assert.Equal(t, 6, m.Start)
	assert.Equal(t, 11, m.End)
	assert.Equal(t, "食べました", m.Surface)
	assert.Equal(t, "食べる", m.Lemma)
	assert.Equal(t, []string{"past", "polite"}, m.Reasons)
}

func TestScanPrefersLongest(t *testing.T) {
	lex := words(t,
		lookup.Word{Lemma: "見る", Classes: []string{"v1"}},
		lookup.Word{Lemma: "見せる", Classes: []string{"v1"}},
	)
	got := Scan(deinflect.DefaultIndex(), "見せた", lex, 0)
	require.Len(t, got, 1)
	assert.Equal(t, "見せる", got[0].Lemma)
	assert.Equal(t, "見せた", got[0].Surface)
}

func TestScanMaxLen(t *testing.T) {
	lex := words(t, lookup.Word{Lemma: "食べる", Classes: []string{"v1"}})
	// With four runes only the masu stem 食べ fits.
	got := Scan(deinflect.DefaultIndex(), "食べました", lex, 4)
	require.Len(t, got, 1)
	assert.Equal(t, "食べ", got[0].Surface)

	got = Scan(deinflect.DefaultIndex(), "食べました", lex, 5)
	require.Len(t, got, 1)
	assert.Equal(t, "食べました", got[0].Surface)
}

func TestScanSkipsNonJapanese(t *testing.T) {
	lex := words(t, lookup.Word{Lemma: "見る", Classes: []string{"v1"}})
	got := Scan(deinflect.DefaultIndex(), "abc 見た xyz", lex, 0)
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].Start)
	assert.Equal(t, 6, got[0].End)

	assert.Empty(t, Scan(deinflect.DefaultIndex(), "", lex, 0))
}

func TestScanWithoutLexicon(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Nil(t, Scan(deinflect.DefaultIndex(), "食べました", nil, 0))
	})
}

func TestAnnotate(t *testing.T) {
	tokens := []model.Token{
		{Text: "寿司", Lemma: "寿司"},
		{Text: "食べました", Lemma: "食べる"},
		{Text: "読ませられた", Lemma: "読む"},
		{Text: "見た", Lemma: "見える"},
	}
	got := Annotate(deinflect.DefaultIndex(), tokens)

	assert.Empty(t, got[0].Reasons)
	assert.Equal(t, []string{"past", "polite"}, got[1].Reasons)
	assert.Equal(t, "past, polite", got[1].ConjugationLabel)
	assert.Contains(t, got[2].Reasons, "past")
	assert.Empty(t, got[3].Reasons)
}

func TestAnalyze(t *testing.T) {
	s, err := ingest.IngestSentence("寿司を食べました。")
	require.NoError(t, err)
	lex := words(t, lookup.Word{Lemma: "食べる", Classes: []string{"v1"}})

	a, err := Analyze(context.Background(), deinflect.DefaultIndex(), "ipa", s, lex)
	require.NoError(t, err)
	assert.Equal(t, s.ID, a.SentenceID)
	assert.Equal(t, len(a.Tokens), a.TokenCount)

	var verb model.Token
	for _, tk := range a.Tokens {
		if tk.Lemma == "食べる" {
			verb = tk
		}
	}
	assert.Equal(t, "食べました", verb.Text)
	assert.Equal(t, []string{"past", "polite"}, verb.Reasons)

	require.Len(t, a.Matches, 1)
	assert.Equal(t, "食べる", a.Matches[0].Lemma)
}

func TestAnalyzeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, err := ingest.IngestSentence("見た")
	require.NoError(t, err)
	_, err = Analyze(ctx, deinflect.DefaultIndex(), "ipa", s, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
