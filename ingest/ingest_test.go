package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestSentence(t *testing.T) {
	s, err := IngestSentence("  食べました。\n")
	require.NoError(t, err)
	assert.Equal(t, "食べました。", s.Text)
	assert.Len(t, s.ID, 16)
	assert.False(t, s.CreatedAt.IsZero())

	other, err := IngestSentence("食べました。")
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, other.ID)
}

func TestIngestEmpty(t *testing.T) {
	_, err := IngestSentence(" \t\n")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"half-width katakana", "ﾀﾍﾞﾙ", "タベル"},
		{"full-width ascii", "ＡＢＣ１２３", "ABC123"},
		{"ideographic space", "　見る　", "見る"},
		{"unchanged", "食べる", "食べる"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("昨日は寿司を食べました。美味しかった！\n本当？また行きたい")
	texts := make([]string, len(got))
	for i, s := range got {
		texts[i] = s.Text
	}
	assert.Equal(t, []string{"昨日は寿司を食べました。", "美味しかった!", "本当?", "また行きたい"}, texts)

	assert.Empty(t, SplitSentences("\n \n"))
}
