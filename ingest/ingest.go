package ingest

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrEmpty is returned for input with no text after normalization.
var ErrEmpty = errors.New("empty sentence")

// Sentence represents an ingested Japanese sentence and metadata.
type Sentence struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// generateID creates a short random hex id. Falls back to a timestamp string on error.
func generateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}

// Normalize applies NFKC and trims surrounding space. Half-width katakana
// become full-width and full-width ASCII becomes ASCII, so text matches the
// forms the rule table and dictionaries use.
func Normalize(text string) string {
	return strings.TrimSpace(norm.NFKC.String(text))
}

// IngestSentence normalizes text and wraps it in a Sentence.
func IngestSentence(text string) (Sentence, error) {
	normalized := Normalize(text)
	if normalized == "" {
		return Sentence{}, ErrEmpty
	}
	return Sentence{
		ID:        generateID(),
		Text:      normalized,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func isTerminator(r rune) bool {
	switch r {
	case '。', '！', '？', '!', '?', '\n':
		return true
	}
	return false
}

// SplitSentences splits text after each sentence terminator (。！？!? or a
// newline) and ingests the non-empty pieces. Terminators other than newlines
// stay with their sentence.
func SplitSentences(text string) []Sentence {
	var out []Sentence
	start := 0
	for i, r := range text {
		if !isTerminator(r) {
			continue
		}
		end := i + utf8.RuneLen(r)
		if s, err := IngestSentence(text[start:end]); err == nil {
			out = append(out, s)
		}
		start = end
	}
	if s, err := IngestSentence(text[start:]); err == nil {
		out = append(out, s)
	}
	return out
}
