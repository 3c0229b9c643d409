package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jpdeinflect/deinflect"
	"jpdeinflect/model"
	"jpdeinflect/ruleset"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rulesPath, dictName, lexiconName, logDir, maxLen = "", "ipa", "", "", 12
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func texts(f model.Forest) []string {
	out := make([]string, len(f.Candidates))
	for i, c := range f.Candidates {
		out[i] = c.Text
	}
	return out
}

func TestWordCommand(t *testing.T) {
	out, err := run(t, "word", "食べました", "見た")
	require.NoError(t, err)

	var got []model.Forest
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "食べました", got[0].Word)
	assert.Contains(t, texts(got[0]), "食べる")
	assert.Equal(t, "見た", got[1].Word)
	assert.Contains(t, texts(got[1]), "見る")
}

func TestWordCommandWithLexicon(t *testing.T) {
	words := writeFile(t, "words.yaml", "- {lemma: 食べる, reading: たべる, classes: [v1]}\n")
	logs := filepath.Join(t.TempDir(), "logs")

	out, err := run(t, "word", "--lexicon", words, "--log-dir", logs, "食べました")
	require.NoError(t, err)

	var got []model.Forest
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, []string{"食べる"}, texts(got[0]))
	assert.Equal(t, []string{"past", "polite"}, got[0].Candidates[0].Reasons)

	_, err = os.Stat(filepath.Join(logs, "word_0.json"))
	assert.NoError(t, err)
}

func TestTextCommand(t *testing.T) {
	out, err := run(t, "text", "見た")
	require.NoError(t, err)

	var got []model.Forest
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "見た", got[0].Word)
	assert.Equal(t, "見", got[1].Word)
}

func TestScanCommand(t *testing.T) {
	words := writeFile(t, "words.yaml", "- {lemma: 寿司}\n- {lemma: 食べる, classes: [v1]}\n")
	logs := t.TempDir()
	out, err := run(t, "scan", "--lexicon", words, "--log-dir", logs, "寿司を食べました")
	require.NoError(t, err)

	// The stored result is byte for byte what was printed.
	logged, err := os.ReadFile(filepath.Join(logs, "scan.json"))
	require.NoError(t, err)
	assert.Equal(t, out, string(logged))

	var got []model.Match
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "寿司", got[0].Lemma)
	assert.Equal(t, "食べる", got[1].Lemma)
}

func TestRulesCommandRoundTrip(t *testing.T) {
	out, err := run(t, "rules")
	require.NoError(t, err)

	path := writeFile(t, "rules.yaml", out)
	groups, err := ruleset.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, groups, len(deinflect.Rules()))

	// The dumped table can be fed back in.
	out, err = run(t, "word", "--rules", path, "食べました")
	require.NoError(t, err)
	assert.Contains(t, out, "食べる")
}

func TestBadRules(t *testing.T) {
	path := writeFile(t, "rules.yaml", "groups:\n  - reason: past\n    rules:\n      - {in: '', out: る, rules_in: [], rules_out: [v1]}\n")
	_, err := run(t, "word", "--rules", path, "見た")
	assert.ErrorIs(t, err, deinflect.ErrInvalidRule)
}

func TestUnknownDict(t *testing.T) {
	_, err := run(t, "scan", "--lexicon", "kagome", "--dict", "jumandic", "見た")
	assert.Error(t, err)
}
