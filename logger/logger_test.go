package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, LogJSON(dir, "abc_forest", map[string]int{"candidates": 3}))

	b, err := os.ReadFile(filepath.Join(dir, "abc_forest.json"))
	require.NoError(t, err)
	var got map[string]int
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, 3, got["candidates"])

	_, err = os.Stat(filepath.Join(dir, "abc_forest.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestLogJSONStaysInDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, LogJSON(dir, "../../escape", 1))
	_, err := os.Stat(filepath.Join(dir, "escape.json"))
	assert.NoError(t, err)
}

func TestLogJSONUnmarshalable(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, LogJSON(dir, "bad", make(chan int)))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, files, "failed writes leave no .tmp behind")
}

func TestLogJSONMatchesEncode(t *testing.T) {
	v := map[string]string{"surface": "食べました", "note": "a<b & c>d"}
	dir := t.TempDir()
	require.NoError(t, LogJSON(dir, "same", v))

	var want bytes.Buffer
	require.NoError(t, Encode(&want, v))
	got, err := os.ReadFile(filepath.Join(dir, "same.json"))
	require.NoError(t, err)
	assert.Equal(t, want.String(), string(got))
	assert.Contains(t, string(got), "a<b & c>d")
	assert.Contains(t, string(got), "\n  \"note\"")
}

func TestInitLogs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0o644))

	require.NoError(t, InitLogs(dir))

	_, err := os.Stat(filepath.Join(dir, "old.json"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "keep.txt"))
	assert.NoError(t, err)

	require.NoError(t, InitLogs(filepath.Join(dir, "new")))
	_, err = os.Stat(filepath.Join(dir, "new"))
	assert.NoError(t, err)
}
