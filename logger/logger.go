// Package logger persists results as JSON files in the same form the CLI
// prints them.
package logger

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

// Encode writes v as two-space indented JSON followed by a newline. Kana and
// symbols such as < and & are written as is.
func Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// InitLogs creates dir if needed and removes the .json files a previous run
// left there. Other files are kept.
func InitLogs(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return err
	}
	for _, f := range files {
		_ = os.Remove(f)
	}
	return nil
}

// LogJSON writes v with Encode to dir/<name>.json. name is reduced to its
// last path element. The file is written under a .tmp name and renamed, so
// a reader never sees it half written.
func LogJSON(dir, name string, v any) (err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	final := filepath.Join(dir, filepath.Base(name)+".json")
	tmp := final + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()
	if err := Encode(f, v); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, final)
}
