// Package artifacts manages the per-paper results tree on disk:
//
//	results/<sanitized_title>/
//	    logs/
//	    processed_text/pages/
//	    processed_text/chunks/
//	    visuals/
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var titleSanitizer = regexp.MustCompile(`[^a-zA-Z0-9_ -]`)

// SanitizeTitle turns a paper title into a filesystem-safe directory name:
// characters outside [a-zA-Z0-9_ -] are removed and spaces become
// underscores.
func SanitizeTitle(title string) string {
	s := titleSanitizer.ReplaceAllString(title, "")
	return strings.ReplaceAll(s, " ", "_")
}

// Layout resolves the directories for one paper's artifacts.
type Layout struct {
	root  string
	title string
}

// NewLayout creates a layout rooted at resultsDir for the given paper title.
func NewLayout(resultsDir, title string) *Layout {
	return &Layout{root: resultsDir, title: SanitizeTitle(title)}
}

// PaperDir returns results/<sanitized_title>.
func (l *Layout) PaperDir() string { return filepath.Join(l.root, l.title) }

// LogsDir returns the per-paper log directory.
func (l *Layout) LogsDir() string { return filepath.Join(l.PaperDir(), "logs") }

// PagesDir returns the directory for human-readable per-page text files.
func (l *Layout) PagesDir() string { return filepath.Join(l.PaperDir(), "processed_text", "pages") }

// ChunksDir returns the directory for per-chunk embedding input files.
func (l *Layout) ChunksDir() string { return filepath.Join(l.PaperDir(), "processed_text", "chunks") }

// VisualsDir returns the directory for extracted images and their metadata.
func (l *Layout) VisualsDir() string { return filepath.Join(l.PaperDir(), "visuals") }

// EnsureAll creates every directory in the layout.
func (l *Layout) EnsureAll() error {
	for _, dir := range []string{l.LogsDir(), l.PagesDir(), l.ChunksDir(), l.VisualsDir()} {
		if err := EnsureDir(dir); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDir creates a directory and its parents if missing.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}

// WriteJSONAtomic writes v as indented JSON via a temp file and rename so a
// crash never leaves a half-written metadata file behind.
func WriteJSONAtomic(path string, v any) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "tmp-*.json")
	if err != nil {
		return fmt.Errorf("create temp json: %w", err)
	}
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode json: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp json: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename temp json: %w", err)
	}
	return nil
}

// WrapText word-wraps s to at most width runes per line. Words longer than
// width get a line of their own.
func WrapText(s string, width int) string {
	if width <= 0 {
		width = 120
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		wLen := len([]rune(w))
		if i == 0 {
			b.WriteString(w)
			lineLen = wLen
			continue
		}
		if lineLen+1+wLen > width {
			b.WriteByte('\n')
			b.WriteString(w)
			lineLen = wLen
			continue
		}
		b.WriteByte(' ')
		b.WriteString(w)
		lineLen += 1 + wLen
	}
	return b.String()
}
