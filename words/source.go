package words

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Normalize trims surrounding whitespace and lower-cases s — the
// canonical form every source in this package emits.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FileSource reads words from a newline-delimited dictionary file.
// Each call to Words re-opens and re-reads the file (the source is
// restartable); entries are normalized and blank lines are dropped.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource over the given file path. The file
// is not touched until Words is called.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Words returns the normalized, non-blank entries of the file in file
// order. Open and read failures return an error; the processor wraps it
// as an ingestion failure.
func (s *FileSource) Words() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", s.path, err)
	}
	defer f.Close()

	var out []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if w := Normalize(scanner.Text()); w != "" {
			out = append(out, w)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", s.path, err)
	}

	return out, nil
}

// SliceSource serves an in-memory word list. Entries are normalized on
// every Words call, blanks dropped, original slice left untouched.
type SliceSource []string

// Words returns the normalized, non-blank entries in slice order.
func (s SliceSource) Words() ([]string, error) {
	out := make([]string, 0, len(s))
	for _, raw := range s {
		if w := Normalize(raw); w != "" {
			out = append(out, w)
		}
	}

	return out, nil
}
