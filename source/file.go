package source

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sql-sith/pslkit/mmap"
)

// FileSource reads the dataset text from a local file.
type FileSource struct {
	// Path is the path to the dataset file.
	Path string
}

// String implements [Source.String].
func (s *FileSource) String() string {
	return "file " + s.Path
}

// ReadText implements [Source.ReadText].
func (s *FileSource) ReadText(_ context.Context) (string, error) {
	data, close, err := mmap.ReadFile[string](s.Path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer close()

	if !utf8.ValidString(data) {
		return "", fmt.Errorf("%w: %s", ErrEncoding, s.Path)
	}

	// The mapping is released on return, so hand out a copy.
	return strings.Clone(data), nil
}
