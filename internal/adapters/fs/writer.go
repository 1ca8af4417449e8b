// Package fs implements filesystem adapters for generated artifacts.
package fs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/unexpire/internal/core/domain"
	"go.trai.ch/unexpire/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactWriter = (*Writer)(nil)

// Writer implements ports.ArtifactWriter. It compares generated content with the file on
// disk and only writes when they differ, so unchanged outputs keep their timestamps.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Digest returns the xxhash64 of content as 16 hex digits.
func Digest(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// IsStale reports whether the file at path differs from content.
// Any read failure, including a missing file, counts as stale.
func (w *Writer) IsStale(path string, content []byte) bool {
	existing, err := os.ReadFile(path) //nolint:gosec // Path is supplied by the build rule
	if err != nil {
		return true
	}
	return !bytes.Equal(existing, content)
}

// WriteIfStale writes content to path unless the file already holds exactly content.
func (w *Writer) WriteIfStale(path string, content []byte) (domain.WriteResult, error) {
	result := domain.WriteResult{
		Path:   path,
		Digest: Digest(content),
	}

	if !w.IsStale(path, content) {
		return result, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return result, zerr.With(zerr.Wrap(err, domain.ErrArtifactDirCreateFailed.Error()), "path", dir)
		}
	}

	//nolint:gosec // Generated sources are world-readable like any checked-in source
	if err := os.WriteFile(path, content, domain.FilePerm); err != nil {
		return result, zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}

	result.Written = true
	return result, nil
}
