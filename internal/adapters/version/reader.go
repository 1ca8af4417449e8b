// Package version reads the product version descriptor.
package version

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"go.trai.ch/unexpire/internal/core/domain"
	"go.trai.ch/unexpire/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VersionReader = (*Reader)(nil)

// Reader implements ports.VersionReader for line-oriented KEY=VALUE descriptors.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadMajor scans the descriptor at path and returns the value of the first MAJOR line.
// Lines after it are not read.
func (r *Reader) ReadMajor(path string) (int, error) {
	f, err := os.Open(path) //nolint:gosec // Path is supplied by the build rule
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrVersionFileRead.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok || strings.Contains(value, "=") {
			err := zerr.With(domain.ErrVersionLineMalformed, "path", path)
			return 0, zerr.With(err, "line", lineNo)
		}

		if strings.TrimSpace(key) != domain.VersionMajorKey {
			continue
		}

		return parseMajor(path, strings.TrimSpace(value))
	}

	if err := scanner.Err(); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrVersionFileRead.Error()), "path", path)
	}

	return 0, zerr.With(domain.ErrVersionMajorMissing, "path", path)
}

func parseMajor(path, value string) (int, error) {
	major, err := strconv.Atoi(value)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrVersionMajorInvalid.Error()), "path", path)
	}
	if major <= 0 {
		err := zerr.With(domain.ErrVersionMajorInvalid, "path", path)
		return 0, zerr.With(err, "value", value)
	}
	return major, nil
}
