// Package config provides the configuration loader for the unexpire flags generator.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/unexpire/internal/core/domain"
	"go.trai.ch/unexpire/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path and merges it over domain.DefaultConfig.
// An empty path returns the defaults.
func (l *Loader) Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	//nolint:gosec // Path is supplied by the build rule
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if !errors.Is(err, io.EOF) {
			return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
		}
		l.Logger.Warn(fmt.Sprintf("config file %s is empty, using defaults", path))
	}

	merge(&cfg, file)

	if err := cfg.Validate(); err != nil {
		return cfg, zerr.With(err, "path", path)
	}

	return cfg, nil
}

func merge(cfg *domain.Config, file File) {
	if file.Milestones != nil {
		cfg.MilestoneCount = *file.Milestones
	}
	if file.Header != "" {
		cfg.HeaderInclude = file.Header
	}
	if file.Namespace != "" {
		cfg.Namespace = file.Namespace
	}
}
