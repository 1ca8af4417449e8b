// Package app implements the application layer for unexpire-flags.
package app

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/unexpire/internal/core/domain"
	"go.trai.ch/unexpire/internal/core/ports"
	"go.trai.ch/unexpire/internal/engine/codegen"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	reader       ports.VersionReader
	writer       ports.ArtifactWriter
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	reader ports.VersionReader,
	writer ports.ArtifactWriter,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		reader:       reader,
		writer:       writer,
		logger:       log,
	}
}

// GenerateOptions configuration for the Generate method.
type GenerateOptions struct {
	// VersionFile is the version descriptor holding the MAJOR key.
	VersionFile string
	// Outputs are the destinations of the three generated files.
	Outputs domain.OutputPaths
	// ConfigPath is an optional generator configuration file.
	ConfigPath string
	// Program is written into the "generated by" banner.
	Program string
	// MilestoneCount overrides the configured count when non-zero.
	MilestoneCount int
	// Check compares the generated files against disk without writing.
	Check bool
}

// Generate reads the version descriptor, renders the unexpire fragments for the recent
// milestones, and persists each one that differs from what is on disk.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) error {
	// 1. Resolve configuration
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if opts.MilestoneCount != 0 {
		cfg.MilestoneCount = opts.MilestoneCount
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	// 2. Determine the milestones
	major, err := a.reader.ReadMajor(opts.VersionFile)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrVersionUndeterminable.Error()), "version_file", opts.VersionFile)
	}
	latest := domain.ShippingMilestone(major)
	if err := domain.CheckWindow(latest, cfg.MilestoneCount); err != nil {
		return zerr.With(err, "version_file", opts.VersionFile)
	}
	set := domain.RecentMilestones(latest, cfg.MilestoneCount)

	// 3. Render
	gen := codegen.NewGenerator(codegen.Options{
		Program:       opts.Program,
		HeaderInclude: cfg.HeaderInclude,
		Namespace:     cfg.Namespace,
	})
	artifacts, err := gen.Artifacts(set, opts.Outputs)
	if err != nil {
		return err
	}

	// 4. Persist or verify
	if opts.Check {
		return a.check(artifacts)
	}
	return a.write(ctx, artifacts)
}

func (a *App) write(ctx context.Context, artifacts []domain.Artifact) error {
	for _, artifact := range artifacts {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := a.writer.WriteIfStale(artifact.Path, artifact.Content)
		if err != nil {
			return zerr.With(err, "artifact", artifact.Kind.String())
		}

		if result.Written {
			a.logger.Info(fmt.Sprintf("updated %s [%s]", result.Path, result.Digest))
		} else {
			a.logger.Info(fmt.Sprintf("up to date %s", result.Path))
		}
	}
	return nil
}

func (a *App) check(artifacts []domain.Artifact) error {
	var stale []string
	for _, artifact := range artifacts {
		if a.writer.IsStale(artifact.Path, artifact.Content) {
			a.logger.Warn(fmt.Sprintf("out of date %s", artifact.Path))
			stale = append(stale, artifact.Path)
			continue
		}
		a.logger.Info(fmt.Sprintf("up to date %s", artifact.Path))
	}

	if len(stale) > 0 {
		return zerr.With(domain.ErrArtifactsStale, "paths", strings.Join(stale, ", "))
	}
	return nil
}
