package domain

import "go.trai.ch/zerr"

var (
	// ErrVersionUndeterminable is returned when no milestone can be derived from the version file.
	ErrVersionUndeterminable = zerr.New("cannot determine milestone from version file")

	// ErrVersionFileRead is returned when the version file cannot be opened or read.
	ErrVersionFileRead = zerr.New("failed to read version file")

	// ErrVersionLineMalformed is returned when a version file line is not of the form KEY=VALUE.
	ErrVersionLineMalformed = zerr.New("malformed version line, expected KEY=VALUE")

	// ErrVersionMajorMissing is returned when the version file has no MAJOR key.
	ErrVersionMajorMissing = zerr.New("version file has no MAJOR key")

	// ErrVersionMajorInvalid is returned when the MAJOR value is not a positive integer.
	ErrVersionMajorInvalid = zerr.New("MAJOR must be a positive integer")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a required config field is empty.
	ErrInvalidConfig = zerr.New("invalid generator configuration")

	// ErrInvalidMilestoneCount is returned when fewer than one milestone is requested.
	ErrInvalidMilestoneCount = zerr.New("milestone count must be at least 1")

	// ErrMilestoneWindowInvalid is returned when the requested milestones would reach below milestone 1.
	ErrMilestoneWindowInvalid = zerr.New("milestone window reaches below milestone 1")

	// ErrRenderFailed is returned when a fragment template cannot be executed.
	ErrRenderFailed = zerr.New("failed to render fragment")

	// ErrArtifactWriteFailed is returned when a generated artifact cannot be written.
	ErrArtifactWriteFailed = zerr.New("failed to write generated file")

	// ErrArtifactDirCreateFailed is returned when the parent directory of an artifact cannot be created.
	ErrArtifactDirCreateFailed = zerr.New("failed to create output directory")

	// ErrArtifactsStale is returned in check mode when generated files differ from disk.
	ErrArtifactsStale = zerr.New("generated files are out of date")
)
