package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// namespacePattern matches an identifier, optionally qualified with "::" parts.
var namespacePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(::[A-Za-z_][A-Za-z0-9_]*)*$`)

// Config holds the tunable parts of the generated output.
type Config struct {
	// MilestoneCount is how many trailing milestones get an unexpire feature.
	MilestoneCount int
	// HeaderInclude is the logical include path of the generated header.
	HeaderInclude string
	// Namespace encloses the generated declarations.
	Namespace string
}

// DefaultConfig returns the configuration that reproduces the canonical output.
func DefaultConfig() Config {
	return Config{
		MilestoneCount: DefaultMilestoneCount,
		HeaderInclude:  DefaultHeaderInclude,
		Namespace:      DefaultNamespace,
	}
}

// Validate checks that the configuration can drive the generators.
func (c Config) Validate() error {
	if c.MilestoneCount < 1 {
		return zerr.With(ErrInvalidMilestoneCount, "milestones", c.MilestoneCount)
	}
	if c.HeaderInclude == "" {
		return zerr.With(ErrInvalidConfig, "field", "header")
	}
	if strings.ContainsAny(c.HeaderInclude, "\"\r\n") {
		err := zerr.With(ErrInvalidConfig, "field", "header")
		return zerr.With(err, "value", c.HeaderInclude)
	}
	if c.Namespace == "" {
		return zerr.With(ErrInvalidConfig, "field", "namespace")
	}
	if !namespacePattern.MatchString(c.Namespace) {
		err := zerr.With(ErrInvalidConfig, "field", "namespace")
		return zerr.With(err, "value", c.Namespace)
	}
	return nil
}
