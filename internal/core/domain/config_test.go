package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/unexpire/internal/core/domain"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*domain.Config)
		errContains string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*domain.Config) {},
		},
		{
			name:        "zero milestones",
			mutate:      func(c *domain.Config) { c.MilestoneCount = 0 },
			errContains: domain.ErrInvalidMilestoneCount.Error(),
		},
		{
			name:        "empty header",
			mutate:      func(c *domain.Config) { c.HeaderInclude = "" },
			errContains: domain.ErrInvalidConfig.Error(),
		},
		{
			name:        "header with quote",
			mutate:      func(c *domain.Config) { c.HeaderInclude = `gen/"x.h` },
			errContains: domain.ErrInvalidConfig.Error(),
		},
		{
			name:        "header with newline",
			mutate:      func(c *domain.Config) { c.HeaderInclude = "gen/x.h\n#include <evil>" },
			errContains: domain.ErrInvalidConfig.Error(),
		},
		{
			name:   "qualified namespace",
			mutate: func(c *domain.Config) { c.Namespace = "chrome::flags_ui" },
		},
		{
			name:        "namespace with space",
			mutate:      func(c *domain.Config) { c.Namespace = "a b" },
			errContains: domain.ErrInvalidConfig.Error(),
		},
		{
			name:        "namespace starting with digit",
			mutate:      func(c *domain.Config) { c.Namespace = "9flags" },
			errContains: domain.ErrInvalidConfig.Error(),
		},
		{
			name:        "namespace with dangling qualifier",
			mutate:      func(c *domain.Config) { c.Namespace = "flags::" },
			errContains: domain.ErrInvalidConfig.Error(),
		},
		{
			name:        "empty namespace",
			mutate:      func(c *domain.Config) { c.Namespace = "" },
			errContains: domain.ErrInvalidConfig.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.errContains == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestArtifactKind_String(t *testing.T) {
	assert.Equal(t, "features-impl", domain.ArtifactFeaturesImpl.String())
	assert.Equal(t, "features-header", domain.ArtifactFeaturesHeader.String())
	assert.Equal(t, "flags-fragment", domain.ArtifactFlagsFragment.String())
	assert.Equal(t, "unknown", domain.ArtifactKind(42).String())
}
