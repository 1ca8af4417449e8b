package ports

import "go.trai.ch/unexpire/internal/core/domain"

// ArtifactWriter persists generated artifacts without touching files that are already current.
//
//go:generate mockgen -source=artifact_writer.go -destination=mocks/mock_artifact_writer.go -package=mocks
type ArtifactWriter interface {
	// IsStale reports whether the file at path differs from content.
	// A missing or unreadable file is stale.
	IsStale(path string, content []byte) bool

	// WriteIfStale writes content to path unless the file already holds exactly content.
	WriteIfStale(path string, content []byte) (domain.WriteResult, error)
}
