package domain

// ArtifactKind identifies which generated fragment an artifact holds.
type ArtifactKind uint8

const (
	// ArtifactFeaturesImpl is the implementation unit defining the unexpire features.
	ArtifactFeaturesImpl ArtifactKind = iota
	// ArtifactFeaturesHeader is the header unit declaring the unexpire features.
	ArtifactFeaturesHeader
	// ArtifactFlagsFragment is the flag-table fragment spliced into the flag entries table.
	ArtifactFlagsFragment
)

// String returns a short human-readable name for the kind.
func (k ArtifactKind) String() string {
	switch k {
	case ArtifactFeaturesImpl:
		return "features-impl"
	case ArtifactFeaturesHeader:
		return "features-header"
	case ArtifactFlagsFragment:
		return "flags-fragment"
	default:
		return "unknown"
	}
}

// Artifact is a generated text blob and the path it is persisted to.
type Artifact struct {
	Kind    ArtifactKind
	Path    string
	Content []byte
}

// OutputPaths holds the destinations of the three generated artifacts.
type OutputPaths struct {
	FeaturesImpl   string
	FeaturesHeader string
	FlagsFragment  string
}

// WriteResult describes the outcome of a stale-guarded write.
type WriteResult struct {
	// Path is the destination that was compared against.
	Path string
	// Digest is the xxhash64 of the generated content, formatted as 16 hex digits.
	Digest string
	// Written is true when the file on disk differed and was replaced.
	Written bool
}
