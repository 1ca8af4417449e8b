package domain

const (
	// VersionMajorKey is the version descriptor key holding the upcoming milestone.
	VersionMajorKey = "MAJOR"

	// DefaultMilestoneCount is how many trailing milestones get unexpiry support.
	DefaultMilestoneCount = 2

	// DefaultHeaderInclude is the logical path of the generated header.
	DefaultHeaderInclude = "chrome/browser/unexpire_flags_gen.h"

	// DefaultNamespace is the namespace enclosing the generated declarations.
	DefaultNamespace = "flags"

	// FeatureNamePrefix prefixes the milestone number in unexpire feature names.
	FeatureNamePrefix = "UnexpireFlagsM"

	// FlagNamePrefix prefixes the milestone number in unexpire flag identifiers.
	FlagNamePrefix = "temporary-unexpire-flags-m"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for generated files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)
