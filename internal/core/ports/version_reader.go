// Package ports defines the core interfaces for the application.
package ports

// VersionReader extracts the major version number from a version descriptor.
//
//go:generate mockgen -source=version_reader.go -destination=mocks/mock_version_reader.go -package=mocks
type VersionReader interface {
	// ReadMajor returns the integer value of the MAJOR key in the descriptor at path.
	// It returns an error if the file cannot be read or has no usable MAJOR line.
	ReadMajor(path string) (int, error)
}
