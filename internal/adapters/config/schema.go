package config

// File represents the structure of the generator configuration file.
// Unset keys keep their defaults.
type File struct {
	Milestones *int   `yaml:"milestones"`
	Header     string `yaml:"header"`
	Namespace  string `yaml:"namespace"`
}
