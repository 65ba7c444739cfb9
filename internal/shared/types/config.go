package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Profiles []string `json:"profiles" yaml:"profiles" toml:"profiles"`
	JSON     bool     `json:"json" yaml:"json" toml:"json"`
	Verbose  bool     `json:"verbose" yaml:"verbose" toml:"verbose"`
}
