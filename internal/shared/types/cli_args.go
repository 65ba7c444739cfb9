package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	Profiles   []string
	JSON       bool
	Verbose    bool
}
