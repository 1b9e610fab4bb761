package core

// RepoConfig represents the structure of the .revbot.yml file a repository
// may carry at its root.
type RepoConfig struct {
	// Enabled switches reviews for the repository. Absent means enabled.
	Enabled *bool `yaml:"enabled"`

	// Custom instructions appended to the review system prompt.
	CustomInstructions []string `yaml:"custom_instructions"`

	// Exclusion of files based on their extension, on top of the built-in
	// excludes. The leading dot is optional. Example: [".lock", "pb.go"]
	ExcludeExts []string `yaml:"exclude_exts"`
}

// DefaultRepoConfig returns a config with default values.
func DefaultRepoConfig() *RepoConfig {
	return &RepoConfig{
		CustomInstructions: []string{},
		ExcludeExts:        []string{},
	}
}

// IsEnabled reports whether reviews are switched on. Only an explicit
// `enabled: false` turns the agent off.
func (c *RepoConfig) IsEnabled() bool {
	return c == nil || c.Enabled == nil || *c.Enabled
}
