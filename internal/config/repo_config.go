package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/revbot-io/revbot/internal/core"
)

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParsing  = errors.New("config parsing failed")
)

// ParseRepoConfig parses the contents of a repository's .revbot.yml file.
// Unknown keys are ignored; absent keys keep their defaults.
func ParseRepoConfig(data []byte) (*core.RepoConfig, error) {
	config := core.DefaultRepoConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParsing, err)
	}
	return config, nil
}
