package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openkraft/skillkraft/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the per-bundle config file.
const FileName = ".skillkraft.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .skillkraft.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .skillkraft.yaml from bundlePath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(bundlePath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(bundlePath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return cfg, nil
}
