package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is consulted when --config is not given. A missing file
// at this location is not an error.
const DefaultConfigPath = "~/.config/namemate/config.yaml"

// fileConfig mirrors config.yaml. It is seeded from the current Config so
// keys absent from the file keep their defaults.
type fileConfig struct {
	Directory     string        `yaml:"directory"`
	TestBatchSize int           `yaml:"test_batch_size"`
	PreviewChars  int           `yaml:"preview_chars"`
	Journal       string        `yaml:"journal"`
	Languages     []string      `yaml:"languages"`
	LLM           LLMConfig     `yaml:"llm"`
	Naming        NamingConfig  `yaml:"naming"`
	Extract       ExtractConfig `yaml:"extract"`
}

// LoadFile overlays the YAML file at path onto cfg. ${VAR} references are
// expanded from the environment before parsing. When path is empty the
// default location is tried and silently skipped if absent.
func LoadFile(cfg *Config, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}
	resolved, err := ExpandPath(path)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	if err := applyYAML(cfg, []byte(os.ExpandEnv(string(raw)))); err != nil {
		return fmt.Errorf("parse config file %s: %w", resolved, err)
	}
	cfg.ConfigFile = resolved
	return nil
}

func applyYAML(cfg *Config, data []byte) error {
	fc := fileConfig{
		Directory:     cfg.Directory,
		TestBatchSize: cfg.TestBatchSize,
		PreviewChars:  cfg.PreviewChars,
		Journal:       cfg.JournalPath,
		Languages:     cfg.Languages,
		LLM:           cfg.LLM,
		Naming:        cfg.Naming,
		Extract:       cfg.Extract,
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}
	cfg.Directory = fc.Directory
	cfg.TestBatchSize = fc.TestBatchSize
	cfg.PreviewChars = fc.PreviewChars
	cfg.JournalPath = fc.Journal
	cfg.Languages = fc.Languages
	cfg.LLM = fc.LLM
	cfg.Naming = fc.Naming
	cfg.Extract = fc.Extract
	return nil
}

// ExpandPath resolves a leading "~" to the user's home directory. Other
// paths are returned cleaned but otherwise unchanged.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return filepath.Clean(expanded), nil
}
