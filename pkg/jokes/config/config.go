package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/jokes/pkg/jokes/hotfix"
	"github.com/cognicore/jokes/pkg/jokes/internalerr"
)

// Config is the on-disk configuration for the joke tooling.
type Config struct {
	TagsFile              string `yaml:"tags_file"`
	ListsDir              string `yaml:"lists_dir"`
	LoadTagLists          bool   `yaml:"load_tag_lists"`
	RemoveObsoleteAliases bool   `yaml:"remove_obsolete_aliases"`
	TraceTriggers         bool   `yaml:"trace_triggers"`
	Workers               int    `yaml:"workers"`
	Database              string `yaml:"database"`
	LogLevel              string `yaml:"log_level"`

	Hotfix hotfix.Plan `yaml:"hotfix"`
	// Conflicts are added after the built-in conflict rules.
	Conflicts []ConflictRule `yaml:"conflicts"`
}

// ConflictRule is the YAML form of tagger.Conflict.
type ConflictRule struct {
	When    []string      `yaml:"when"`
	Drop    []string      `yaml:"drop"`
	Recheck []RecheckRule `yaml:"recheck"`
}

// RecheckRule is the YAML form of tagger.Recheck.
type RecheckRule struct {
	Tag     string   `yaml:"tag"`
	Without string   `yaml:"without"`
	Aliases []string `yaml:"aliases"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		TagsFile:     "etc/tags.txt",
		ListsDir:     "etc/lists",
		LoadTagLists: true,
		Workers:      8,
		Database:     "jokes.db",
		LogLevel:     "info",
		Hotfix: hotfix.Plan{
			TagHasMore: []string{"Death"},
		},
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.TagsFile) == "" {
		errs = append(errs, errors.New("tags_file is required"))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %v", err))
	}
	for i, rule := range c.Conflicts {
		if len(rule.When) == 0 {
			errs = append(errs, fmt.Errorf("conflicts[%d]: when is required", i))
		}
		if len(rule.Drop) == 0 && len(rule.Recheck) == 0 {
			errs = append(errs, fmt.Errorf("conflicts[%d]: nothing to drop or recheck", i))
		}
		for j, rc := range rule.Recheck {
			if rc.Tag == "" || rc.Without == "" {
				errs = append(errs, fmt.Errorf("conflicts[%d].recheck[%d]: tag and without are required", i, j))
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", internalerr.ErrInvalidConfig, errors.Join(errs...))
}
