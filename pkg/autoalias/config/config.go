// Package config persists user preferences for alias synchronization.
//
// Preferences live in a YAML file, by default
// $XDG_CONFIG_HOME/autoalias/config.yaml, and are validated against an
// embedded CUE schema on load and save.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/autoalias-go/pkg/autoalias"
)

// relPath is the config file location relative to the XDG config home.
const relPath = "autoalias/config.yaml"

const schemaSource = `
#Config: {
	auto_alias_enabled: bool
	max_alias_attempts: int & >=1 & <=100000
	fallback_rows:      int & >=1 & <=1048576
	fallback_columns:   int & >=1 & <=16384
	default_value:      string & !=""
}
`

// ErrInvalidConfig indicates a configuration that fails the schema.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the persisted preferences.
type Config struct {
	AutoAliasEnabled bool   `yaml:"auto_alias_enabled" json:"auto_alias_enabled"`
	MaxAliasAttempts int    `yaml:"max_alias_attempts" json:"max_alias_attempts"`
	FallbackRows     int    `yaml:"fallback_rows" json:"fallback_rows"`
	FallbackColumns  int    `yaml:"fallback_columns" json:"fallback_columns"`
	DefaultValue     string `yaml:"default_value" json:"default_value"`
}

// Default returns the built-in preferences.
func Default() Config {
	return Config{
		AutoAliasEnabled: true,
		MaxAliasAttempts: autoalias.DefaultMaxAliasAttempts,
		FallbackRows:     autoalias.DefaultFallbackRows,
		FallbackColumns:  autoalias.DefaultFallbackColumns,
		DefaultValue:     autoalias.DefaultValue,
	}
}

// DefaultPath returns the config file path under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, relPath)
}

// Validate checks the configuration against the schema.
func (c Config) Validate() error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}
	value := schema.Unify(ctx.Encode(c))
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Options converts the preferences into synchronization options.
func (c Config) Options() autoalias.Options {
	return autoalias.Options{
		MaxAliasAttempts: c.MaxAliasAttempts,
		FallbackRows:     c.FallbackRows,
		FallbackColumns:  c.FallbackColumns,
		DefaultValue:     c.DefaultValue,
	}
}

// Load reads a config file. A missing file yields Default(). Fields absent
// from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save validates and writes the config, creating parent directories.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Store is a file-backed autoalias.Preferences.
type Store struct {
	mu   sync.Mutex
	path string
	cfg  Config
}

// Open loads the store at path. An empty path selects DefaultPath().
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, cfg: cfg}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Config returns a copy of the current preferences.
func (s *Store) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// AutoAliasEnabled reports whether change-triggered sync is on.
func (s *Store) AutoAliasEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.AutoAliasEnabled
}

// SetAutoAliasEnabled updates and persists the switch.
func (s *Store) SetAutoAliasEnabled(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.cfg
	next.AutoAliasEnabled = enabled
	if err := Save(s.path, next); err != nil {
		return err
	}
	s.cfg = next
	return nil
}

var _ autoalias.Preferences = (*Store)(nil)
