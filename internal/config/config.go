// Package config loads and edits the league CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/tidwall/sjson"
)

const appName = "league"

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Backends lists every supported storage backend.
var Backends = []string{BackendJSON, BackendSQLite}

// Config is the complete configuration.
type Config struct {
	Storage *Storage `json:"storage,omitempty"`
	Options *Options `json:"options,omitempty"`
}

// Storage says where the league is saved.
type Storage struct {
	Backend string `json:"backend,omitempty"`
	Path    string `json:"path,omitempty"`
}

// Options contains general settings.
type Options struct {
	DataDir    string `json:"data_directory,omitempty"`
	Debug      bool   `json:"debug,omitempty"`
	SampleData *bool  `json:"sample_data,omitempty"`
}

// NewConfig creates an empty Config.
func NewConfig() *Config {
	return &Config{
		Storage: &Storage{},
		Options: &Options{},
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Storage != nil && c.Storage.Backend != "" && !slices.Contains(Backends, c.Storage.Backend) {
		return fmt.Errorf("unknown storage backend %q (want one of %v)", c.Storage.Backend, Backends)
	}
	return nil
}

// DataDir returns the data directory path from configuration.
func (c *Config) DataDir() string {
	if c.Options != nil && c.Options.DataDir != "" {
		return c.Options.DataDir
	}
	return filepath.Join(xdg.DataHome, appName)
}

// Backend returns the configured storage backend.
func (c *Config) Backend() string {
	if c.Storage != nil && c.Storage.Backend != "" {
		return c.Storage.Backend
	}
	return BackendJSON
}

// StoragePath returns the data file, defaulting to a file named after the
// backend inside the data directory.
func (c *Config) StoragePath() string {
	if c.Storage != nil && c.Storage.Path != "" {
		return c.Storage.Path
	}
	if c.Backend() == BackendSQLite {
		return filepath.Join(c.DataDir(), "league.db")
	}
	return filepath.Join(c.DataDir(), "league.json")
}

// DebugLogPath returns where the debug log is written.
func (c *Config) DebugLogPath() string {
	return filepath.Join(c.DataDir(), "debug.log")
}

// Debug reports whether debug logging is on.
func (c *Config) Debug() bool {
	return c.Options != nil && c.Options.Debug
}

// SampleData reports whether an empty store starts with the sample league.
func (c *Config) SampleData() bool {
	if c.Options == nil || c.Options.SampleData == nil {
		return true
	}
	return *c.Options.SampleData
}

// fieldKinds lists the keys SetConfigField accepts and how their values are
// parsed.
var fieldKinds = map[string]func(string) (any, error){
	"storage.backend": func(raw string) (any, error) {
		if !slices.Contains(Backends, raw) {
			return nil, fmt.Errorf("unknown storage backend %q (want one of %v)", raw, Backends)
		}
		return raw, nil
	},
	"storage.path":           func(raw string) (any, error) { return raw, nil },
	"options.data_directory": func(raw string) (any, error) { return raw, nil },
	"options.debug":          parseBool,
	"options.sample_data":    parseBool,
}

func parseBool(raw string) (any, error) {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("expected true or false, got %q", raw)
	}
	return b, nil
}

// Keys returns the keys accepted by SetConfigField, sorted.
func Keys() []string {
	keys := make([]string, 0, len(fieldKinds))
	for k := range fieldKinds {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ParseField converts the text raw into the value stored under key.
func ParseField(key, raw string) (any, error) {
	parse, ok := fieldKinds[key]
	if !ok {
		return nil, fmt.Errorf("unknown config key %q", key)
	}
	return parse(raw)
}

// SetConfigField updates a single field in the global config file.
// This uses sjson for surgical updates - only the specified field is modified.
func SetConfigField(key string, value any) error {
	return SetFieldInFile(GlobalConfigPath(), key, value)
}

// SetFieldInFile updates a single field in the config file at path,
// creating the file if needed.
func SetFieldInFile(path, key string, value any) error {
	if _, ok := fieldKinds[key]; !ok {
		return fmt.Errorf("unknown config key %q", key)
	}

	//nolint:gosec // G304: path is a config location, not user content.
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("reading config file: %w", err)
		}
		data = []byte("{}")
	}

	newData, err := sjson.SetBytesOptions(data, key, value, &sjson.Options{Optimistic: true})
	if err != nil {
		return fmt.Errorf("setting config field %q: %w", key, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, newData, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
