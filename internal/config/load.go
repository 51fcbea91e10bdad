package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
)

const configFileName = "league.json"

// envOverrides are the environment variables that override file settings.
type envOverrides struct {
	Backend    string `env:"LEAGUE_STORAGE_BACKEND"`
	Path       string `env:"LEAGUE_STORAGE_PATH"`
	DataDir    string `env:"LEAGUE_DATA_DIR"`
	Debug      *bool  `env:"LEAGUE_DEBUG"`
	SampleData *bool  `env:"LEAGUE_SAMPLE_DATA"`
}

// Load finds and loads configuration from standard locations.
// The global config is merged with the project config (project takes
// precedence), then environment variables are applied on top.
func Load() (*Config, error) {
	cfg := NewConfig()
	if err := loadFile(GlobalConfigPath(), cfg); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	if projectPath := findProjectConfig(); projectPath != "" {
		projectCfg := NewConfig()
		if err := loadFile(projectPath, projectCfg); err != nil {
			return nil, fmt.Errorf("loading project config: %w", err)
		}
		mergeConfig(cfg, projectCfg)
	}

	return finish(cfg)
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	cfg := NewConfig()
	if err := loadFile(path, cfg); err != nil {
		return nil, err
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	//nolint:gosec // G304: Path is from trusted config locations, not user input.
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		for _, name := range []string{configFileName, "." + configFileName} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func mergeConfig(dst, src *Config) {
	ensureSections(dst)
	if src.Storage != nil {
		if src.Storage.Backend != "" {
			dst.Storage.Backend = src.Storage.Backend
		}
		if src.Storage.Path != "" {
			dst.Storage.Path = src.Storage.Path
		}
	}
	if src.Options != nil {
		if src.Options.DataDir != "" {
			dst.Options.DataDir = src.Options.DataDir
		}
		if src.Options.Debug {
			dst.Options.Debug = true
		}
		if src.Options.SampleData != nil {
			dst.Options.SampleData = src.Options.SampleData
		}
	}
}

func applyEnv(cfg *Config) error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	mergeConfig(cfg, &Config{
		Storage: &Storage{Backend: overrides.Backend, Path: overrides.Path},
		Options: &Options{DataDir: overrides.DataDir, SampleData: overrides.SampleData},
	})
	if overrides.Debug != nil {
		cfg.Options.Debug = *overrides.Debug
	}
	return nil
}

func ensureSections(cfg *Config) {
	if cfg.Storage == nil {
		cfg.Storage = &Storage{}
	}
	if cfg.Options == nil {
		cfg.Options = &Options{}
	}
}

func applyDefaults(cfg *Config) {
	ensureSections(cfg)
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendJSON
	}
	if cfg.Options.DataDir == "" {
		cfg.Options.DataDir = filepath.Join(xdg.DataHome, appName)
	}
}

// GlobalConfigPath returns the path to the global configuration file.
func GlobalConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, configFileName)
}
