// Package config handles loading td.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/amonks/td/internal/paths"
	"github.com/amonks/td/todo"
	"github.com/amonks/td/todofile"
)

// ProjectFileName is the name of the per-project config file.
const ProjectFileName = "td.toml"

// Config represents the td.toml configuration file.
type Config struct {
	Storage Storage `toml:"storage"`
}

// Storage contains data file configuration.
type Storage struct {
	// DataFile is the binary todo file. Relative paths resolve against
	// the project directory.
	DataFile string `toml:"data-file"`

	// ExportFile is the default target of a text export.
	ExportFile string `toml:"export-file"`

	// Capacity is the maximum number of todos the store holds.
	Capacity int `toml:"capacity"`
}

// Load loads configuration from the project directory and the global
// config file. Keys defined by the project file win. Unset keys fall back
// to the built-in defaults, and relative paths are resolved against
// projectDir.
func Load(projectDir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(projectDir, ProjectFileName))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	if err := merged.validate(); err != nil {
		return nil, err
	}
	merged.applyDefaults(projectDir)
	return merged, nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: unknown key %s", path, undecoded[0])
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Storage.DataFile = mergeString(projectMeta.IsDefined("storage", "data-file"), projectCfg.Storage.DataFile, globalCfg.Storage.DataFile)
	merged.Storage.ExportFile = mergeString(projectMeta.IsDefined("storage", "export-file"), projectCfg.Storage.ExportFile, globalCfg.Storage.ExportFile)
	if projectMeta.IsDefined("storage", "capacity") {
		merged.Storage.Capacity = projectCfg.Storage.Capacity
	} else if globalMeta.IsDefined("storage", "capacity") {
		merged.Storage.Capacity = globalCfg.Storage.Capacity
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

func (cfg *Config) validate() error {
	if cfg.Storage.Capacity < 0 {
		return fmt.Errorf("storage.capacity must not be negative, got %d", cfg.Storage.Capacity)
	}
	return nil
}

func (cfg *Config) applyDefaults(projectDir string) {
	if cfg.Storage.DataFile == "" {
		cfg.Storage.DataFile = todofile.DefaultPath
	}
	if cfg.Storage.ExportFile == "" {
		cfg.Storage.ExportFile = todofile.DefaultExportPath
	}
	if cfg.Storage.Capacity == 0 {
		cfg.Storage.Capacity = todo.DefaultCapacity
	}
	cfg.Storage.DataFile = paths.Resolve(projectDir, cfg.Storage.DataFile)
	cfg.Storage.ExportFile = paths.Resolve(projectDir, cfg.Storage.ExportFile)
}
