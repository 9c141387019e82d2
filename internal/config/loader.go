package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for every command.
// Zero values mean "unspecified" and are replaced by WithDefaults.
type Config struct {
	Input       string      `json:"input" yaml:"input" toml:"input"`
	OutputDir   string      `json:"output_dir" yaml:"output_dir" toml:"output_dir"`
	MetricsFile string      `json:"metrics_file" yaml:"metrics_file" toml:"metrics_file"`
	LogLevel    string      `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat   string      `json:"log_format" yaml:"log_format" toml:"log_format"`
	Dex         DexConfig   `json:"dex" yaml:"dex" toml:"dex"`
	Serve       ServeConfig `json:"serve" yaml:"serve" toml:"serve"`
}

// DexConfig locates the dexterous-manipulation workbook and its outputs.
type DexConfig struct {
	Workbook string `json:"workbook" yaml:"workbook" toml:"workbook"`
	Output   string `json:"output" yaml:"output" toml:"output"`
	Colors   string `json:"colors" yaml:"colors" toml:"colors"`
	Public   string `json:"public" yaml:"public" toml:"public"`
}

// ServeConfig configures the local preview server.
type ServeConfig struct {
	Addr        string   `json:"addr" yaml:"addr" toml:"addr"`
	Dir         string   `json:"dir" yaml:"dir" toml:"dir"`
	CORSEnabled bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSOrigins []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
