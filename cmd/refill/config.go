package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

type IOConfig struct {
	Path      string `json:"path" yaml:"path" toml:"path"`
	Type      string `json:"type" yaml:"type" toml:"type"` // csv|parquet (default csv)
	HasHeader bool   `json:"has_header" yaml:"has_header" toml:"has_header"`
	Delimiter string `json:"delimiter" yaml:"delimiter" toml:"delimiter"`
}

type GuardConfig struct {
	MaxCount    *int     `json:"max_count" yaml:"max_count" toml:"max_count"`
	MaxFraction *float64 `json:"max_fraction" yaml:"max_fraction" toml:"max_fraction"`
}

type StepConfig struct {
	Strategy string   `json:"strategy" yaml:"strategy" toml:"strategy"`
	Columns  []string `json:"columns" yaml:"columns" toml:"columns"`

	Limit      int      `json:"limit" yaml:"limit" toml:"limit"`
	Rounding   string   `json:"rounding" yaml:"rounding" toml:"rounding"`
	Value      *float64 `json:"value" yaml:"value" toml:"value"`
	Seed       int64    `json:"seed" yaml:"seed" toml:"seed"`
	K          int      `json:"k" yaml:"k" toml:"k"`
	Rank       int      `json:"rank" yaml:"rank" toml:"rank"`
	MaxIter    int      `json:"max_iter" yaml:"max_iter" toml:"max_iter"`
	Tol        float64  `json:"tol" yaml:"tol" toml:"tol"`
	MaxMissing *int     `json:"max_missing" yaml:"max_missing" toml:"max_missing"`
}

type Config struct {
	Input   IOConfig     `json:"input" yaml:"input" toml:"input"`
	Output  IOConfig     `json:"output" yaml:"output" toml:"output"`
	Guard   *GuardConfig `json:"guard" yaml:"guard" toml:"guard"`
	Workers int          `json:"workers" yaml:"workers" toml:"workers"`
	Steps   []StepConfig `json:"steps" yaml:"steps" toml:"steps"`
}

// loadConfig decodes JSON, YAML or TOML by file extension.
func loadConfig(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	case ".json", "":
		err = json.Unmarshal(b, &cfg)
	default:
		err = fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	return cfg, err
}
