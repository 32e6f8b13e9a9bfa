package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultOutputDir = "."
	defaultLogLevel  = "warn"
)

// Config holds optional settings loaded from ~/.config/aws-iam-audit/config.yaml.
type Config struct {
	Profile      string `yaml:"profile"`
	Region       string `yaml:"region"`
	OutputDir    string `yaml:"output_dir"`
	ReportBucket string `yaml:"report_bucket"`
	ReportPrefix string `yaml:"report_prefix"`
	LogLevel     string `yaml:"log_level"`
}

// Path returns the location of the config file under the user's home directory.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "aws-iam-audit", "config.yaml"), nil
}

// Load reads the config file. Returns zero-value Config if the file doesn't exist.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) OutputDirectory() string {
	if c.OutputDir == "" {
		return defaultOutputDir
	}
	return c.OutputDir
}

func (c *Config) Level() string {
	if c.LogLevel == "" {
		return defaultLogLevel
	}
	return c.LogLevel
}

// UploadEnabled reports whether finished report files should be copied to S3.
func (c *Config) UploadEnabled() bool {
	return c.ReportBucket != ""
}
