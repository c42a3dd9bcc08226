// Package config loads the settings of the lox command line driver.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the home directory when no file is given
const DefaultFileName = ".lox.yaml"

// Config holds driver settings
type Config struct {
	// LogLevel is any level understood by logrus
	LogLevel string `yaml:"log_level"`
	// Color enables coloured diagnostics on stderr
	Color bool `yaml:"color"`
	// Prompt is shown by the REPL before every line
	Prompt string `yaml:"prompt"`
	// HistoryFile keeps REPL history, empty disables it
	HistoryFile string `yaml:"history_file"`
}

// Default returns the settings used when there is no config file
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Color:    true,
		Prompt:   "> ",
	}
}

// Parse reads YAML from r on top of the defaults
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the config at path. An empty path means the default file in
// the home directory, which may be missing.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(home, DefaultFileName)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	cfg, err := Parse(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks the values that cannot be checked by the decoder
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

// Level returns the parsed log level
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
