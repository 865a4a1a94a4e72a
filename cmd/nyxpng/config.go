package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/meigma/pngchunk"
)

// configEnv names the environment variable consulted when --config is not given.
const configEnv = "NYXPNG_CONFIG"

// Config holds settings for nyxpng. Every field has a usable default, so no
// config file is required.
type Config struct {
	// ChunkType is the chunk type used by encode, decode, and remove when
	// TYPE is omitted. Empty means TYPE is required.
	ChunkType string `yaml:"chunk_type"`

	// EncodeSuffix is appended to the input file stem when naming encode output.
	EncodeSuffix string `yaml:"encode_suffix"`

	// RemoveSuffix is appended to the input file stem when naming remove output.
	RemoveSuffix string `yaml:"remove_suffix"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// MaxChunkLength rejects chunks declaring a larger payload. Zero disables the limit.
	MaxChunkLength uint32 `yaml:"max_chunk_length"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		EncodeSuffix: "_with_secret",
		RemoveSuffix: "_with_secret_removed",
		LogLevel:     "warn",
	}
}

// LoadConfig reads path over the defaults. An empty path falls back to
// $NYXPNG_CONFIG; if that is also empty the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv(configEnv)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.EncodeSuffix == "" || c.RemoveSuffix == "" {
		return errors.New("encode_suffix and remove_suffix must not be empty")
	}
	if c.EncodeSuffix == c.RemoveSuffix {
		return errors.New("encode_suffix and remove_suffix must differ")
	}
	for _, s := range []string{c.EncodeSuffix, c.RemoveSuffix} {
		if strings.ContainsAny(s, `/\`) {
			return fmt.Errorf("suffix %q must not contain path separators", s)
		}
	}
	if c.ChunkType != "" {
		if _, err := pngchunk.ParseTypeCode(c.ChunkType); err != nil {
			return fmt.Errorf("chunk_type %q: %w", c.ChunkType, err)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return level, nil
}
