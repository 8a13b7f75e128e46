package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EmbeddedSource is the source name reported when the embedded default is used.
const EmbeddedSource = "<embedded>"

// Load reads, merges over the defaults, and validates the configuration.
// Search order: customPath -> ~/.breakout/breakout.{yaml,yml,toml} ->
// ./configs/breakout.{yaml,yml,toml} -> embedded default.
// It returns the config together with the path it was read from.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return parseAndValidate(data, customPath)
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return parseAndValidate(data, path)
	}

	cfg, err := Parse(defaultYAML, "yaml")
	if err != nil {
		cfg = Default() // Fallback to hardcoded if embed fails
	}
	return cfg, EmbeddedSource, cfg.Validate()
}

// searchPaths returns the candidate config files after the custom path.
func searchPaths() []string {
	var paths []string
	names := []string{"breakout.yaml", "breakout.yml", "breakout.toml"}

	if home, err := os.UserHomeDir(); err == nil {
		for _, name := range names {
			paths = append(paths, filepath.Join(home, ".breakout", name))
		}
	}
	for _, name := range names {
		paths = append(paths, filepath.Join("configs", name))
	}
	return paths
}

func parseAndValidate(data []byte, path string) (Config, string, error) {
	cfg, err := Parse(data, formatFromPath(path))
	if err != nil {
		return Config{}, path, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, path, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, path, nil
}

// formatFromPath picks the decoder from the file extension.
func formatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return "toml"
	}
	return "yaml"
}

// Parse decodes data in the given format ("yaml" or "toml") on top of
// Default(), so a file only needs the keys it changes. Unknown keys are
// rejected.
func Parse(data []byte, format string) (Config, error) {
	cfg := Default()

	switch format {
	case "toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			// An empty document leaves the defaults in place.
			if errors.Is(err, io.EOF) {
				return cfg, nil
			}
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q", format)
	}

	return cfg, nil
}

// Marshal encodes the configuration in the given format.
func Marshal(cfg Config, format string) ([]byte, error) {
	switch format {
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode toml: %w", err)
		}
		return buf.Bytes(), nil
	case "yaml", "yml", "":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("config: unsupported format %q", format)
	}
}
