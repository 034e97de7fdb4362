package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// envPrefix is stripped from environment variables before they are mapped
// onto config keys: PARSELMOUTH_API_KEY -> api-key, etc.
const envPrefix = "PARSELMOUTH_"

// ErrMissingAPIKey is returned when a remote call is about to be made and no
// key was resolved from any layer.
var ErrMissingAPIKey = errors.New("API key is required: set --api-key, the PARSELMOUTH_API_KEY environment variable, or api-key in the config file")

// illegalSeparatorChars are characters that can never appear in a filename
// on the common-denominator filesystems parselmouth targets.
const illegalSeparatorChars = `/\:*?"<>|` + "\x00"

// Resolve builds the effective configuration by merging, lowest precedence
// first: built-in defaults, the YAML config file, PARSELMOUTH_* environment
// variables, and explicit CLI overrides.
//
// If path is empty the default locations are searched and their absence is
// not an error. An explicit path that does not exist is an error.
func Resolve(path string, ov Overrides) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	cfgPath, explicit := path, path != ""
	if !explicit {
		for _, candidate := range DefaultPaths() {
			if _, err := os.Stat(candidate); err == nil {
				cfgPath = candidate
				break
			}
		}
	}

	if cfgPath != "" {
		if _, err := os.Stat(cfgPath); err == nil {
			if err := k.Load(file.Provider(cfgPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", cfgPath, err)
			}
		} else if explicit {
			return nil, fmt.Errorf("config file %s: %w", cfgPath, err)
		}
	}

	// Overlay environment variables: PARSELMOUTH_API_KEY -> api-key, etc.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.apply(ov)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply overlays explicit CLI flag values. Flags have the highest precedence.
func (c *Config) apply(ov Overrides) {
	if ov.Provider != nil {
		c.Provider = ProviderType(*ov.Provider)
	}
	if ov.APIKey != nil {
		c.APIKey = *ov.APIKey
	}
	if ov.Model != nil {
		c.Model = *ov.Model
	}
	if ov.IncludeDate != nil {
		c.IncludeDate = *ov.IncludeDate
	}
	if ov.DateFormat != nil {
		c.DateFormat = *ov.DateFormat
	}
	if ov.Separator != nil {
		c.Separator = *ov.Separator
	}
	if ov.Casing != nil {
		c.Casing = Casing(*ov.Casing)
	}
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validProviders is the set of recognized provider values.
var validProviders = map[ProviderType]bool{
	ProviderGoogle: true,
	ProviderOpenAI: true,
	ProviderOllama: true,
}

// validCasings is the set of recognized casing policies.
var validCasings = map[Casing]bool{
	CasingLower:    true,
	CasingPreserve: true,
}

// Validate checks that the configuration contains usable values. It does not
// require an API key; that is checked by RequireAPIKey at call time so that
// help, init, version, and setup-completion work without one.
func (c *Config) Validate() error {
	if c.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	if !validProviders[c.Provider] {
		return fmt.Errorf("invalid provider %q: must be one of google, openai, ollama", c.Provider)
	}

	if c.Model == "" {
		return fmt.Errorf("model is required")
	}

	if c.Separator == "" {
		return fmt.Errorf("separator must not be empty")
	}
	if len(c.Separator) > 3 {
		return fmt.Errorf("separator %q is too long: at most 3 characters", c.Separator)
	}
	if strings.ContainsAny(c.Separator, illegalSeparatorChars) {
		return fmt.Errorf("separator %q contains characters illegal in filenames", c.Separator)
	}

	if !strings.Contains(c.DateFormat, "YYYY") {
		return fmt.Errorf("date-format %q must contain a YYYY year token", c.DateFormat)
	}
	if strings.ContainsAny(c.DateFormat, illegalSeparatorChars) {
		return fmt.Errorf("date-format %q contains characters illegal in filenames", c.DateFormat)
	}

	if c.Casing != "" && !validCasings[c.Casing] {
		return fmt.Errorf("invalid casing %q: must be lower or preserve", c.Casing)
	}

	return nil
}

// RequireAPIKey fails if the resolved configuration cannot authenticate a
// remote call. Ollama runs locally and needs no key.
func (c *Config) RequireAPIKey() error {
	if c.Provider == ProviderOllama {
		return nil
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
