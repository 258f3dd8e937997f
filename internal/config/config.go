package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config captures CLI options sourced from config files, environment or
// flags. The API token is deliberately absent: it is read from the
// environment only and never from a file committed to a repository.
type Config struct {
	Slug   string `yaml:"slug"`
	Branch string `yaml:"branch"`
	APIURL string `yaml:"api_url"`

	Format  string `yaml:"format"`
	Verbose bool   `yaml:"verbose"`
}

const (
	// FormatPretty renders human readable output.
	FormatPretty = "pretty"
	// FormatJSON renders machine readable output.
	FormatJSON = "json"
)

// Environment variables consumed by the surrounding layer. The CIRCLE_*
// ones are provided by the platform inside every build; CIRCLETRON_API_URL
// is this tool's own override for server installs.
const (
	EnvToken    = "CIRCLE_TOKEN"
	EnvBranch   = "CIRCLE_BRANCH"
	EnvBuildURL = "CIRCLE_BUILD_URL"
	EnvAPIURL   = "CIRCLETRON_API_URL"
)

// Default returns the baseline configuration used when no file, environment
// variable or flag specifies a value.
func Default() Config {
	return Config{
		Format: FormatPretty,
	}
}

// Load reads .circletron.yml from the working directory when present.
// Missing files are ignored.
func Load(root string) (Config, error) {
	cfg := Default()
	path := filepath.Join(root, ".circletron.yml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	cfg = merge(cfg, fileCfg)
	return cfg, nil
}

func merge(base, override Config) Config {
	out := base

	if override.Slug != "" {
		out.Slug = override.Slug
	}
	if override.Branch != "" {
		out.Branch = override.Branch
	}
	if override.APIURL != "" {
		out.APIURL = override.APIURL
	}
	if override.Format != "" {
		out.Format = override.Format
	}
	if override.Verbose {
		out.Verbose = true
	}

	return out
}

// EnvValues snapshots the build environment the platform injects into jobs.
type EnvValues struct {
	Token    string
	Branch   string
	BuildURL string
	APIURL   string
}

// ReadEnv captures the relevant environment variables. Values already
// loaded into the process (for example from a .env file) resolve the same
// way as real platform variables.
func ReadEnv() EnvValues {
	v := viper.New()
	v.AutomaticEnv()
	return EnvValues{
		Token:    v.GetString(EnvToken),
		Branch:   v.GetString(EnvBranch),
		BuildURL: v.GetString(EnvBuildURL),
		APIURL:   v.GetString(EnvAPIURL),
	}
}

// ApplyFlags mutates cfg by applying values from CLI flags when they are
// present.
func ApplyFlags(cfg *Config, flags FlagValues) {
	if flags.Slug.Set {
		cfg.Slug = flags.Slug.Value
	}
	if flags.Branch.Set {
		cfg.Branch = flags.Branch.Value
	}
	if flags.APIURL.Set {
		cfg.APIURL = flags.APIURL.Value
	}
	if flags.Format.Set {
		cfg.Format = flags.Format.Value
	}
	if flags.Verbose.Set {
		cfg.Verbose = flags.Verbose.Value
	}
}

// FlagValues captures CLI flag state with knowledge of whether each flag was
// set explicitly.
type FlagValues struct {
	Slug    StringFlag
	Branch  StringFlag
	APIURL  StringFlag
	Format  StringFlag
	Verbose BoolFlag
}

// StringFlag represents a string flag and whether it was set.
type StringFlag struct {
	Value string
	Set   bool
}

// BoolFlag represents a bool flag and whether it was set.
type BoolFlag struct {
	Value bool
	Set   bool
}
