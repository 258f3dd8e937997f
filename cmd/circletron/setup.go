package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/empathycom/circletron/internal/circleci"
	"github.com/empathycom/circletron/internal/config"
	"github.com/empathycom/circletron/internal/output"
	"github.com/empathycom/circletron/internal/slug"
)

// session bundles the resolved configuration with the API client and logger
// a command needs.
type session struct {
	cfg    config.Config
	slug   string
	branch string
	client *circleci.Client
	logger *log.Logger
}

func newSession(cmd *cobra.Command) (session, error) {
	cfg, env, err := loadConfig(cmd)
	if err != nil {
		return session{}, err
	}

	projectSlug, err := resolveSlug(cfg, env)
	if err != nil {
		return session{}, err
	}

	branch := cfg.Branch
	if branch == "" {
		branch = env.Branch
	}

	if env.Token == "" {
		return session{}, fmt.Errorf("%s is not set; an API token is required", config.EnvToken)
	}

	var opts []circleci.Option
	if cfg.APIURL != "" {
		opts = append(opts, circleci.WithBaseURL(cfg.APIURL))
	}

	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{ReportTimestamp: false})
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return session{
		cfg:    cfg,
		slug:   projectSlug,
		branch: branch,
		client: circleci.NewClient(env.Token, opts...),
		logger: logger,
	}, nil
}

// loadConfig layers the configuration sources: defaults, then the project
// file, then the environment, then flags.
func loadConfig(cmd *cobra.Command) (config.Config, config.EnvValues, error) {
	root, err := os.Getwd()
	if err != nil {
		return config.Config{}, config.EnvValues{}, fmt.Errorf("determine working directory: %w", err)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return config.Config{}, config.EnvValues{}, err
	}

	env := config.ReadEnv()
	if cfg.APIURL == "" {
		cfg.APIURL = env.APIURL
	}

	flags, err := gatherFlags(cmd)
	if err != nil {
		return config.Config{}, config.EnvValues{}, err
	}
	config.ApplyFlags(&cfg, flags)

	return cfg, env, nil
}

// resolveSlug prefers an explicitly configured slug and falls back to the
// address the platform gives the currently running build.
func resolveSlug(cfg config.Config, env config.EnvValues) (string, error) {
	if cfg.Slug != "" {
		return slug.Parse(cfg.Slug)
	}
	if env.BuildURL != "" {
		return slug.FromBuildURL(env.BuildURL)
	}
	return "", fmt.Errorf("%w: set --slug or run inside a build with %s", slug.ErrNoSlug, config.EnvBuildURL)
}

func newRenderer(cmd *cobra.Command, cfg config.Config) (output.Renderer, error) {
	switch strings.ToLower(cfg.Format) {
	case config.FormatPretty:
		return output.NewPretty(cmd.OutOrStdout()), nil
	case config.FormatJSON:
		return output.NewJSON(cmd.OutOrStdout()), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", cfg.Format)
	}
}
