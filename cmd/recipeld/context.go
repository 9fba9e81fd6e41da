package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/reoring/recipeld"
	"github.com/reoring/recipeld/internal/config"
	"github.com/reoring/recipeld/internal/logging"
	"github.com/reoring/recipeld/internal/store"
	"github.com/reoring/recipeld/schemaorg"
)

type globalFlags struct {
	config   string
	output   string
	logLevel string
	dbPath   string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	logger     *slog.Logger
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if lvl := strings.TrimSpace(c.flags.logLevel); lvl != "" {
			cfg.Logging.Level = lvl
		}
		if db := strings.TrimSpace(c.flags.dbPath); db != "" {
			cfg.Store.DBPath = db
		}
		logger, err := logging.NewFromConfig(cfg, os.Stderr)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.logger = logger
	})
	return c.config, c.configErr
}

func (c *commandContext) log() *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger
}

func (c *commandContext) parseOpt() recipeld.ParseOpt {
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil {
		return recipeld.ParseOpt{}
	}
	opt := cfg.ParseOpt()
	logger := c.log()
	opt.OnIssue = func(is recipeld.Issue) {
		logger.Warn("input issue", "code", is.Code, "path", is.Path, "detail", is.Hint)
	}
	return opt
}

func (c *commandContext) scrapeOptions(repairFlag bool) []schemaorg.ScrapeOption {
	opts := []schemaorg.ScrapeOption{schemaorg.WithParseOpt(c.parseOpt())}
	cfg, _ := c.ensureConfig()
	if repairFlag || (cfg != nil && cfg.Decode.Repair) {
		opts = append(opts, schemaorg.WithRepair())
	}
	return opts
}

// outputFormat resolves --output, then the config file, then the terminal
// default.
func (c *commandContext) outputFormat(cmd *cobra.Command) (string, error) {
	format := strings.ToLower(strings.TrimSpace(c.flags.output))
	if format == "" {
		if cfg, _ := c.ensureConfig(); cfg != nil {
			format = cfg.Output.Format
		}
	}
	if format == "" {
		if isTerminal(cmd.OutOrStdout()) {
			return formatTable, nil
		}
		return formatJSON, nil
	}
	switch format {
	case formatTable, formatJSON, formatYAML, formatMarkdown:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
}

func (c *commandContext) withStore(ctx context.Context, fn func(*store.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	s, err := store.Open(ctx, cfg.Store.DBPath)
	if err != nil {
		return fmt.Errorf("open recipe store: %w", err)
	}
	defer s.Close()
	return fn(s)
}

func isTerminal(w any) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
