package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"ffext/internal/config"
	"ffext/internal/logging"
	"ffext/internal/options"
)

// invocationFlags holds the root persistent flags shared by every
// subcommand that launches a backend.
type invocationFlags struct {
	program    string
	inputPath  string
	outputPath string
	verbose    bool
	dryrun     bool
	json       bool
	strictExit bool
	gui        bool
}

type commandContext struct {
	configFlag *string
	flags      *invocationFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, flags *invocationFlags) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		flags:      flags,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg, c.flags.verbose)
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// baseOptions converts the root flags into Options carrying action.
func (c *commandContext) baseOptions(action options.Action) options.Options {
	opts := options.New()
	if program := strings.TrimSpace(c.flags.program); program != "" {
		opts.Backend = options.Backend(program)
	}
	opts.InputPath = c.flags.inputPath
	opts.OutputPath = c.flags.outputPath
	opts.Verbose = c.flags.verbose
	opts.DryRun = c.flags.dryrun
	opts.Action = action
	return opts
}

func (c *commandContext) strictExit() bool {
	if c.flags.strictExit {
		return true
	}
	cfg, err := c.ensureConfig()
	return err == nil && cfg.Run.StrictExit
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
