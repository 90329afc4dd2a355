package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateBinaries(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateSplit(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateBinaries() error {
	if strings.TrimSpace(c.Binaries.FFmpeg) == "" {
		return errors.New("binaries.ffmpeg must be set")
	}
	if strings.TrimSpace(c.Binaries.SceneDetect) == "" {
		return errors.New("binaries.scenedetect must be set")
	}
	if strings.TrimSpace(c.Binaries.FFprobe) == "" {
		return errors.New("binaries.ffprobe must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateSplit() error {
	if strings.ContainsAny(c.Split.OutputFormat, " \t\n") {
		return fmt.Errorf("split.output_format must be a single token, got %q", c.Split.OutputFormat)
	}
	return nil
}
