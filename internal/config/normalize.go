package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeBinaries()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeSplit()
	return nil
}

func (c *Config) normalizeBinaries() {
	c.Binaries.FFmpeg = strings.TrimSpace(c.Binaries.FFmpeg)
	if c.Binaries.FFmpeg == "" {
		c.Binaries.FFmpeg = defaultFFmpeg
	}
	c.Binaries.SceneDetect = strings.TrimSpace(c.Binaries.SceneDetect)
	if c.Binaries.SceneDetect == "" {
		c.Binaries.SceneDetect = defaultSceneDetect
	}
	c.Binaries.FFprobe = strings.TrimSpace(c.Binaries.FFprobe)
	if c.Binaries.FFprobe == "" {
		c.Binaries.FFprobe = defaultFFprobe
	}
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("FFEXT_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSplit() {
	c.Split.OutputFormat = strings.TrimSpace(c.Split.OutputFormat)
	if c.Split.OutputFormat == "" {
		c.Split.OutputFormat = defaultOutputFormat
	}
}
