// Package testsupport builds throwaway configurations and backend stubs for
// tests that drive ffext end to end.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"ffext/internal/config"
	"ffext/internal/options"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config whose log directory lives in a unique
// temp directory, then applies opts.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Logging.Dir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithStubbedBackend writes a shell script running body and configures it as
// the executable for backend.
func WithStubbedBackend(backend options.Backend, body string) ConfigOption {
	return func(b *configBuilder) {
		target := WriteStub(b.t, filepath.Join(b.baseDir, "bin", backend.Executable()), body)
		switch backend {
		case options.SceneDetector:
			b.cfg.Binaries.SceneDetect = target
		default:
			b.cfg.Binaries.FFmpeg = target
		}
	}
}

// WithStrictExit sets run.strict_exit.
func WithStrictExit(strict bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Run.StrictExit = strict
	}
}

// WriteStub writes an executable /bin/sh script with body at path.
func WriteStub(t testing.TB, path, body string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir stub dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", path, err)
	}
	return path
}

// WriteConfig encodes cfg as TOML next to its log directory and returns the
// file path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "config.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Logging.Dir)
}
