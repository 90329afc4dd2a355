package deps

import (
	"os"
	"path/filepath"
	"testing"

	"ffext/internal/config"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}

	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}

	if results[0].Path != present {
		t.Fatalf("expected resolved path %q, got %q", present, results[0].Path)
	}

	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}
}

func TestCheckBinariesUnconfigured(t *testing.T) {
	results := CheckBinaries([]Requirement{{Name: "Blank", Command: "   ", Optional: true}})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Available || results[0].Detail != "command not configured" {
		t.Fatalf("unexpected status %#v", results[0])
	}
	if !results[0].Optional {
		t.Fatal("expected optional flag to carry through")
	}
}

func TestBackendRequirementsUseConfiguredBinaries(t *testing.T) {
	cfg := config.Default()
	cfg.Binaries.SceneDetect = "/opt/scenedetect/bin/scenedetect"

	reqs := BackendRequirements(&cfg)
	if len(reqs) != 3 {
		t.Fatalf("expected 3 requirements, got %d", len(reqs))
	}
	if reqs[0].Command != "ffmpeg" || reqs[0].Optional {
		t.Fatalf("expected required ffmpeg, got %#v", reqs[0])
	}
	if reqs[1].Command != "/opt/scenedetect/bin/scenedetect" {
		t.Fatalf("expected scene detector override, got %#v", reqs[1])
	}
	if reqs[2].Command != "ffprobe" {
		t.Fatalf("expected ffprobe, got %#v", reqs[2])
	}
}
