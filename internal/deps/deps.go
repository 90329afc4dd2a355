package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"ffext/internal/config"
	"ffext/internal/options"
)

// Requirement defines an external program ffext can launch.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	// Path is the resolved location when Available.
	Path   string
	Detail string
}

// BackendRequirements lists the programs behind each backend plus ffprobe,
// using the executables configured in cfg.
func BackendRequirements(cfg *config.Config) []Requirement {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	return []Requirement{
		{
			Name:        options.Transcoder.DisplayName(),
			Command:     cfg.BinaryFor(options.Transcoder),
			Description: "Runs plain transcodes and split-by-time",
		},
		{
			Name:        options.SceneDetector.DisplayName(),
			Command:     cfg.BinaryFor(options.SceneDetector),
			Description: "Runs scene-detect",
			Optional:    true,
		},
		{
			Name:        "FFprobe",
			Command:     cfg.FFprobeBinary(),
			Description: "Used by the probe command",
			Optional:    true,
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		path, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Path = path
		results = append(results, status)
	}
	return results
}
