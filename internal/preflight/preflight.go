package preflight

import (
	"os"
	"path/filepath"

	"ffext/internal/config"
	"ffext/internal/deps"
	"ffext/internal/options"
	"ffext/internal/translate"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// RunAll checks the backend binaries from cfg and the paths opts refers to.
// The input is checked only when one is given; the output directory is the
// directory of the resolved output path, or the working directory when the
// output is a bare file name.
func RunAll(cfg *config.Config, opts options.Options) []Result {
	var results []Result
	for _, status := range deps.CheckBinaries(deps.BackendRequirements(cfg)) {
		results = append(results, FromDependency(status))
	}

	if opts.HasInput() {
		results = append(results, CheckInputFile("Input file", opts.InputPath))
	}

	opts.Calibrate()
	if output, ok := translate.OutputPath(opts); ok {
		results = append(results, CheckDirectoryAccess("Output directory", outputDir(output)))
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

func outputDir(output string) string {
	dir := filepath.Dir(output)
	if dir == "." {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return dir
}
