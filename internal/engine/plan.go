package engine

import (
	"strings"

	"ffext/internal/options"
	"ffext/internal/translate"
)

// Plan is the resolved backend invocation.
type Plan struct {
	Backend options.Backend `json:"backend"`
	Action  string          `json:"action"`
	Program string          `json:"program"`
	Args    []string        `json:"args"`
	// Output is the positional output path, when the backend receives one.
	Output string `json:"output,omitempty"`
}

// BinaryResolver maps a backend to the executable that should run it.
type BinaryResolver func(options.Backend) string

// Resolve calibrates opts in place and translates the result. A nil
// resolver runs each backend under its own name.
func Resolve(opts *options.Options, resolve BinaryResolver) Plan {
	opts.Calibrate()

	program := opts.Backend.Executable()
	if resolve != nil {
		if bin := strings.TrimSpace(resolve(opts.Backend)); bin != "" {
			program = bin
		}
	}

	plan := Plan{
		Backend: opts.Backend,
		Action:  options.ActionName(opts.Action),
		Program: program,
		Args:    translate.Args(*opts),
	}
	if output, ok := translate.OutputPath(*opts); ok {
		plan.Output = output
	}
	return plan
}

// String renders the plan as a readable command line. It is for display
// only: arguments containing whitespace are shown in quotes here but are
// never quoted when executed.
func (p Plan) String() string {
	var b strings.Builder
	b.WriteString(p.Program)
	for _, arg := range p.Args {
		b.WriteByte(' ')
		if arg == "" || strings.ContainsAny(arg, " \t\n") {
			b.WriteString(`'` + strings.ReplaceAll(arg, `'`, `'\''`) + `'`)
			continue
		}
		b.WriteString(arg)
	}
	return b.String()
}
