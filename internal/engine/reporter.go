package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"ffext/internal/logging"
)

// Reporter presents a plan that will not be executed.
type Reporter interface {
	Report(plan Plan) error
}

// TextReporter writes the plan to a writer and logs it.
type TextReporter struct {
	out    io.Writer
	json   bool
	logger *slog.Logger
}

// NewTextReporter constructs a reporter writing to out (os.Stdout when nil).
// With asJSON the plan is written as an indented JSON document.
func NewTextReporter(out io.Writer, asJSON bool, logger *slog.Logger) *TextReporter {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &TextReporter{out: out, json: asJSON, logger: logger}
}

// Report logs the plan and writes it to the configured output.
func (r *TextReporter) Report(plan Plan) error {
	r.logger.Info("dry run; backend not started",
		logging.String(logging.FieldBackend, string(plan.Backend)),
		logging.String(logging.FieldAction, plan.Action),
		logging.String(logging.FieldProgram, plan.Program),
		logging.Strings("args", plan.Args),
	)

	if r.json {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}

	if _, err := fmt.Fprintf(r.out, "Backend: %s\n", plan.Backend.DisplayName()); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Action:  %s\n", plan.Action)
	fmt.Fprintf(r.out, "Program: %s\n", plan.Program)
	if plan.Output != "" {
		fmt.Fprintf(r.out, "Output:  %s\n", plan.Output)
	}
	fmt.Fprintln(r.out, "Args:")
	if len(plan.Args) == 0 {
		fmt.Fprintln(r.out, "  (none)")
	}
	for i, arg := range plan.Args {
		fmt.Fprintf(r.out, "  [%d] %s\n", i, arg)
	}
	_, err := fmt.Fprintf(r.out, "Command: %s\n", plan.String())
	return err
}

var _ Reporter = (*TextReporter)(nil)
