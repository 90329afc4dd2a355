package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ffext/internal/logging"
	"ffext/internal/options"
)

// Deps are the collaborators Invoke needs.
type Deps struct {
	Runner   Runner
	Reporter Reporter
	Binaries BinaryResolver
	Logger   *slog.Logger
}

// Outcome is what Invoke did.
type Outcome struct {
	Plan   Plan
	Result Result
	DryRun bool
}

// ExitStatusError reports a backend that exited nonzero.
type ExitStatusError struct {
	Program  string
	ExitCode int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Program, e.ExitCode)
}

// Err returns an ExitStatusError when strict is set and the backend ran and
// exited nonzero. Otherwise it returns nil.
func (o Outcome) Err(strict bool) error {
	if !strict || o.DryRun || o.Result.Success() {
		return nil
	}
	return &ExitStatusError{Program: o.Plan.Program, ExitCode: o.Result.ExitCode}
}

// Invoke calibrates opts, resolves the plan, and then either reports it
// (dry run) or runs it. The Runner is never called for a dry run.
func Invoke(ctx context.Context, opts options.Options, deps Deps) (Outcome, error) {
	logger := logging.WithContext(ctx, deps.Logger)

	plan := Resolve(&opts, deps.Binaries)
	logger.Debug("plan resolved",
		logging.String(logging.FieldBackend, string(plan.Backend)),
		logging.String(logging.FieldAction, plan.Action),
		logging.String(logging.FieldProgram, plan.Program),
		logging.Strings("args", plan.Args),
		logging.Bool("verbose", opts.Verbose),
	)
	if !plan.Backend.Known() {
		logger.Warn("unknown backend; running without arguments",
			logging.String(logging.FieldBackend, string(plan.Backend)),
		)
	}

	if opts.DryRun {
		if deps.Reporter == nil {
			return Outcome{}, errors.New("dry run: no reporter configured")
		}
		if err := deps.Reporter.Report(plan); err != nil {
			return Outcome{Plan: plan, DryRun: true}, fmt.Errorf("report plan: %w", err)
		}
		return Outcome{Plan: plan, DryRun: true}, nil
	}

	if deps.Runner == nil {
		return Outcome{}, errors.New("run: no runner configured")
	}
	result, err := deps.Runner.Run(ctx, plan)
	outcome := Outcome{Plan: plan, Result: result}
	if err != nil {
		return outcome, err
	}
	if !result.Success() {
		logger.Warn("backend exited nonzero",
			logging.String(logging.FieldProgram, plan.Program),
			logging.Int("exit_code", result.ExitCode),
		)
	}
	return outcome, nil
}
