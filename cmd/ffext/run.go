package main

import (
	"github.com/spf13/cobra"

	"ffext/internal/engine"
	"ffext/internal/logging"
	"ffext/internal/options"
)

// runInvocation resolves and runs (or reports) one backend invocation. The
// backend's stdout and relayed diagnostics go to the command's stdout; logs
// go to stderr.
func runInvocation(cmd *cobra.Command, cc *commandContext, action options.Action) error {
	cfg, err := cc.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := cc.ensureLogger()
	if err != nil {
		return err
	}

	ctx, _ := logging.WithInvocationID(cmd.Context())
	scoped := logging.WithContext(ctx, logger)

	out := cmd.OutOrStdout()
	opts := cc.baseOptions(action)
	outcome, err := engine.Invoke(ctx, opts, engine.Deps{
		Runner: engine.NewExecutor(
			engine.WithRelay(out),
			engine.WithStdout(out),
			engine.WithLogger(logger),
		),
		Reporter: engine.NewTextReporter(out, cc.flags.json, scoped),
		Binaries: cfg.BinaryFor,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	if !outcome.DryRun {
		scoped.Info("run complete",
			logging.String(logging.FieldProgram, outcome.Plan.Program),
			logging.Int("exit_code", outcome.Result.ExitCode),
			logging.Int("lines", outcome.Result.Lines),
			logging.Duration("elapsed", outcome.Result.Elapsed),
		)
	}
	return outcome.Err(cc.strictExit())
}
