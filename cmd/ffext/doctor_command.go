package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ffext/internal/options"
	"ffext/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check backend binaries and the paths given on the command line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(cfg, ctx.baseOptions(options.NoAction{}))

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{r.Name, colorStatus(checkStatus(r), colorize), r.Detail})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Check", "Status", "Detail"},
				rows,
				nil,
			))

			if failed := preflight.Failed(results); len(failed) > 0 {
				return fmt.Errorf("doctor: %d check(s) failed", len(failed))
			}
			return nil
		},
	}
}

func checkStatus(r preflight.Result) statusKind {
	switch {
	case !r.Passed:
		return statusError
	case r.Optional:
		return statusWarn
	default:
		return statusOK
	}
}
