package main

import (
	"github.com/spf13/cobra"

	"ffext/internal/options"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	flags := &invocationFlags{}

	ctx := newCommandContext(&configFlag, flags)

	rootCmd := &cobra.Command{
		Use:           "ffext",
		Short:         "Run ffmpeg and scenedetect from one set of options",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvocation(cmd, ctx, options.NoAction{})
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.program, "program", string(options.DefaultBackend), "Backend program (ffmpeg or scenedetect)")
	pf.StringVar(&flags.inputPath, "input-path", "", "Input media path")
	pf.StringVar(&flags.outputPath, "output-path", "", "Output path (derived from the input for split-by-time when omitted)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVar(&flags.dryrun, "dryrun", false, "Print the resolved command instead of running it")
	pf.BoolVar(&flags.json, "json", false, "Print dry-run plans as JSON")
	pf.BoolVar(&flags.strictExit, "strict-exit", false, "Fail when the backend exits nonzero")
	pf.BoolVar(&flags.gui, "gui", false, "Accepted for compatibility; has no effect")
	_ = pf.MarkHidden("gui")

	rootCmd.AddCommand(newSceneDetectCommand(ctx))
	rootCmd.AddCommand(newSplitByTimeCommand(ctx))
	rootCmd.AddCommand(newProbeCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
