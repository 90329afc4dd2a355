package main

import (
	"github.com/spf13/cobra"

	"ffext/internal/options"
)

func newSceneDetectCommand(ctx *commandContext) *cobra.Command {
	var action options.SceneDetect

	cmd := &cobra.Command{
		Use:   "scene-detect",
		Short: "Detect scene changes with scenedetect",
		Long: `Run the scene detector against --input-path.

The backend is always scenedetect for this command, whatever --program says.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvocation(cmd, ctx, action)
		},
	}

	cmd.Flags().BoolVar(&action.DetectContent, "detect-content", false, "Use content-aware detection")
	cmd.Flags().BoolVar(&action.ListScenes, "list-scenes", false, "Print the detected scene list")
	cmd.Flags().BoolVar(&action.SplitVideo, "split-video", false, "Split the input at detected scenes")
	return cmd
}
