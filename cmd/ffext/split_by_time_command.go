package main

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"ffext/internal/config"
	"ffext/internal/options"
	"ffext/internal/timecode"
)

type splitFlags struct {
	start        string
	startSeconds float64
	quality      uint8
	format       string
	frames       uint8
	suffix       string
	widthScale   int8
	heightScale  int8
}

func newSplitByTimeCommand(ctx *commandContext) *cobra.Command {
	defaults := config.Default().Split
	flags := &splitFlags{}

	cmd := &cobra.Command{
		Use:   "split-by-time",
		Short: "Extract frames from the input starting at a time offset",
		Long: `Run the transcoder to extract frames starting at --start (or --start-seconds).

When --output-path is omitted the output is derived from the input:
<input-stem>-<format><suffix>, for example clip-image2.png. Flags that are
not given fall back to the [split] section of the configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			action, err := flags.action(cmd, cfg.Split)
			if err != nil {
				return err
			}
			return runInvocation(cmd, ctx, action)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.start, "start", "", "Start offset passed to the transcoder verbatim (e.g. 00:01:30)")
	f.Float64Var(&flags.startSeconds, "start-seconds", 0, "Start offset in seconds, rendered as HH:MM:SS")
	f.Uint8Var(&flags.quality, "quality", defaults.VideoQuality, "Video quality (-q:v)")
	f.StringVar(&flags.format, "format", defaults.OutputFormat, "Output container format (-f)")
	f.Uint8Var(&flags.frames, "frames", defaults.VideoFrame, "Number of frames to extract (-frames:v)")
	f.StringVar(&flags.suffix, "suffix", defaults.OutputSuffix, "Suffix for the derived output path")
	f.Int8Var(&flags.widthScale, "width-scale", defaults.WidthScale, "Scale filter width (-1 keeps aspect)")
	f.Int8Var(&flags.heightScale, "height-scale", defaults.HeightScale, "Scale filter height (-1 keeps aspect)")
	cmd.MarkFlagsMutuallyExclusive("start", "start-seconds")
	cmd.MarkFlagsOneRequired("start", "start-seconds")
	return cmd
}

// action builds the SplitByTime action, taking every flag the user did not
// set from split.
func (f *splitFlags) action(cmd *cobra.Command, split config.Split) (options.SplitByTime, error) {
	changed := cmd.Flags().Changed

	action := options.SplitByTime{
		VideoQuality: split.VideoQuality,
		OutputFormat: split.OutputFormat,
		VideoFrame:   split.VideoFrame,
		OutputSuffix: split.OutputSuffix,
		WidthScale:   split.WidthScale,
		HeightScale:  split.HeightScale,
	}
	if changed("quality") {
		action.VideoQuality = f.quality
	}
	if changed("format") {
		action.OutputFormat = f.format
	}
	if changed("frames") {
		action.VideoFrame = f.frames
	}
	if changed("suffix") {
		action.OutputSuffix = f.suffix
	}
	if changed("width-scale") {
		action.WidthScale = f.widthScale
	}
	if changed("height-scale") {
		action.HeightScale = f.heightScale
	}

	switch {
	case changed("start-seconds"):
		if f.startSeconds < 0 || math.IsNaN(f.startSeconds) || math.IsInf(f.startSeconds, 0) {
			return options.SplitByTime{}, fmt.Errorf("--start-seconds: invalid offset %v", f.startSeconds)
		}
		action.StartTime = timecode.FromSeconds(f.startSeconds).String()
	default:
		if strings.TrimSpace(f.start) == "" {
			return options.SplitByTime{}, errors.New("--start: value required")
		}
		if _, err := timecode.Parse(f.start); err != nil {
			return options.SplitByTime{}, fmt.Errorf("--start: %w", err)
		}
		action.StartTime = f.start
	}
	return action, nil
}
