package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ffext/internal/media/ffprobe"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Inspect --input-path with ffprobe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			input := ctx.flags.inputPath
			if input == "" {
				return errors.New("probe: --input-path is required")
			}

			result, err := ffprobe.Inspect(cmd.Context(), cfg.FFprobeBinary(), input)
			if err != nil {
				return err
			}
			if ctx.flags.json {
				return printJSON(cmd.OutOrStdout(), result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Field", "Value"},
				probeRows(input, result),
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}
}

func probeRows(input string, result ffprobe.Result) [][]string {
	rows := [][]string{
		{"Path", input},
		{"Container", result.Format.FormatName},
		{"Duration", result.Duration().String()},
		{"Size", formatBytes(result.SizeBytes())},
		{"Video streams", strconv.Itoa(result.VideoStreamCount())},
		{"Audio streams", strconv.Itoa(result.AudioStreamCount())},
	}
	if video, ok := result.PrimaryVideo(); ok {
		rows = append(rows,
			[]string{"Video codec", video.CodecName},
			[]string{"Resolution", fmt.Sprintf("%dx%d", video.Width, video.Height)},
		)
		if rate := video.FrameRateValue(); rate > 0 {
			rows = append(rows, []string{"Frame rate", strconv.FormatFloat(rate, 'f', 3, 64)})
		}
	}
	return rows
}

func formatBytes(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
