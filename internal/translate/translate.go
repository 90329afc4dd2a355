// Package translate maps calibrated Options to the argument vector each
// backend's own parser expects.
//
// The vector is handed to the process directly, with no shell in between,
// so tokens are never quoted, reordered, or deduplicated.
package translate

import (
	"path/filepath"
	"strconv"
	"strings"

	"ffext/internal/options"
)

// Transcoder flags.
const (
	flagHideBanner = "-hide_banner"
	flagInput      = "-i"
	flagNoStdin    = "-nostdin"
	flagStats      = "-stats"
	flagLogLevel   = "-loglevel"
	logLevelPanic  = "panic"
	flagSeekStart  = "-ss"
	flagQuality    = "-q:v"
	flagFormat     = "-f"
	flagFrameCount = "-frames:v"
	flagFilter     = "-vf"
)

// Scene detector flags and commands.
const (
	flagSceneInput   = "--input"
	cmdDetectContent = "detect-content"
	cmdListScene     = "list-scene"
	cmdSplitVideo    = "split-video"
)

// Args returns the argument vector for opts. It never fails: missing
// optional fields drop their flags and an unknown backend yields an empty
// vector.
func Args(opts options.Options) []string {
	switch opts.Backend {
	case options.Transcoder:
		return transcoderArgs(opts)
	case options.SceneDetector:
		return sceneDetectorArgs(opts)
	default:
		return []string{}
	}
}

// OutputPath returns the positional output the transcoder would receive,
// either the explicit path or one synthesized for a split. The boolean is
// false when no output argument is emitted.
func OutputPath(opts options.Options) (string, bool) {
	if opts.Backend != options.Transcoder {
		return "", false
	}
	b := transcoderBuilder{opts: opts}
	options.Match(opts.Action, &b)
	return b.output, b.output != ""
}

func transcoderArgs(opts options.Options) []string {
	b := transcoderBuilder{
		opts: opts,
		args: []string{flagHideBanner},
	}
	if opts.HasInput() {
		b.args = append(b.args, flagInput, opts.InputPath)
	}
	options.Match(opts.Action, &b)
	if b.output != "" {
		b.args = append(b.args, b.output)
	}
	return b.args
}

type transcoderBuilder struct {
	opts   options.Options
	args   []string
	output string
}

func (b *transcoderBuilder) NoAction() {
	b.output = b.opts.OutputPath
}

func (b *transcoderBuilder) SceneDetect(options.SceneDetect) {
	b.output = b.opts.OutputPath
}

func (b *transcoderBuilder) SplitByTime(split options.SplitByTime) {
	b.args = append(b.args,
		flagNoStdin,
		flagStats,
		flagLogLevel, logLevelPanic,
		flagSeekStart, split.StartTime,
		flagQuality, strconv.FormatUint(uint64(split.VideoQuality), 10),
		flagFormat, split.OutputFormat,
		flagFrameCount, strconv.FormatUint(uint64(split.VideoFrame), 10),
		flagFilter, ScaleFilter(split.WidthScale, split.HeightScale),
	)
	if b.opts.HasOutput() {
		b.output = b.opts.OutputPath
		return
	}
	b.output = SynthesizeOutputPath(b.opts.InputPath, split)
}

func sceneDetectorArgs(opts options.Options) []string {
	b := sceneDetectorBuilder{args: []string{}}
	if opts.HasInput() {
		b.args = append(b.args, flagSceneInput, opts.InputPath)
	}
	options.Match(opts.Action, &b)
	return b.args
}

type sceneDetectorBuilder struct {
	args []string
}

func (b *sceneDetectorBuilder) NoAction() {}

func (b *sceneDetectorBuilder) SceneDetect(detect options.SceneDetect) {
	if detect.DetectContent {
		b.args = append(b.args, cmdDetectContent)
	}
	if detect.ListScenes {
		b.args = append(b.args, cmdListScene)
	}
	if detect.SplitVideo {
		b.args = append(b.args, cmdSplitVideo)
	}
}

func (b *sceneDetectorBuilder) SplitByTime(options.SplitByTime) {}

// ScaleFilter renders the ffmpeg scale filter expression. The result is a
// single argv token and must not be wrapped in quotes.
func ScaleFilter(width, height int8) string {
	return "scale=" + strconv.Itoa(int(width)) + ":" + strconv.Itoa(int(height))
}

// SynthesizeOutputPath derives a default output file name for a split:
// the input stem (when there is an input) and the output format joined by
// "-", followed directly by the output suffix. Without an input the name is
// just format+suffix, e.g. "image2.png".
func SynthesizeOutputPath(inputPath string, split options.SplitByTime) string {
	parts := make([]string, 0, 2)
	if inputPath != "" {
		parts = append(parts, fileStem(inputPath))
	}
	parts = append(parts, split.OutputFormat)
	return strings.Join(parts, "-") + split.OutputSuffix
}

func fileStem(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		// dotfiles such as ".clip" keep their full name
		stem = base
	}
	return stem
}
