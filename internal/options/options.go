package options

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Backend identifies the external program an invocation targets. Values
// other than the known constants are legal and translate to no arguments.
type Backend string

const (
	// Transcoder is the general-purpose ffmpeg transcoder.
	Transcoder Backend = "ffmpeg"
	// SceneDetector is the PySceneDetect command-line tool.
	SceneDetector Backend = "scenedetect"

	// DefaultBackend is used until calibration says otherwise.
	DefaultBackend = Transcoder
)

// Executable returns the program name for the backend.
func (b Backend) Executable() string {
	return strings.TrimSpace(string(b))
}

// Known reports whether the translator has an argument grammar for b.
func (b Backend) Known() bool {
	return b == Transcoder || b == SceneDetector
}

// DisplayName returns a human label for tables and logs.
func (b Backend) DisplayName() string {
	switch b {
	case Transcoder:
		return "Transcoder (ffmpeg)"
	case SceneDetector:
		return "Scene detector (scenedetect)"
	}
	name := b.Executable()
	if name == "" {
		return "(none)"
	}
	return cases.Title(language.English).String(name)
}

// Options is the raw intent for one invocation. Empty InputPath or
// OutputPath means the path was not supplied.
type Options struct {
	Backend    Backend
	InputPath  string
	OutputPath string
	Verbose    bool
	DryRun     bool
	Action     Action
}

// New returns Options with the default backend and no action.
func New() Options {
	return Options{
		Backend: DefaultBackend,
		Action:  NoAction{},
	}
}

// HasInput reports whether an input path was supplied.
func (o Options) HasInput() bool {
	return o.InputPath != ""
}

// HasOutput reports whether an explicit output path was supplied.
func (o Options) HasOutput() bool {
	return o.OutputPath != ""
}

// Calibrate derives the backend from the action: scene detection always
// runs on the scene detector, every other action keeps the chosen backend.
func (o *Options) Calibrate() {
	Match(o.Action, calibrator{opts: o})
}

type calibrator struct {
	opts *Options
}

func (c calibrator) NoAction() {}

func (c calibrator) SceneDetect(SceneDetect) {
	c.opts.Backend = SceneDetector
}

func (c calibrator) SplitByTime(SplitByTime) {}
