package translate_test

import (
	"reflect"
	"strings"
	"testing"

	"ffext/internal/options"
	"ffext/internal/translate"
)

func defaultSplit() options.SplitByTime {
	return options.SplitByTime{
		StartTime:    "00:00:10",
		VideoQuality: 2,
		OutputFormat: "image2",
		VideoFrame:   1,
		OutputSuffix: ".png",
		WidthScale:   -1,
		HeightScale:  -1,
	}
}

func TestArgsTranscoderPassThrough(t *testing.T) {
	opts := options.Options{
		Backend:    options.Transcoder,
		InputPath:  "/path/from",
		OutputPath: "/path/to",
		Action:     options.NoAction{},
	}
	got := translate.Args(opts)
	want := []string{"-hide_banner", "-i", "/path/from", "/path/to"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected args: got %q want %q", got, want)
	}
}

func TestArgsTranscoderWithoutPaths(t *testing.T) {
	got := translate.Args(options.New())
	want := []string{"-hide_banner"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected args: got %q want %q", got, want)
	}
}

func TestArgsTranscoderSplitByTimeSynthesizesOutput(t *testing.T) {
	opts := options.Options{
		Backend:   options.Transcoder,
		InputPath: "/a/b/clip.mp4",
		Action:    defaultSplit(),
	}
	got := translate.Args(opts)
	want := []string{
		"-hide_banner",
		"-i", "/a/b/clip.mp4",
		"-nostdin", "-stats", "-loglevel", "panic",
		"-ss", "00:00:10",
		"-q:v", "2",
		"-f", "image2",
		"-frames:v", "1",
		"-vf", "scale=-1:-1",
		"clip-image2.png",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected args:\n got %q\nwant %q", got, want)
	}
	for _, arg := range got {
		if strings.ContainsAny(arg, `"'`) {
			t.Fatalf("argument %q must not contain quote characters", arg)
		}
	}
}

func TestArgsTranscoderSplitByTimeExplicitOutput(t *testing.T) {
	split := defaultSplit()
	split.VideoQuality = 31
	split.VideoFrame = 255
	split.WidthScale = 127
	split.HeightScale = -128
	opts := options.Options{
		Backend:    options.Transcoder,
		InputPath:  "in.mkv",
		OutputPath: "/out/frame-%03d.jpg",
		Action:     split,
	}
	got := translate.Args(opts)
	if got[len(got)-1] != "/out/frame-%03d.jpg" {
		t.Fatalf("expected explicit output last, got %q", got)
	}
	assertFlagValue(t, got, "-q:v", "31")
	assertFlagValue(t, got, "-frames:v", "255")
	assertFlagValue(t, got, "-vf", "scale=127:-128")
}

func TestArgsTranscoderSplitWithoutInput(t *testing.T) {
	opts := options.Options{Backend: options.Transcoder, Action: defaultSplit()}
	got := translate.Args(opts)
	if got[0] != "-hide_banner" || got[1] != "-nostdin" {
		t.Fatalf("expected input flags to be omitted, got %q", got)
	}
	if last := got[len(got)-1]; last != "image2.png" {
		t.Fatalf("expected fallback output name image2.png, got %q", last)
	}
}

func TestArgsSceneDetector(t *testing.T) {
	opts := options.Options{
		Backend:   options.SceneDetector,
		InputPath: "/v.mp4",
		Action:    options.SceneDetect{DetectContent: true, ListScenes: true},
	}
	got := translate.Args(opts)
	want := []string{"--input", "/v.mp4", "detect-content", "list-scene"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected args: got %q want %q", got, want)
	}
}

func TestArgsSceneDetectorSubsets(t *testing.T) {
	tests := []struct {
		detect options.SceneDetect
		want   []string
	}{
		{options.SceneDetect{}, []string{}},
		{options.SceneDetect{SplitVideo: true}, []string{"split-video"}},
		{options.SceneDetect{ListScenes: true, SplitVideo: true}, []string{"list-scene", "split-video"}},
		{options.SceneDetect{DetectContent: true, ListScenes: true, SplitVideo: true}, []string{"detect-content", "list-scene", "split-video"}},
	}
	for _, tt := range tests {
		opts := options.Options{Backend: options.SceneDetector, Action: tt.detect}
		got := translate.Args(opts)
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("%+v: got %q want %q", tt.detect, got, tt.want)
		}
	}
}

func TestArgsSceneDetectorIgnoresOutputPath(t *testing.T) {
	opts := options.Options{
		Backend:    options.SceneDetector,
		InputPath:  "/v.mp4",
		OutputPath: "/ignored",
		Action:     options.NoAction{},
	}
	got := translate.Args(opts)
	want := []string{"--input", "/v.mp4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected args: got %q want %q", got, want)
	}
}

func TestArgsUnknownBackendIsEmpty(t *testing.T) {
	opts := options.Options{
		Backend:    "ffprobe",
		InputPath:  "/v.mp4",
		OutputPath: "/out",
		Action:     defaultSplit(),
	}
	got := translate.Args(opts)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil vector, got %#v", got)
	}
}

func TestArgsIsDeterministic(t *testing.T) {
	opts := options.Options{Backend: options.Transcoder, InputPath: "/a/b/clip.mp4", Action: defaultSplit()}
	first := translate.Args(opts)
	second := translate.Args(opts)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical vectors, got %q and %q", first, second)
	}
	if opts.OutputPath != "" {
		t.Fatal("translation must not write the synthesized output back")
	}
}

func TestOutputPath(t *testing.T) {
	split := options.Options{Backend: options.Transcoder, InputPath: "/a/b/clip.mp4", Action: defaultSplit()}
	if got, ok := translate.OutputPath(split); !ok || got != "clip-image2.png" {
		t.Fatalf("expected synthesized output, got %q %v", got, ok)
	}
	bare := options.Options{Backend: options.Transcoder, InputPath: "/a.mp4"}
	if got, ok := translate.OutputPath(bare); ok {
		t.Fatalf("expected no output, got %q", got)
	}
	scenes := options.Options{Backend: options.SceneDetector, OutputPath: "/x"}
	if _, ok := translate.OutputPath(scenes); ok {
		t.Fatal("scene detector never receives an output argument")
	}
}

func TestSynthesizeOutputPath(t *testing.T) {
	tests := []struct {
		input  string
		format string
		suffix string
		want   string
	}{
		{"/a/b/clip.mp4", "image2", ".png", "clip-image2.png"},
		{"", "image2", ".png", "image2.png"},
		{"movie.tar.gz", "mjpeg", "_%02d.jpg", "movie.tar-mjpeg_%02d.jpg"},
		{"/media/.hidden", "image2", ".png", ".hidden-image2.png"},
		{"noext", "image2", "", "noext-image2"},
	}
	for _, tt := range tests {
		split := options.SplitByTime{OutputFormat: tt.format, OutputSuffix: tt.suffix}
		if got := translate.SynthesizeOutputPath(tt.input, split); got != tt.want {
			t.Fatalf("SynthesizeOutputPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func assertFlagValue(t *testing.T, args []string, flag, want string) {
	t.Helper()
	for i, arg := range args {
		if arg != flag {
			continue
		}
		if i+1 >= len(args) {
			t.Fatalf("flag %s present without value in %q", flag, args)
		}
		if args[i+1] != want {
			t.Fatalf("flag %s: got %q want %q", flag, args[i+1], want)
		}
		return
	}
	t.Fatalf("flag %s not found in %q", flag, args)
}
