package config

const (
	defaultConfigPath   = "~/.config/ffext/config.toml"
	defaultFFmpeg       = "ffmpeg"
	defaultSceneDetect  = "scenedetect"
	defaultFFprobe      = "ffprobe"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultVideoQuality = 2
	defaultOutputFormat = "image2"
	defaultVideoFrame   = 1
	defaultOutputSuffix = ".png"
	defaultScale        = -1
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Binaries: Binaries{
			FFmpeg:      defaultFFmpeg,
			SceneDetect: defaultSceneDetect,
			FFprobe:     defaultFFprobe,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Split: Split{
			VideoQuality: defaultVideoQuality,
			OutputFormat: defaultOutputFormat,
			VideoFrame:   defaultVideoFrame,
			OutputSuffix: defaultOutputSuffix,
			WidthScale:   defaultScale,
			HeightScale:  defaultScale,
		},
	}
}
