package config

const (
	defaultFFmpegBinary = "ffmpeg"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults. Both fix-up
// switches default to off; a plain run only stamps timestamps.
func Default() Config {
	return Config{
		Tools: Tools{
			FFmpegBinary: defaultFFmpegBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
