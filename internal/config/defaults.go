package config

const (
	defaultOutputDir         = "~/.local/share/tarteel/recitations"
	defaultLogDir            = "~/.local/share/tarteel/logs"
	defaultAPIBaseURL        = "https://api.alquran.cloud/v1"
	defaultAPITimeoutSeconds = 30
	defaultAPIUserAgent      = "tarteel/dev"
	defaultCDNBaseURL        = "https://cdn.islamic.network/quran/audio"
	defaultCDNBitrate        = 192
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		API: API{
			BaseURL:        defaultAPIBaseURL,
			TimeoutSeconds: defaultAPITimeoutSeconds,
			UserAgent:      defaultAPIUserAgent,
		},
		CDN: CDN{
			BaseURL: defaultCDNBaseURL,
			Bitrate: defaultCDNBitrate,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
