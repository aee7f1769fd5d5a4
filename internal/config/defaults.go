package config

const (
	defaultDataDir     = "~/.local/share/dossard"
	defaultLogDir      = "~/.local/share/dossard/logs"
	defaultPreviewRows = 10
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Import: Import{
			PreviewRows: defaultPreviewRows,
		},
		Matching: Matching{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
