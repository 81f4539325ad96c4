package config

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".lexdesk.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL: "http://localhost:8000",
		},
		Server: ServerConfig{
			Port:    8080,
			DataDir: ".lexdesk",
		},
		Language: LanguageKorean,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
