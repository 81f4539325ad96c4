package config

import "time"

// Language is a supported UI language.
type Language string

const (
	LanguageKorean     Language = "ko"
	LanguageEnglish    Language = "en"
	LanguageVietnamese Language = "vi"
)

// Languages lists the supported languages; the first is the default.
var Languages = []Language{LanguageKorean, LanguageEnglish, LanguageVietnamese}

// Config is the top-level lexdesk configuration, corresponding to .lexdesk.yml.
type Config struct {
	Backend  BackendConfig `yaml:"backend" koanf:"backend"`
	Server   ServerConfig  `yaml:"server" koanf:"server"`
	Language Language      `yaml:"language" koanf:"language"`
	Log      LogConfig     `yaml:"log" koanf:"log"`
	OAuth    OAuthConfig   `yaml:"oauth" koanf:"oauth"`
}

// BackendConfig locates the legal-analysis API.
type BackendConfig struct {
	BaseURL string `yaml:"base_url" koanf:"base_url"`
	// Timeout bounds each backend call. Zero disables it.
	Timeout time.Duration `yaml:"timeout" koanf:"timeout"`
}

// ServerConfig holds the web UI settings.
type ServerConfig struct {
	Port            int    `yaml:"port" koanf:"port"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	DataDir         string `yaml:"data_dir" koanf:"data_dir"`
}

// LogConfig selects the application log level and format (text or json).
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}

// OAuthConfig holds the Google OAuth client used for sign-in.
type OAuthConfig struct {
	ClientID     string `yaml:"client_id" koanf:"client_id"`
	ClientSecret string `yaml:"client_secret" koanf:"client_secret"`
	RedirectURL  string `yaml:"redirect_url" koanf:"redirect_url"`
}

// Enabled reports whether a client id and secret are configured.
func (o OAuthConfig) Enabled() bool {
	return o.ClientID != "" && o.ClientSecret != ""
}
