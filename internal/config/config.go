package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Remote RemoteConfig `mapstructure:"remote" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// RemoteConfig contains settings for the spreadsheet-backed persistence
// endpoint.
type RemoteConfig struct {
	// WebAppURL is the deployed Apps Script web app URL.
	WebAppURL string `mapstructure:"web_app_url" validate:"required,url"`

	// TimeoutSeconds bounds a single request to the endpoint.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gt=0"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`
}
