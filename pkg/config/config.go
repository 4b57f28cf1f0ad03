package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the gateway configuration (read via Viper from env and optionally a file).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Backend BackendConfig
	Store   StoreConfig
	Demo    DemoConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig listen settings for the gateway server.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig session token settings.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
	CookieName string
}

// BackendConfig locates the external HRM chatbot API.
type BackendConfig struct {
	BaseURL string // e.g. http://127.0.0.1:8000
}

// StoreConfig durable local storage (sessions + audit log).
type StoreConfig struct {
	Path string // sqlite file path
}

// DemoConfig controls the offline demo-mode login fallback.
// When enabled and the backend is unreachable, the built-in demo
// directory answers login attempts instead of failing the form.
type DemoConfig struct {
	Enabled  bool
	Password string // shared password for the demo users
}

// Load reads the configuration from environment variables (and optionally a file).
// Env vars take priority. Expected names: APP_ENV, HTTP_PORT, JWT_SECRET,
// BACKEND_BASE_URL, STORE_PATH, DEMO_MODE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env or config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "hrm-chat-gateway"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "hrm-chat-gateway"),
			CookieName: getString(v, "JWT_COOKIE_NAME", "hrm_session"),
		},
		Backend: BackendConfig{
			BaseURL: getString(v, "BACKEND_BASE_URL", "http://127.0.0.1:8000"),
		},
		Store: StoreConfig{
			Path: getString(v, "STORE_PATH", "./data/gateway.db"),
		},
		Demo: DemoConfig{
			Enabled:  getBool(v, "DEMO_MODE", true),
			Password: getString(v, "DEMO_PASSWORD", "icss2026"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
