package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env    string `env:"ENV" env-required:"true"`
	HTTP   HTTPConfig
	CORS   CORSConfig
	Client ClientConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:4200"`
}

// ClientConfig configures the terminal client binary; the server ignores it.
type ClientConfig struct {
	APIBaseURL     string        `env:"TODO_API_URL" env-default:"http://localhost:8080"`
	RequestTimeout time.Duration `env:"TODO_API_TIMEOUT" env-default:"10s"`
}
