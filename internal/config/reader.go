package config

import "github.com/ilyakaznacheev/cleanenv"

// Reader loads a Config from some source. Only the env reader exists;
// both binaries are configured through environment variables (plus an
// optional .env picked up by godotenv at bootstrap).
type Reader interface {
	Read() (*Config, error)
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
