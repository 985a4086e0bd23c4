package config

import "os"

type Config struct {
	HTTPAddr        string
	DataFile        string
	DatabaseURL     string
	InternalToken   string
	CORSAllowOrigin string
}

func MustLoad() Config {
	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		DataFile:        env("DATA_FILE", "data/orcamentos.json"),
		DatabaseURL:     env("DATABASE_URL", ""),
		InternalToken:   env("INTERNAL_TOKEN", ""),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
