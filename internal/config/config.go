package config

import "os"

type Config struct {
	Env      string
	Server   ServerConfig
	Auth     AuthConfig
	Postgres PostgresConfig
}

type ServerConfig struct {
	Port string
	// CORSAllowedOrigins is comma-separated; "*" allows any origin.
	CORSAllowedOrigins string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

func Load() Config {
	return Config{
		Env: getenv("APP_ENV", "development"),
		Server: ServerConfig{
			Port:               getenv("PORT", "3000"),
			CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
			TokenTTL:  getenv("TOKEN_TTL", "168h"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
	}
}

// IsProduction reports whether the process runs with production error
// sanitization and a mandatory signing secret.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// HasPostgres reports whether enough environment is present to reach a
// database.
func (c Config) HasPostgres() bool {
	return c.Postgres.DatabaseURL != "" || (c.Postgres.User != "" && c.Postgres.Database != "")
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
