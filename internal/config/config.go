package config

import "os"

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	SSO      SSOConfig
	AI       AIConfig
	Postgres PostgresConfig
}

type ServerConfig struct {
	Addr           string
	AllowedOrigins string
}

type AuthConfig struct {
	JWTSecret string
	// AllowInsecureDefault keeps the historical hardcoded signing secret
	// alive for deployments that never configured one.
	AllowInsecureDefault string
}

type SSOConfig struct {
	IssuerURL    string
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type AIConfig struct {
	APIKey string
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
		Server: ServerConfig{
			Addr:           getenv("HTTP_ADDR", ":8080"),
			AllowedOrigins: os.Getenv("CORS_ORIGINS"),
		},
		Auth: AuthConfig{
			JWTSecret:            os.Getenv("JWT_SECRET"),
			AllowInsecureDefault: os.Getenv("AUTH_ALLOW_INSECURE_DEFAULT"),
		},
		SSO: SSOConfig{
			IssuerURL:    os.Getenv("SSO_ISSUER_URL"),
			ClientID:     os.Getenv("SSO_CLIENT_ID"),
			ClientSecret: os.Getenv("SSO_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("SSO_REDIRECT_URL"),
		},
		AI: AIConfig{
			APIKey: os.Getenv("AI_API_KEY"),
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

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
