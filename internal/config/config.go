package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Contact  ContactConfig  `yaml:"contact"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"8001"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN string `yaml:"dsn" env:"DATABASE_DSN" env-required:"true"`
}

// AuthConfig holds token and admin-bootstrap settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"resume-api"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	AdminUsername  string        `yaml:"admin_username"   env:"AUTH_ADMIN_USERNAME"   env-default:"admin"`
	AdminEmail     string        `yaml:"admin_email"      env:"AUTH_ADMIN_EMAIL"      env-default:"kclynch@uh.edu"`
	AdminPassword  string        `yaml:"admin_password"   env:"AUTH_ADMIN_PASSWORD"   env-default:"admin123"`
}

// ContactConfig holds contact-form settings.
type ContactConfig struct {
	RecipientEmail string `yaml:"recipient_email" env:"CONTACT_RECIPIENT_EMAIL" env-default:"kclynch@uh.edu"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
