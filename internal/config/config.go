// Package config loads server configuration from the environment.
package config

import "github.com/caarlos0/env/v11"

// Config holds process-wide settings. Redis and Mongo are optional: with
// neither configured the analytics log lives in memory only.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	RedisURI string `env:"REDIS_URI"`
	MongoURI string `env:"MONGO_URI"`
	MongoDB  string `env:"MONGO_DB" envDefault:"dumbuddy"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"password123"`
	JWTSecret     string `env:"JWT_SECRET" envDefault:"super-secret-key-change-in-production"`

	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
	CORSAllowedMethods string `env:"CORS_ALLOWED_METHODS" envDefault:"GET, POST, PUT, DELETE, OPTIONS"`
	CORSAllowedHeaders string `env:"CORS_ALLOWED_HEADERS" envDefault:"Content-Type, Authorization"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
