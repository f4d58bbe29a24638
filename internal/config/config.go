package config

import (
	"errors"
	"os"
	"strings"
)

type Config struct {
	MongoURI            string
	PostgresURI         string // contact form storage; empty disables it
	RedisURI            string // rate limiting; empty falls back to the in-process limiter
	OpenAIAPIKey        string // AI writing helpers; empty disables them
	Port                string
	AllowedOrigins      []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL
	CloudinaryName      string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	Environment         string // ENV: production, development, etc.
}

// Load reads configuration from the environment. MONGODB_URI is the only hard
// requirement: without the document store there is nothing to serve, so its
// absence is a startup error rather than a runtime crash later.
func Load() (*Config, error) {
	mongoURI := getEnv("MONGODB_URI", getEnv("MONGO_URI", ""))
	if mongoURI == "" {
		return nil, errors.New("MONGODB_URI is not set")
	}

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{getEnv("FRONTEND_URL", "http://localhost:3000")}
	}

	return &Config{
		MongoURI:            mongoURI,
		PostgresURI:         getEnv("POSTGRES_URI", ""),
		RedisURI:            getEnv("REDIS_URI", ""),
		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		Port:                getEnv("PORT", "8080"),
		AllowedOrigins:      allowedOrigins,
		CloudinaryName:      getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		Environment:         strings.ToLower(strings.TrimSpace(getEnv("ENV", "development"))),
	}, nil
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
