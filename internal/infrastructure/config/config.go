package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// Administrator credentials. The password is a bcrypt hash; when either
	// value is empty the administrator login path is disabled.
	AdminUsername     string `env:"ADMIN_USERNAME"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// DemoLoginDelay mimics store latency on the demo login path.
	DemoLoginDelay time.Duration `env:"DEMO_LOGIN_DELAY, default=800ms"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Assistant AssistantConfig
}

// MongoConfig points at the record store. An EMPTY URI is meaningful: it
// marks the store as unconfigured and switches the login procedure to its
// demo branch, so no default is applied here.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=portal"`
}

// Configured reports whether a record store was provided.
func (m MongoConfig) Configured() bool { return m.URI != "" }

// RedisConfig points at the optional chat-guard backend.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

func (r RedisConfig) Configured() bool { return r.Addr != "" }

// AssistantConfig points at the text-generation service. An empty key is
// valid: the gateway then serves its unavailable fallback.
type AssistantConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL, default=gemini-3-flash-preview"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
