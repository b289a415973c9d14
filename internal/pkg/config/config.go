package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Redis   RedisConfig
	Auth    AuthConfig
}

type SessionConfig struct {
	// Backend selects the session-slot store: memory, file, or redis.
	Backend string `env:"SESSION_BACKEND, default=memory"`
	// Dir is the directory holding the slot file for the file backend.
	Dir string `env:"SESSION_DIR, default=.session"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,  default=0"`
}

type AuthConfig struct {
	// Simulated network latency before a result is delivered. Registration
	// is deliberately slower than login.
	LoginDelay    time.Duration `env:"LOGIN_DELAY,    default=1500ms"`
	RegisterDelay time.Duration `env:"REGISTER_DELAY, default=2s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
