package config

import (
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// DefaultJWTSecret is what the server falls back to when JWT_SECRET is
// unset. It exists so a bare `go run .` works in development; Load logs a
// warning whenever it is in effect.
const DefaultJWTSecret = "notemark-dev-secret-do-not-use-in-production"

type Config struct {
	Port     string
	Mongo    MongoConfig
	JWT      JWTConfig
	RedisURL string
	Fetch    FetchConfig
}

type MongoConfig struct {
	URI             string
	Database        string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type FetchConfig struct {
	Timeout time.Duration
}

// Load reads configuration from the environment with sane defaults.
// godotenv (if a .env file is present) is expected to have primed the
// environment before this is called.
func Load(logger *zap.Logger) *Config {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_db", "notemark")
	v.SetDefault("mongo_max_pool_size", 100)
	v.SetDefault("mongo_min_pool_size", 10)
	v.SetDefault("mongo_max_conn_idle_time", 60*time.Second)
	v.SetDefault("jwt_secret", DefaultJWTSecret)
	v.SetDefault("token_ttl", 168*time.Hour)
	v.SetDefault("redis_url", "")
	v.SetDefault("fetch_timeout", 10*time.Second)

	v.AutomaticEnv()

	cfg := &Config{
		Port: v.GetString("port"),
		Mongo: MongoConfig{
			URI:             v.GetString("mongo_uri"),
			Database:        v.GetString("mongo_db"),
			MaxPoolSize:     v.GetUint64("mongo_max_pool_size"),
			MinPoolSize:     v.GetUint64("mongo_min_pool_size"),
			MaxConnIdleTime: v.GetDuration("mongo_max_conn_idle_time"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("jwt_secret"),
			TTL:    v.GetDuration("token_ttl"),
		},
		RedisURL: v.GetString("redis_url"),
		Fetch: FetchConfig{
			Timeout: v.GetDuration("fetch_timeout"),
		},
	}

	if cfg.JWT.Secret == DefaultJWTSecret {
		logger.Warn("JWT_SECRET is not set, using the insecure development default")
	}

	return cfg
}
