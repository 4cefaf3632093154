package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/genrerec/internal/vectorizer/openai"
)

// Config represents the recommendation service configuration.
type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Engine  EngineConfig
	Cache   CacheConfig
	Catalog CatalogConfig
	OpenAI  openai.Config
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"30"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// EngineConfig contains recommendation engine settings.
type EngineConfig struct {
	DefaultTopN int    `env:"RECOMMEND_DEFAULT_TOP_N" envDefault:"3"`
	MaxTopN     int    `env:"RECOMMEND_MAX_TOP_N"     envDefault:"50"`
	Vectorizer  string `env:"VECTORIZER"              envDefault:"tfidf"`
}

// CacheConfig contains similarity cache settings.
type CacheConfig struct {
	Backend       string `env:"CACHE_BACKEND"     envDefault:"memory"`
	MaxEntries    int    `env:"CACHE_MAX_ENTRIES" envDefault:"0"`
	TTL           int    `env:"CACHE_TTL"         envDefault:"0"`
	KeyPrefix     string `env:"CACHE_KEY_PREFIX"  envDefault:"genrerec:matrix"`
	RedisAddr     string `env:"REDIS_ADDR"        envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"          envDefault:"0"`
}

// CatalogConfig contains catalog source settings.
type CatalogConfig struct {
	Builtin bool   `env:"CATALOG_BUILTIN" envDefault:"true"`
	Dir     string `env:"CATALOG_DIR"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*EngineConfig
	*CacheConfig
	*CatalogConfig
	*openai.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.Engine,
		&cfg.Cache,
		&cfg.Catalog,
		&cfg.OpenAI,
	}
}
