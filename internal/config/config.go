package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Snippet  SnippetConfig  `yaml:"snippet"`
	Impex    ImpexConfig    `yaml:"impex"`
	Cache    CacheConfig    `yaml:"cache"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// SnippetConfig holds profile authoring and rendering settings.
type SnippetConfig struct {
	DefaultLanguage string `yaml:"default_language" env:"SNIPPET_DEFAULT_LANGUAGE" env-default:"en-US"`
	PrettyJSON      bool   `yaml:"pretty_json"      env:"SNIPPET_PRETTY_JSON"      env-default:"true"`
	MaxProfiles     int    `yaml:"max_profiles"     env:"SNIPPET_MAX_PROFILES"     env-default:"500"`
}

// ImpexConfig holds profile import/export settings.
type ImpexConfig struct {
	ChunkSize int `yaml:"chunk_size" env:"IMPEX_CHUNK_SIZE" env-default:"50"`
}

// CacheConfig holds the in-process profile cache settings.
type CacheConfig struct {
	Enabled bool `yaml:"enabled" env:"CACHE_ENABLED" env-default:"true"`
	Size    int  `yaml:"size"    env:"CACHE_SIZE"    env-default:"256"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
