package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type AppCfg struct {
	Host string
	Port int
	Mode string
}

type LogCfg struct {
	Level string
}

type DBCfg struct {
	Driver   string
	DSN      string
	LogLevel string
}

type SessionCfg struct {
	Name   string
	Secret string
	Store  string
	MaxAge int
	Secure bool
}

type RedisCfg struct {
	Addr     string
	Password string
	PoolSize int
}

type SeedCfg struct {
	CatalogPath string
}

type Config struct {
	App      AppCfg
	Log      LogCfg
	Database DBCfg
	Session  SessionCfg
	Redis    RedisCfg
	Seed     SeedCfg
}

func Load() (*Config, error) {
	base := newViper()

	if err := base.ReadInConfig(); err == nil {
		// expand ${ENV} references once before parsing
		raw, err := os.ReadFile(base.ConfigFileUsed())
		if err != nil {
			return nil, err
		}
		expanded := os.ExpandEnv(string(raw))

		v := newViper()
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, err
		}

		cfg := new(Config)
		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// No config file: env + defaults only
	cfg := new(Config)
	if err := base.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	v.SetEnvPrefix("APP") // e.g. APP_DATABASE_DSN -> database.dsn
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.mode", "debug")
	v.SetDefault("log.level", "info")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "tracker.db")
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("session.name", "tracker_session")
	v.SetDefault("session.secret", "default-secret-key-change-me")
	v.SetDefault("session.store", "cookie")
	v.SetDefault("session.maxAge", 0)
	v.SetDefault("session.secure", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("seed.catalogPath", "")
}
