package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type APICfg struct {
	BaseURL    string
	Version    string
	TimeoutSec int
}

type SessionCfg struct {
	File string // path of the persisted session file; empty means in-memory only
}

type StubCfg struct {
	Port string
}

type Cfg struct {
	API     APICfg
	Session SessionCfg
	Stub    StubCfg
}

// Timeout returns the per-request timeout as a duration.
func (c APICfg) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

func Load() Cfg {
	// 1) Load .env into process env (if file exists)
	_ = godotenv.Load()

	// 2) Read from env via viper
	viper.AutomaticEnv()
	viper.SetDefault("API_VERSION", "v1")
	viper.SetDefault("API_TIMEOUT_SEC", 30)
	viper.SetDefault("SESSION_FILE", "")
	viper.SetDefault("STUB_PORT", "8090")
	viper.SetDefault("LOG_LEVEL", "info")

	if lvl, err := zerolog.ParseLevel(strings.ToLower(viper.GetString("LOG_LEVEL"))); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	cfg := Cfg{
		API: APICfg{
			BaseURL:    strings.TrimRight(viper.GetString("API_BASE_URL"), "/"),
			Version:    viper.GetString("API_VERSION"),
			TimeoutSec: viper.GetInt("API_TIMEOUT_SEC"),
		},
		Session: SessionCfg{File: viper.GetString("SESSION_FILE")},
		Stub:    StubCfg{Port: viper.GetString("STUB_PORT")},
	}

	// 3) Fail fast on required settings
	if cfg.API.BaseURL == "" {
		log.Fatal().Msg("API_BASE_URL is required")
	}
	if cfg.API.TimeoutSec <= 0 {
		log.Fatal().Msg("API_TIMEOUT_SEC must be positive")
	}

	return cfg
}

// LoadStub reads only what the stub backend needs; it has no required keys.
func LoadStub() StubCfg {
	_ = godotenv.Load()
	viper.AutomaticEnv()
	viper.SetDefault("STUB_PORT", "8090")
	viper.SetDefault("LOG_LEVEL", "info")

	if lvl, err := zerolog.ParseLevel(strings.ToLower(viper.GetString("LOG_LEVEL"))); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	return StubCfg{Port: viper.GetString("STUB_PORT")}
}
