package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// HTTP
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	// DB
	PGDSN string `envconfig:"PG_DSN" required:"true"`
	// JWT
	AccessTokenSecret  string `envconfig:"ACCESS_TOKEN_SECRET" required:"true"`
	RefreshTokenSecret string `envconfig:"REFRESH_TOKEN_SECRET" required:"true"`
	AccessExpireMin    int    `envconfig:"ACCESS_EXPIRE_MIN" default:"15"`
	RefreshExpireHr    int    `envconfig:"REFRESH_EXPIRE_HR" default:"168"`
	// Rate limit (process-wide token bucket)
	RateLimitRPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst int     `envconfig:"RATE_LIMIT_BURST" default:"40"`
	// Tracing
	OtelEnabled bool `envconfig:"OTEL_ENABLED" default:"false"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
