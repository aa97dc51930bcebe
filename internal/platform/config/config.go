package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv     string `env:"APP_ENV" envDefault:"local"`
	BotToken   string `env:"BOT_TOKEN,required"`
	RedisURL   string `env:"REDIS_URL" envDefault:""`
	QuizSource string `env:"QUIZ_SOURCE" envDefault:"gotquestions"`

	AnswerTTL     time.Duration `env:"ANSWER_TTL" envDefault:"24h"`
	SourceRPS     float64       `env:"SOURCE_RPS" envDefault:"2"`
	SourceTimeout time.Duration `env:"SOURCE_TIMEOUT" envDefault:"30s"`

	HealthPort int `env:"HEALTH_PORT" envDefault:"8080"`

	// Webhook mode
	WebhookAddr      string `env:"WEBHOOK_ADDR" envDefault:":8443"`
	WebhookPath      string `env:"WEBHOOK_PATH" envDefault:"/webhook"`
	WebhookPublicURL string `env:"WEBHOOK_PUBLIC_URL" envDefault:""`
	WebhookSecret    string `env:"WEBHOOK_SECRET" envDefault:""`
}

func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env file is optional, error is expected when not present

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}

	applyLegacyAliases(cfg)

	return cfg, nil
}

// applyLegacyAliases maps the seconds-based TTL variable older deployments
// export onto the duration-typed field.
func applyLegacyAliases(cfg *Config) {
	if !hasEnv("ANSWER_TTL") {
		setSecondsFromEnv("ANSWER_TTL_SECONDS", &cfg.AnswerTTL)
	}
}

func hasEnv(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

func setSecondsFromEnv(key string, target *time.Duration) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || parsed <= 0 {
		return
	}

	*target = time.Duration(parsed) * time.Second
}
