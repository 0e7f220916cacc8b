// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port               int    `env:"PORT" envDefault:"8080"`
	TotalRounds        int    `env:"TOTAL_ROUNDS" envDefault:"5"`
	ChoicesPerRound    int    `env:"CHOICES_PER_ROUND" envDefault:"4"`
	RevealDelayMS      int    `env:"REVEAL_MS" envDefault:"2000"`
	ShapeRevealDelayMS int    `env:"SHAPE_REVEAL_MS" envDefault:"1500"`
	RetryDelayMS       int    `env:"RETRY_MS" envDefault:"1000"`
	StarsRevealDelayMS int    `env:"STARS_REVEAL_MS" envDefault:"2000"`
	StarRadius         int    `env:"STAR_RADIUS" envDefault:"20"`
	OpenAIAPIKey       string `env:"OPENAI_API_KEY"`
	OpenAISpeechModel  string `env:"OPENAI_SPEECH_MODEL" envDefault:"gpt-4o-mini-tts"`
	OpenAISpeechVoice  string `env:"OPENAI_SPEECH_VOICE" envDefault:"coral"`
	DatabaseURL        string `env:"DATABASE_URL"`
	DBMaxOpenConns     int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns     int    `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	StaticDir          string `env:"STATIC_DIR" envDefault:"static"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Default returns the tag defaults without looking at the environment.
func Default() Config {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("config: bad defaults: %v", err))
	}
	return cfg
}

// Load reads the environment. Unparsable or out of range values fall back to
// their defaults.
func Load() Config {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		log.Printf("config invalid, using defaults error=%v", err)
		return Default()
	}
	return cfg.sanitize()
}

func (c Config) sanitize() Config {
	def := Default()
	positive := func(value *int, fallback int) {
		if *value <= 0 {
			*value = fallback
		}
	}
	positive(&c.Port, def.Port)
	positive(&c.TotalRounds, def.TotalRounds)
	positive(&c.ChoicesPerRound, def.ChoicesPerRound)
	positive(&c.RevealDelayMS, def.RevealDelayMS)
	positive(&c.ShapeRevealDelayMS, def.ShapeRevealDelayMS)
	positive(&c.RetryDelayMS, def.RetryDelayMS)
	positive(&c.StarsRevealDelayMS, def.StarsRevealDelayMS)
	positive(&c.StarRadius, def.StarRadius)
	positive(&c.DBMaxOpenConns, def.DBMaxOpenConns)
	positive(&c.DBMaxIdleConns, def.DBMaxIdleConns)
	return c
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c Config) RevealDelay() time.Duration      { return ms(c.RevealDelayMS) }
func (c Config) ShapeRevealDelay() time.Duration { return ms(c.ShapeRevealDelayMS) }
func (c Config) RetryDelay() time.Duration       { return ms(c.RetryDelayMS) }
func (c Config) StarsRevealDelay() time.Duration { return ms(c.StarsRevealDelayMS) }

func ms(value int) time.Duration {
	return time.Duration(value) * time.Millisecond
}
