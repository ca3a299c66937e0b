package main

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config is the process configuration, populated from the environment.
type Config struct {
	Port string `env:"PORT" envDefault:"8081"`

	// Call service
	RetellAPIKey  string `env:"RETELL_API_KEY,required"`
	RetellBaseURL string `env:"RETELL_BASE_URL" envDefault:"https://api.retellai.com"`

	// Question generation (OpenAI-compatible)
	GroqAPIKey  string `env:"GROQ_API_KEY"`
	GroqBaseURL string `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	GroqModel   string `env:"GROQ_MODEL" envDefault:"llama-3.1-8b-instant"`

	// Job search proxy
	JobsBaseURL string `env:"JOBS_API_BASE_URL" envDefault:"https://scrappingserver.vercel.app"`

	// Expression classifier; sampling is disabled when unset
	ExpressionBaseURL string `env:"EXPRESSION_API_BASE_URL"`

	// Auth
	SessionSecret string `env:"SESSION_SECRET,required"`

	// Session engine
	SampleInterval  time.Duration `env:"EMOTION_SAMPLE_INTERVAL" envDefault:"300ms"`
	CallIdleTimeout time.Duration `env:"CALL_IDLE_TIMEOUT" envDefault:"30m"`
	SweepInterval   time.Duration `env:"CALL_SWEEP_INTERVAL" envDefault:"5m"`
}

func NewConfig() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
