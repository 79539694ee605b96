package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	BackendDynamo = "dynamodb"
	BackendMongo  = "mongo"
)

// Config holds all application configuration. It is built once at startup and
// handed to every component that needs it.
type Config struct {
	Server   ServerConfig
	AWS      AWSConfig
	Store    StoreConfig
	Email    EmailConfig
	Feedback FeedbackConfig
}

type ServerConfig struct {
	Port           string `env:"PORT" env-default:"5000"`
	Env            string `env:"ENV" env-default:"development"`
	LogLevel       string `env:"LOG_LEVEL" env-default:"info"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS" env-default:"*"`
	MaxBodyBytes   int64  `env:"MAX_BODY_BYTES" env-default:"102400"`
}

type AWSConfig struct {
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	Region          string `env:"AWS_REGION" env-default:"us-east-2"`
	DynamoEndpoint  string `env:"DYNAMODB_ENDPOINT"`
}

type StoreConfig struct {
	Backend          string `env:"STORE_BACKEND" env-default:"dynamodb"`
	MongoURI         string `env:"MONGODB_URI"`
	DBName           string `env:"DB_NAME" env-default:"quiz"`
	QuizResultsTable string `env:"QUIZ_RESULTS_TABLE" env-default:"QuizResults"`
	QuizResultsKey   string `env:"QUIZ_RESULTS_KEY" env-default:"userId"`
	FeedbackTable    string `env:"FEEDBACK_TABLE" env-default:"Feedback"`
}

type EmailConfig struct {
	ResendAPIKey string `env:"RESEND_API_KEY"`
	From         string `env:"FROM_EMAIL" env-default:"Quiz Results <results@example.com>"`
	AssetsDir    string `env:"ASSETS_DIR" env-default:"assets/animal-results"`
}

type FeedbackConfig struct {
	WebhookURL     string        `env:"FEEDBACK_WEBHOOK_URL"`
	WebhookTimeout time.Duration `env:"WEBHOOK_TIMEOUT" env-default:"30s"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// Missing .env is fine, env vars may be set directly
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case BackendDynamo:
	case BackendMongo:
		if c.Store.MongoURI == "" {
			return errors.New("MONGODB_URI is required when STORE_BACKEND=mongo")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New("MAX_BODY_BYTES must be positive")
	}
	return nil
}

// Origins splits ALLOWED_ORIGINS into the CORS allow-list.
func (c *ServerConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// ForwardFeedback reports whether feedback is relayed to the webhook instead
// of being written to the store.
func (c *FeedbackConfig) ForwardFeedback() bool {
	return c.WebhookURL != ""
}

func (c *ServerConfig) Addr() string {
	return ":" + c.Port
}
