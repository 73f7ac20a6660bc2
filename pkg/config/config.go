package config

import (
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"

	TranscriberN8N        = "n8n"
	TranscriberAssemblyAI = "assemblyai"
)

// Config holds application configuration
type Config struct {
	Server      ServerConfig
	N8N         N8NConfig
	Solar       SolarConfig
	Session     SessionConfig
	Redis       RedisConfig
	Transcriber TranscriberConfig
	Log         LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"5000"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// N8NConfig holds the webhook endpoints of the n8n workflows
type N8NConfig struct {
	LookupURL            string        `envconfig:"N8N_ENDPOINT_PROCESSO" default:"https://laboratorio-n8n.nu7ixt.easypanel.host/webhook/numero-processo"`
	TranscriptionURL     string        `envconfig:"N8N_ENDPOINT_TRANSCRICAO" default:"https://laboratorio-n8n.nu7ixt.easypanel.host/webhook/transcrever-link"`
	SubmissionURL        string        `envconfig:"N8N_ENDPOINT_SOLAR" default:"https://laboratorio-n8n.nu7ixt.easypanel.host/webhook-test/trancricao"`
	LookupTimeout        time.Duration `envconfig:"N8N_LOOKUP_TIMEOUT" default:"60s"`
	TranscriptionTimeout time.Duration `envconfig:"N8N_TRANSCRIPTION_TIMEOUT" default:"600s"`
	SubmissionTimeout    time.Duration `envconfig:"N8N_SUBMISSION_TIMEOUT" default:"120s"`
	LookupRetries        uint64        `envconfig:"N8N_LOOKUP_RETRIES" default:"0"`
}

// SolarConfig holds SOLAR settings
type SolarConfig struct {
	VideoBaseURL string `envconfig:"SOLAR_VIDEO_BASE_URL" default:"https://novosolar.defensoria.df.gov.br/procapi"`
}

// SessionConfig holds workflow session settings
type SessionConfig struct {
	Store      string        `envconfig:"SESSION_STORE" default:"memory"`
	TTL        time.Duration `envconfig:"SESSION_TTL" default:"12h"`
	CookieName string        `envconfig:"SESSION_COOKIE" default:"solar_session"`
	Secure     bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// TranscriberConfig selects the transcription backend
type TranscriberConfig struct {
	Backend          string `envconfig:"TRANSCRIBER_BACKEND" default:"n8n"`
	AssemblyAIAPIKey string `envconfig:"ASSEMBLYAI_API_KEY"`
	LanguageCode     string `envconfig:"ASSEMBLYAI_LANGUAGE" default:"pt"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	sections := []interface{}{
		&config.Server,
		&config.N8N,
		&config.Solar,
		&config.Session,
		&config.Redis,
		&config.Transcriber,
		&config.Log,
	}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to read configuration: %w", err)
		}
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	endpoints := map[string]string{
		"N8N_ENDPOINT_PROCESSO":    c.N8N.LookupURL,
		"N8N_ENDPOINT_TRANSCRICAO": c.N8N.TranscriptionURL,
		"N8N_ENDPOINT_SOLAR":       c.N8N.SubmissionURL,
		"SOLAR_VIDEO_BASE_URL":     c.Solar.VideoBaseURL,
	}
	for key, raw := range endpoints {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL", key)
		}
	}

	switch c.Session.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("SESSION_STORE must be %q or %q", SessionStoreMemory, SessionStoreRedis)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	switch c.Transcriber.Backend {
	case TranscriberN8N:
	case TranscriberAssemblyAI:
		if c.Transcriber.AssemblyAIAPIKey == "" {
			return fmt.Errorf("ASSEMBLYAI_API_KEY is required when TRANSCRIBER_BACKEND=%s", TranscriberAssemblyAI)
		}
	default:
		return fmt.Errorf("TRANSCRIBER_BACKEND must be %q or %q", TranscriberN8N, TranscriberAssemblyAI)
	}
	return nil
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
