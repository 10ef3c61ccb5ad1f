package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabaseNone     = "none"
)

const (
	DefaultPort             = 3318
	DefaultSQLiteURL        = "file:luxbin.db"
	DefaultMQTTClientID     = "luxbin-server"
	DefaultMQTTTopic        = "luxbin"
	DefaultGeminiModel      = "gemini-2.5-flash"
	DefaultTranslateTimeout = 10 * time.Second
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	// Secrets
	IPHashSalt string
	APIKey     string

	// Light emitter (disabled when MQTTBroker is empty)
	MQTTBroker   string
	MQTTClientID string
	MQTTTopic    string
	MQTTUsername string
	MQTTPassword string

	// Pre-translation (disabled when GeminiAPIKey is empty)
	GeminiAPIKey     string
	GeminiModel      string
	TranslateTimeout time.Duration
}

// ParseFlags validates flags and fills unset values from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("luxbin", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or none)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.IPHashSalt, "ip-salt", "", "Client IP hash salt (prefer env)")
	fs.StringVar(&cfg.APIKey, "api-key", "", "API key for transmission log access (prefer env)")

	// Light emitter
	fs.StringVar(&cfg.MQTTBroker, "mqtt-broker", "", "MQTT broker URL, e.g. tcp://localhost:1883")
	fs.StringVar(&cfg.MQTTClientID, "mqtt-client-id", "", "MQTT client ID")
	fs.StringVar(&cfg.MQTTTopic, "mqtt-topic", "", "MQTT topic prefix for light sequences")

	// Pre-translation
	fs.StringVar(&cfg.GeminiModel, "gemini-model", "", "Gemini model used for pre-translation")
	fs.DurationVar(&cfg.TranslateTimeout, "translate-timeout", 0, "Timeout for a pre-translation call")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	fallback(&cfg.DatabaseType, "DATABASE_TYPE", DatabaseSQLite)
	fallback(&cfg.DatabaseURL, "DATABASE_URL", "")
	switch cfg.DatabaseType {
	case DatabaseSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = DefaultSQLiteURL
		}
	case DatabasePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	case DatabaseNone:
	default:
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	fallback(&cfg.IPHashSalt, "IP_HASH_SALT", "")
	fallback(&cfg.APIKey, "API_KEY", "")

	fallback(&cfg.MQTTBroker, "MQTT_BROKER", "")
	fallback(&cfg.MQTTClientID, "MQTT_CLIENT_ID", DefaultMQTTClientID)
	fallback(&cfg.MQTTTopic, "MQTT_TOPIC", DefaultMQTTTopic)
	// Broker credentials are env-only
	cfg.MQTTUsername = os.Getenv("MQTT_USERNAME")
	cfg.MQTTPassword = os.Getenv("MQTT_PASSWORD")

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	fallback(&cfg.GeminiModel, "GEMINI_MODEL", DefaultGeminiModel)
	if cfg.TranslateTimeout == 0 {
		if s := os.Getenv("TRANSLATE_TIMEOUT"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid TRANSLATE_TIMEOUT env variable")
			}
			cfg.TranslateTimeout = d
		} else {
			cfg.TranslateTimeout = DefaultTranslateTimeout
		}
	}

	return cfg, nil
}

// fallback fills an unset flag from the environment, then from def
func fallback(dst *string, env, def string) {
	if *dst != "" {
		return
	}
	if v := os.Getenv(env); v != "" {
		*dst = v
		return
	}
	*dst = def
}
