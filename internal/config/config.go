package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported LLM providers.
const (
	ProviderGroq      = "groq"
	ProviderLangchain = "langchain"
)

// Supported workspace store drivers.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	Store  StoreConfig
	Redis  RedisConfig
	Auth   AuthConfig
	Export ExportConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
}

// LLMConfig selects the chat-completion backend used by both agents.
type LLMConfig struct {
	Provider    string // groq | langchain
	Backend     string // langchain only: openai | ollama
	Model       string
	BaseURL     string // empty selects the provider default
	APIKey      string
	Temperature float64
	Timeout     time.Duration
}

type StoreConfig struct {
	Driver       string
	WorkspaceTTL time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type AuthConfig struct {
	SecretKey string
	TokenTTL  time.Duration
}

type ExportConfig struct {
	OriginalTextLimit int
}

type LoggerConfig struct {
	Level string
	Env   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "60s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.body_limit", 1024*1024)

	v.SetDefault("llm.provider", ProviderGroq)
	v.SetDefault("llm.backend", "openai")
	v.SetDefault("llm.model", "llama-3.3-70b-versatile")
	v.SetDefault("llm.temperature", 0.3)
	v.SetDefault("llm.timeout", "45s")

	v.SetDefault("store.driver", StoreMemory)
	v.SetDefault("store.workspace_ttl", "12h")

	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.token_ttl", "12h")

	v.SetDefault("export.original_text_limit", 1000)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
}

// LoadConfig reads .env, then config.yaml (optional), then the process environment.
func LoadConfig() (*Config, error) {
	// .env is optional; a missing file is not an error
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := fromViper(v)
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		LLM: LLMConfig{
			Provider:    strings.ToLower(v.GetString("llm.provider")),
			Backend:     strings.ToLower(v.GetString("llm.backend")),
			Model:       v.GetString("llm.model"),
			BaseURL:     v.GetString("llm.base_url"),
			APIKey:      v.GetString("llm.api_key"),
			Temperature: v.GetFloat64("llm.temperature"),
			Timeout:     v.GetDuration("llm.timeout"),
		},
		Store: StoreConfig{
			Driver:       strings.ToLower(v.GetString("store.driver")),
			WorkspaceTTL: v.GetDuration("store.workspace_ttl"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Auth: AuthConfig{
			SecretKey: v.GetString("auth.secret_key"),
			TokenTTL:  v.GetDuration("auth.token_ttl"),
		},
		Export: ExportConfig{
			OriginalTextLimit: v.GetInt("export.original_text_limit"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
	}
}

// applyEnvOverrides handles the variable names users already have in their .env files.
func applyEnvOverrides(cfg *Config) {
	if key := os.Getenv("GROQ_API_KEY"); key != "" && cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && cfg.LLM.APIKey == "" && cfg.LLM.Provider == ProviderLangchain {
		cfg.LLM.APIKey = key
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		cfg.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		cfg.Redis.Password = redisPassword
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.SecretKey = secret
	}
	if env := os.Getenv("ENV"); env == "production" {
		cfg.Logger.Env = env
	}
}

// Validate checks the settings that have no usable default.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGroq:
		if c.LLM.APIKey == "" {
			return errors.New("llm api key is required for the groq provider (set GROQ_API_KEY)")
		}
	case ProviderLangchain:
		switch c.LLM.Backend {
		case "openai":
			if c.LLM.APIKey == "" {
				return errors.New("llm api key is required for the openai backend (set LLM_API_KEY)")
			}
		case "ollama":
		default:
			return fmt.Errorf("unsupported langchain backend: %s", c.LLM.Backend)
		}
	default:
		return fmt.Errorf("unsupported llm provider: %s", c.LLM.Provider)
	}

	switch c.Store.Driver {
	case StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("unsupported store driver: %s", c.Store.Driver)
	}

	if len(c.Auth.SecretKey) < 32 {
		return errors.New("auth secret key must be at least 32 bytes long (set JWT_SECRET)")
	}
	if c.Export.OriginalTextLimit <= 0 {
		return fmt.Errorf("export.original_text_limit must be positive, got %d", c.Export.OriginalTextLimit)
	}
	return nil
}
