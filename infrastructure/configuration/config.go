package configuration

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jekoram/reelshorter/infrastructure/logger"

	"github.com/spf13/viper"
)

// Config is the full application configuration. It is loaded once in main
// and injected into the components that need it; nothing reads it lazily.
type Config struct {
	App      App         `json:"app"`
	Database Database    `json:"database"`
	Redis    RedisClient `json:"redis"`
	Google   Google      `json:"google"`
	Security Security    `json:"security"`
	Frontend Frontend    `json:"frontend"`
}

type App struct {
	Port      int    `json:"port"`
	SecretKey string `json:"secretKey"` // JWT signing key
}

type Database struct {
	Psql Db `json:"psql"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Google holds the OAuth client used for the YouTube connection flow.
type Google struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	RedirectURL  string `json:"redirectURL"`
}

type Security struct {
	// EncryptionKey is the process-wide secret for the credential codec.
	// It never appears in persisted data or log output.
	EncryptionKey string `json:"encryptionKey"`
}

type Frontend struct {
	BaseURL string `json:"baseURL"` // OAuth callback redirect target
}

// Load reads config(.{ENV})?.json via viper and applies environment variable
// fallbacks. Missing files are tolerated; env-only deployments are valid.
func Load() (*Config, error) {
	viper.SetConfigName(configName())
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found, relying on environment variables")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
			return nil, err
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
		return nil, err
	}

	applyEnv(cfg)

	if cfg.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; JWT authentication will fail. Provide SECRET_KEY via environment.")
	}
	if cfg.Security.EncryptionKey == "" {
		return nil, fmt.Errorf("encryption key not configured: set ENCRYPTION_KEY or security.encryptionKey")
	}
	return cfg, nil
}

func configName() string {
	name := "config"
	if env := os.Getenv("ENV"); env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func applyEnv(cfg *Config) {
	setIfEmpty(&cfg.Database.Psql.Name, "DB_NAME")
	setIfEmpty(&cfg.Database.Psql.Host, "DB_HOST")
	setIfEmpty(&cfg.Database.Psql.Port, "DB_PORT")
	setIfEmpty(&cfg.Database.Psql.User, "DB_USER")
	setIfEmpty(&cfg.Database.Psql.Password, "DB_PASSWORD")
	if cfg.Database.Psql.Port == "" {
		cfg.Database.Psql.Port = "5432"
	}

	setIfEmpty(&cfg.Redis.Host, "REDIS_HOST")
	setIfEmpty(&cfg.Redis.Port, "REDIS_PORT")
	setIfEmpty(&cfg.Redis.Username, "REDIS_USERNAME")
	setIfEmpty(&cfg.Redis.Password, "REDIS_PASSWORD")

	// Environment overrides config for secrets.
	if v := os.Getenv("SECRET_KEY"); v != "" {
		cfg.App.SecretKey = v
	}
	if v := os.Getenv("ENCRYPTION_KEY"); v != "" {
		cfg.Security.EncryptionKey = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_ID"); v != "" {
		cfg.Google.ClientID = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_SECRET"); v != "" {
		cfg.Google.ClientSecret = v
	}
	setIfEmpty(&cfg.Google.RedirectURL, "GOOGLE_REDIRECT_URL")
	setIfEmpty(&cfg.Frontend.BaseURL, "FRONTEND_URL")

	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default.
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.App.Port = p
		}
	}
	if cfg.App.Port == 0 {
		cfg.App.Port = 10001
	}
	if cfg.Google.RedirectURL == "" {
		cfg.Google.RedirectURL = fmt.Sprintf("http://localhost:%d/auth/youtube/callback", cfg.App.Port)
	}
	if cfg.Frontend.BaseURL == "" {
		cfg.Frontend.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.App.Port)
	}
}

func setIfEmpty(dst *string, envKey string) {
	if *dst == "" {
		*dst = os.Getenv(envKey)
	}
}
