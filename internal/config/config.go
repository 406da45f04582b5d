package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	minSecretKeyLength = 32
	defaultConfigName  = "sonhos"
)

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type Config struct {
	SecretKey          string  `mapstructure:"secret_key"`
	DBPath             string  `mapstructure:"db_path"`
	Port               string  `mapstructure:"port"`
	Timezone           string  `mapstructure:"tz"`
	DefaultLanguage    string  `mapstructure:"default_language"`
	CookieSecure       bool    `mapstructure:"cookie_secure"`
	RankingWindowDays  int     `mapstructure:"ranking_window_days"`
	UserHeightDefaultM float64 `mapstructure:"user_height_default_m"`

	Location *time.Location `mapstructure:"-"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("secret_key", "")
	v.SetDefault("db_path", filepath.Join("data", "sonhos.db"))
	v.SetDefault("port", "8080")
	v.SetDefault("tz", "UTC")
	v.SetDefault("default_language", "pt")
	v.SetDefault("cookie_secure", false)
	v.SetDefault("ranking_window_days", 7)
	v.SetDefault("user_height_default_m", 1.70)
}

// Load reads defaults, then the optional config file, then the environment.
// An explicit configFile must exist; the implicit ./sonhos.yaml may be absent.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	secret, err := ValidateSecretKey(cfg.SecretKey)
	if err != nil {
		return err
	}
	cfg.SecretKey = secret

	port, err := ValidatePort(cfg.Port)
	if err != nil {
		return err
	}
	cfg.Port = port

	location, err := time.LoadLocation(strings.TrimSpace(cfg.Timezone))
	if err != nil {
		return fmt.Errorf("invalid TZ %q: %w", cfg.Timezone, err)
	}
	cfg.Location = location

	cfg.DBPath = strings.TrimSpace(cfg.DBPath)
	if cfg.DBPath == "" {
		return errors.New("DB_PATH must not be empty")
	}
	cfg.DefaultLanguage = strings.ToLower(strings.TrimSpace(cfg.DefaultLanguage))
	if cfg.RankingWindowDays < 1 || cfg.RankingWindowDays > 366 {
		return fmt.Errorf("RANKING_WINDOW_DAYS must be between 1 and 366, got %d", cfg.RankingWindowDays)
	}
	if cfg.UserHeightDefaultM < 0.5 || cfg.UserHeightDefaultM > 2.5 {
		return fmt.Errorf("USER_HEIGHT_DEFAULT_M must be between 0.5 and 2.5, got %v", cfg.UserHeightDefaultM)
	}
	return nil
}

func ValidateSecretKey(raw string) (string, error) {
	secret := strings.TrimSpace(raw)
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secret)]; insecure {
		return "", errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func ValidatePort(raw string) (string, error) {
	port := strings.TrimSpace(raw)
	value, err := strconv.Atoi(port)
	if err != nil || value < 1 || value > 65535 {
		return "", fmt.Errorf("invalid PORT %q", raw)
	}
	return strconv.Itoa(value), nil
}
