package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DatabaseConfig holds PostgreSQL connection settings for the evaluation audit trail.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for archiving raw uploads.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AlertConfig configures the alert evaluator.
type AlertConfig struct {
	// ExpiryWindows are substrings of expiry_date that mark a batch as expiring soon.
	ExpiryWindows []string
	// RulesFile optionally points at a YAML file overriding ExpiryWindows.
	RulesFile string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost        string
	Port           string
	Timezone       string
	LogLevel       string
	UploadMaxBytes int
	Alerts         AlertConfig
	HistoryEnabled bool
	ArchiveEnabled bool
	Database       DatabaseConfig
	MinIO          MinIOConfig
}

// Rules is the on-disk shape of ALERT_RULES_FILE.
type Rules struct {
	ExpiryWindows []string `yaml:"expiry_windows"`
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:        getEnv("APP_HOST", "localhost:8080"),
		Port:           getEnv("PORT", "8080"),
		Timezone:       getEnv("APP_TIMEZONE", "UTC"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		UploadMaxBytes: getEnvInt("UPLOAD_MAX_BYTES", 10<<20),
		Alerts: AlertConfig{
			ExpiryWindows: getEnvSlice("ALERT_EXPIRY_WINDOWS", []string{"2024-03", "2024-04"}),
			RulesFile:     getEnv("ALERT_RULES_FILE", ""),
		},
		HistoryEnabled: getEnvBool("HISTORY_ENABLED", false),
		ArchiveEnabled: getEnvBool("ARCHIVE_ENABLED", false),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ExpiryWindows returns the windows from RulesFile when set, otherwise the env list.
func (c *AppConfig) ExpiryWindows() ([]string, error) {
	if c.Alerts.RulesFile == "" {
		return c.Alerts.ExpiryWindows, nil
	}
	rules, err := LoadRules(c.Alerts.RulesFile)
	if err != nil {
		return nil, err
	}
	if len(rules.ExpiryWindows) == 0 {
		return c.Alerts.ExpiryWindows, nil
	}
	return rules.ExpiryWindows, nil
}

// LoadRules reads a YAML alert rules file.
func LoadRules(path string) (*Rules, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	var r Rules
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}
	return &r, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvSlice(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	out := make([]string, 0)
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
