package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Client side
	APIBaseURL               string `yaml:"api_base_url"`
	WorkItemsUnderAPI        bool   `yaml:"workitems_under_api"`
	LegacyWorkItemWhitespace bool   `yaml:"workitem_legacy_whitespace"`

	// Reference server
	ServerAddr     string   `yaml:"server_addr"`
	DBDriver       string   `yaml:"db_driver"`
	DBHost         string   `yaml:"db_host"`
	DBPort         string   `yaml:"db_port"`
	DBUser         string   `yaml:"db_user"`
	DBPassword     string   `yaml:"db_password"`
	DBName         string   `yaml:"db_name"`
	DBPath         string   `yaml:"db_path"`
	GinMode        string   `yaml:"gin_mode"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Load reads the configuration from the environment. When CONFIG_FILE is
// set, the YAML file it names is applied on top.
func Load() (*Config, error) {
	cfg := &Config{
		APIBaseURL:               getEnv("API_BASE_URL", "https://localhost:7006"),
		WorkItemsUnderAPI:        getEnvBool("WORKITEMS_UNDER_API", false),
		LegacyWorkItemWhitespace: getEnvBool("WORKITEM_LEGACY_WHITESPACE", false),
		ServerAddr:               getEnv("SERVER_ADDR", ":7006"),
		DBDriver:                 getEnv("DB_DRIVER", "sqlite"),
		DBHost:                   getEnv("DB_HOST", "localhost"),
		DBPort:                   getEnv("DB_PORT", "3306"),
		DBUser:                   getEnv("DB_USER", "dashboard"),
		DBPassword:               getEnv("DB_PASSWORD", "dashboard"),
		DBName:                   getEnv("DB_NAME", "project_dashboard"),
		DBPath:                   getEnv("DB_PATH", "dashboard.db"),
		GinMode:                  getEnv("GIN_MODE", "debug"),
		AllowedOrigins:           splitList(getEnv("ALLOWED_ORIGINS", "*")),
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadFile overlays the values present in a YAML file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// IsRelease reports whether gin runs in release mode.
func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
