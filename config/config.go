package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Логи
	LogLevel  string
	LogFormat string

	// Меню
	MenuPath      string // пусто: встроенное меню
	CommandTiming bool

	// Файлы
	ExportPath string

	// Учёт
	DefaultAccount string // создаётся при старте, если задан
}

// Load читает необязательный .env, затем окружение.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() *Config {
	return &Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		MenuPath:      getEnv("MENU_PATH", ""),
		CommandTiming: getEnvBool("COMMAND_TIMING", true),
		ExportPath:    getEnv("EXPORT_PATH", "data.csv"),

		DefaultAccount: getEnv("DEFAULT_ACCOUNT", ""),
	}
}

// Validate собирает все найденные проблемы в одну ошибку.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	if c.MenuPath != "" {
		if _, err := os.Stat(c.MenuPath); err != nil {
			errs = append(errs, fmt.Sprintf("menu file '%s' is not readable: %v", c.MenuPath, err))
		}
	}

	if strings.TrimSpace(c.ExportPath) == "" {
		errs = append(errs, "export path cannot be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
