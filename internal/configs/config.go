package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// RESTconfig хранит настройки фасадного HTTP-сервера
type RESTconfig struct {
	PORT        string
	CORSOrigins []string
}

// MarketAPIConfig хранит настройки клиента к API маркетплейса
type MarketAPIConfig struct {
	BaseURL string
	// Timeout - общий бюджет на connect/read/write одного запроса.
	// По истечении запрос завершается как сетевая ошибка.
	Timeout time.Duration
}

type StdoutLogConfig struct {
	Level string // По умолчанию DEBUG
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string // По умолчанию INFO
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	Rest         RESTconfig
	MarketAPI    MarketAPIConfig
	FluentBit    FluentBitConfig
	AppName      string
	StdoutLogger StdoutLogConfig
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		// Отсутствие .env - не фатально, конфигурация может прийти из окружения
		log.Printf("Info: Could not load .env file (path: %v): %v.\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "darna-client-service")

	cfg.Rest.PORT = getEnvAsString("PORT", "8080")
	cfg.Rest.CORSOrigins = splitAndTrim(getEnvAsString("CORS_ORIGINS", "*"))

	cfg.MarketAPI.BaseURL = os.Getenv("MARKET_API_URL")
	if cfg.MarketAPI.BaseURL == "" {
		return nil, fmt.Errorf("MARKET_API_URL environment variable is required")
	}
	cfg.MarketAPI.Timeout = time.Duration(getEnvAsInt("MARKET_API_TIMEOUT_SECONDS", 15)) * time.Second

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt читает переменную окружения как int или возвращает значение по умолчанию
// Логирует ошибку, если переменная есть, но не может быть преобразована в int
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
