package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string  `yaml:"port"`
	Environment  string  `yaml:"environment"`
	ReadTimeout  int     `yaml:"readTimeout"`
	WriteTimeout int     `yaml:"writeTimeout"`
	BodyLimit    int     `yaml:"bodyLimit"`
	RenderScale  float64 `yaml:"renderScale"`
}

// Load загружает конфигурацию из переменных окружения. Файл из
// CONFIG_FILE (yaml) задает базу, окружение перекрывает его.
func Load() *Config {
	cfg := &Config{
		Port:         "3000",
		Environment:  "development",
		ReadTimeout:  10,
		WriteTimeout: 10,
		BodyLimit:    4 * 1024 * 1024,
		RenderScale:  50,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			log.Printf("[CONFIG] Failed to load %s: %v", path, err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Environment = getEnv("ENV", cfg.Environment)
	cfg.ReadTimeout = getEnvAsInt("READ_TIMEOUT", cfg.ReadTimeout)
	cfg.WriteTimeout = getEnvAsInt("WRITE_TIMEOUT", cfg.WriteTimeout)
	cfg.BodyLimit = getEnvAsInt("BODY_LIMIT", cfg.BodyLimit)

	return cfg
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
