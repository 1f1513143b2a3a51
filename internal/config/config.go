// Package config загружает серверную конфигурацию: необязательный
// YAML-файл, поверх которого ложатся переменные окружения.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ServerConfig - настройки процесса сервера.
type ServerConfig struct {
	Port string `yaml:"port"`
	// Seed - мастер-сид; 0 означает "выбрать случайно при старте".
	Seed int64 `yaml:"seed"`
	// Debug включает проверку инвариантов каждый тик.
	Debug bool `yaml:"debug"`
}

func defaults() *ServerConfig {
	return &ServerConfig{
		Port: "8080",
	}
}

// Load читает конфиг из path (пустой путь или отсутствующий файл -
// не ошибка: остаются значения по умолчанию), затем применяет
// окружение: WV_PORT, WV_SEED, WV_DEBUG.
func Load(path string) (*ServerConfig, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Файл необязателен
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if port := os.Getenv("WV_PORT"); port != "" {
		cfg.Port = port
	}
	if seed := os.Getenv("WV_SEED"); seed != "" {
		v, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid WV_SEED %q: %w", seed, err)
		}
		cfg.Seed = v
	}
	if debug := os.Getenv("WV_DEBUG"); debug != "" {
		v, err := strconv.ParseBool(debug)
		if err != nil {
			return nil, fmt.Errorf("invalid WV_DEBUG %q: %w", debug, err)
		}
		cfg.Debug = v
	}

	return cfg, nil
}
