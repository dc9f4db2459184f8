package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config конфигурация сервера. Источник — переменные окружения, .env
// подхватывается, если лежит рядом.
type Config struct {
	// Сервер
	Port string

	// База данных
	DatabasePath string

	// Каталог сырых прайсов и путь файла выгрузки
	PriceDir   string
	ExportPath string

	// Нормализация
	FuzzyThreshold int

	// Сколько запусков конвейера в час разрешено через API
	RefreshPerHour int

	// Логирование
	LogLevel string
}

// Load читает конфигурацию из окружения.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env не найден, используются переменные окружения")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		DatabasePath:   getEnv("DATABASE_PATH", "catalog.db"),
		PriceDir:       getEnv("PRICE_DIR", "data/prices"),
		ExportPath:     getEnv("EXPORT_PATH", "data/catalog.xlsx"),
		FuzzyThreshold: getEnvInt("FUZZY_THRESHOLD", 50),
		RefreshPerHour: getEnvInt("REFRESH_PER_HOUR", 6),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

// SlogLevel переводит текстовый уровень в slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("неразборчивое число в окружении, используется значение по умолчанию",
			"ключ", key, "значение", v, "по умолчанию", fallback)
		return fallback
	}
	return n
}
