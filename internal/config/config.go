package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config собирает все параметры окружения для API, бота и CLI.
type Config struct {
	Logger *log.Logger

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPass      string
	DBName      string
	DBSSLMode   string

	APIPort        string
	GinMode        string
	AllowedOrigins []string

	AutoMigrate   bool
	MigrationsDir string

	DistinguishedClientID int
	Locale                string
	ActivityLimit         int
	QueryTimeout          time.Duration

	BotToken        string
	BotAllowedChats []int64
}

// Load читает конфигурацию из переменных окружения, подставляя значения по умолчанию.
func Load() *Config {
	logger := log.New(os.Stderr, "[tourism] ", log.LstdFlags)

	cfg := &Config{
		Logger:                logger,
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		DBHost:                getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:                getEnvOrDefault("DB_PORT", "5432"),
		DBUser:                os.Getenv("DB_USER"),
		DBPass:                os.Getenv("DB_PASS"),
		DBName:                os.Getenv("DB_NAME"),
		DBSSLMode:             getEnvOrDefault("DB_SSLMODE", "disable"),
		APIPort:               getEnvOrDefault("API_PORT", "8080"),
		GinMode:               ginMode(logger, os.Getenv("GIN_MODE")),
		AllowedOrigins:        splitList(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000")),
		AutoMigrate:           parseBoolEnv(os.Getenv("AUTO_MIGRATE")),
		MigrationsDir:         getEnvOrDefault("MIGRATIONS_DIR", "migrations"),
		DistinguishedClientID: getIntOrDefault(logger, "DISTINGUISHED_CLIENT_ID", 1),
		Locale:                strings.ToLower(getEnvOrDefault("REPORT_LOCALE", "ru")),
		ActivityLimit:         getIntOrDefault(logger, "ACTIVITY_LIMIT", 5),
		QueryTimeout:          getDurationOrDefault(logger, "QUERY_TIMEOUT", 10*time.Second),
		BotToken:              os.Getenv("BOT_TOKEN"),
		BotAllowedChats:       parseChatIDs(logger, os.Getenv("BOT_ALLOWED_CHATS")),
	}
	return cfg
}

// DSN возвращает строку подключения к PostgreSQL.
func (c *Config) DSN() string {
	if strings.TrimSpace(c.DatabaseURL) != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName, c.DBSSLMode)
}

// ChatAllowed сообщает, может ли чат запрашивать отчеты у бота. Пустой список разрешает всех.
func (c *Config) ChatAllowed(chatID int64) bool {
	if len(c.BotAllowedChats) == 0 {
		return true
	}
	for _, id := range c.BotAllowedChats {
		if id == chatID {
			return true
		}
	}
	return false
}

func getEnvOrDefault(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func getIntOrDefault(logger *log.Logger, key string, def int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		logger.Printf("Некорректное значение %s=%q, используется %d", key, val, def)
		return def
	}
	return n
}

func getDurationOrDefault(logger *log.Logger, key string, def time.Duration) time.Duration {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		logger.Printf("Некорректное значение %s=%q, используется %s", key, val, def)
		return def
	}
	return d
}

// ginMode допускает только режимы, которые понимает gin.SetMode.
func ginMode(logger *log.Logger, val string) string {
	switch mode := strings.ToLower(strings.TrimSpace(val)); mode {
	case "":
		return "debug"
	case "debug", "release", "test":
		return mode
	default:
		logger.Printf("Некорректный GIN_MODE=%q, используется debug", val)
		return "debug"
	}
}

func parseBoolEnv(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseChatIDs(logger *log.Logger, s string) []int64 {
	var ids []int64
	for _, part := range splitList(s) {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			logger.Printf("Пропущен некорректный ID чата %q", part)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
