package configs

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once in main and handed to the application container.
type Config struct {
	Port string

	DBDriver   string
	DBDSN      string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string
	DBLogLevel string

	SessionSecret      string
	SessionTTL         time.Duration
	SessionStore       string
	SessionCleanupCron string
	CookieSecure       bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AdminUsername    string
	AdminPassword    string
	AllowAdminSignup bool

	CorsOrigins      string
	RateLimitEnabled bool
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"

	SessionStoreDB    = "db"
	SessionStoreRedis = "redis"

	DefaultSQLiteDSN  = "file:sponsorship.db?cache=shared&mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	DefaultSessionTTL = 24 * time.Hour
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() *Config {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[INFO] .env file not found, using system environment")
		} else {
			log.Println("[INFO] .env file loaded")
		}
	} else {
		log.Println("[INFO] Running on Railway, using system environment")
	}

	cfg := &Config{
		Port: GetEnv("PORT", "3000"),

		DBDriver:   strings.ToLower(GetEnv("DB_DRIVER", DriverSQLite)),
		DBDSN:      GetEnv("DB_DSN"),
		DBUser:     GetEnv("DB_USER"),
		DBPassword: GetEnv("DB_PASSWORD"),
		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT"),
		DBName:     GetEnv("DB_NAME", "sponsorship"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "disable"),
		DBLogLevel: GetEnv("DB_LOG_LEVEL", "warn"),

		SessionSecret:      GetEnv("SESSION_SECRET"),
		SessionTTL:         time.Duration(GetEnvInt("SESSION_TTL_HOURS", int(DefaultSessionTTL/time.Hour))) * time.Hour,
		SessionStore:       strings.ToLower(GetEnv("SESSION_STORE", SessionStoreDB)),
		SessionCleanupCron: GetEnv("SESSION_CLEANUP_CRON", "@every 1h"),
		CookieSecure:       GetEnvBool("COOKIE_SECURE", false),

		RedisAddr:     GetEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD"),
		RedisDB:       GetEnvInt("REDIS_DB", 0),

		AdminUsername:    GetEnv("ADMIN_USERNAME"),
		AdminPassword:    GetEnv("ADMIN_PASSWORD"),
		AllowAdminSignup: GetEnvBool("ALLOW_ADMIN_SIGNUP", false),

		CorsOrigins:      GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		RateLimitEnabled: GetEnvBool("RATE_LIMIT_ENABLED", true),
	}

	if cfg.DBDSN == "" && cfg.DBDriver == DriverSQLite {
		cfg.DBDSN = DefaultSQLiteDSN
	}

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = randomSecret()
		log.Println("[WARN] SESSION_SECRET not set, sessions will not survive a restart")
	} else {
		log.Println("[INFO] SESSION_SECRET loaded")
	}

	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[WARN] %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return i
}

func GetEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("[ERROR] cannot generate session secret: %v", err)
	}
	return hex.EncodeToString(b)
}
