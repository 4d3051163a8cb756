package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendAPI   = "api"
	BackendLocal = "local"
)

// Config is the API server configuration.
type Config struct {
	ListenPort      string        // ex: ":5000"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request deadline

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	StoreBackend string // "memory" | "sqlite" | "redis"
	SQLiteDSN    string // file path, ":memory:" or libsql:// URL
	SeedFile     string // optional YAML seed applied to empty collections

	// Auth
	JWTSecret     string
	TokenTTL      time.Duration
	ResetTTL      time.Duration
	AuthBurst     int           // per-IP burst on /auth endpoints
	AuthPerMinute int           // per-IP refill on /auth endpoints
	GCInterval    time.Duration // how often expired reset tickets are purged

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	CORSOrigins  []string // allowed Origin values, "*" allows any
	AllowedCIDRS []string // optional, restrict /readyz and /infra (e.g. "10.0.0.0/8, 127.0.0.1")
	TrustProxy   bool     // true => trust X-Forwarded-For headers
}

// ClientConfig drives backofficectl.
type ClientConfig struct {
	Backend    string        // "api" | "local"
	APIBaseURL string        // ex: "http://localhost:5000/api"
	APITimeout time.Duration // per-request timeout
	SessionDSN string        // sqlite DSN holding the session token
	LocalDSN   string        // sqlite DSN of the local backend
	CacheSize  int

	LogLevel  string
	PrettyLog bool
}

// Load reads the server configuration. A .env file in the working
// directory is applied first; real environment variables win.
func Load() *Config {
	loadDotEnv()

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("BACKOFFICE_LISTEN_PORT", ":5000"),
		ShutdownTimeout: mustDuration("BACKOFFICE_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("BACKOFFICE_REQUEST_TIMEOUT", 10*time.Second),

		// Logging
		LogLevel:  getenv("BACKOFFICE_LOG_LEVEL", "info"),
		PrettyLog: mustBool("BACKOFFICE_PRETTY_LOG", true),

		// Storage
		StoreBackend: strings.ToLower(getenv("BACKOFFICE_STORE", "sqlite")),
		SQLiteDSN:    getenv("BACKOFFICE_SQLITE_DSN", "backoffice.db"),
		SeedFile:     getenv("BACKOFFICE_SEED_FILE", ""),

		// Auth
		JWTSecret:     requireEnv("BACKOFFICE_JWT_SECRET"),
		TokenTTL:      mustDuration("BACKOFFICE_TOKEN_TTL", 24*time.Hour),
		ResetTTL:      mustDuration("BACKOFFICE_RESET_TTL", time.Hour),
		AuthBurst:     getenvInt("BACKOFFICE_AUTH_BURST", 10),
		AuthPerMinute: getenvInt("BACKOFFICE_AUTH_PER_MINUTE", 30),
		GCInterval:    mustDuration("BACKOFFICE_GC_INTERVAL", time.Hour),

		// Redis settings
		RedisAddr:             getenv("BACKOFFICE_REDIS_ADDR", "localhost:6379"),
		RedisUser:             getenv("BACKOFFICE_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("BACKOFFICE_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("BACKOFFICE_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("BACKOFFICE_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		CORSOrigins:  splitAndTrim(getenv("BACKOFFICE_CORS_ORIGINS", "*")),
		AllowedCIDRS: parseAllowedIPs(getenv("BACKOFFICE_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("BACKOFFICE_TRUST_PROXY", false),
	}

	if cfg.StoreBackend == "redis" && cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: BACKOFFICE_REDIS_PASSWORD is required when BACKOFFICE_REDIS_PASSWORD_REQUIRED=true")
	}
	switch cfg.StoreBackend {
	case "memory", "sqlite", "redis":
	default:
		panic(fmt.Sprintf("❌ FATAL: unknown BACKOFFICE_STORE %q (memory, sqlite, redis)", cfg.StoreBackend))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", cfg.Redacted())
	}

	return cfg
}

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	c.JWTSecret = "***REDACTED***"
	c.RedisPassword = "***REDACTED***"
	if c.RedisUser != "" {
		c.RedisUser = "***REDACTED***"
	}
	if strings.Contains(c.SQLiteDSN, "authToken=") {
		c.SQLiteDSN = "***REDACTED***"
	}
	return c
}

// LoadClient reads the CLI configuration.
func LoadClient() *ClientConfig {
	loadDotEnv()

	cfg := &ClientConfig{
		Backend:    strings.ToLower(getenv("BACKOFFICE_BACKEND", BackendAPI)),
		APIBaseURL: strings.TrimRight(getenv("BACKOFFICE_API_URL", "http://localhost:5000/api"), "/"),
		APITimeout: mustDuration("BACKOFFICE_API_TIMEOUT", 10*time.Second),
		SessionDSN: getenv("BACKOFFICE_SESSION_DSN", defaultDataPath("session.db")),
		LocalDSN:   getenv("BACKOFFICE_LOCAL_DSN", defaultDataPath("local.db")),
		CacheSize:  getenvInt("BACKOFFICE_CACHE_SIZE", 64),
		LogLevel:   getenv("BACKOFFICE_LOG_LEVEL", "warn"),
		PrettyLog:  mustBool("BACKOFFICE_PRETTY_LOG", true),
	}
	if cfg.Backend != BackendAPI && cfg.Backend != BackendLocal {
		panic(fmt.Sprintf("❌ FATAL: unknown BACKOFFICE_BACKEND %q (api, local)", cfg.Backend))
	}
	return cfg
}

// helpers
func loadDotEnv() {
	// A missing .env is the normal case outside development.
	_ = godotenv.Load()
}

func defaultDataPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return name
	}
	dir = dir + string(os.PathSeparator) + "backoffice"
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return name
	}
	return dir + string(os.PathSeparator) + name
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
