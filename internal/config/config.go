package config

import (
	"net"
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL connection settings for the message store.
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

// AppConfig is the centralized configuration struct shared by both processes
// (the web front door and the datagram store). It is populated from
// environment variables and passed explicitly to constructors; sensitive
// values are not hardcoded.
type AppConfig struct {
	HTTPHost string
	HTTPPort string

	// UDPHost/UDPPort name the datagram endpoint the web process forwards
	// submissions to. UDPBindHost is where the store process binds; it
	// defaults to all interfaces so the two processes can run on separate
	// hosts without code changes.
	UDPHost     string
	UDPBindHost string
	UDPPort     string

	// MetricsAddr is the private admin listener (prometheus metrics and
	// health probes). Empty disables it.
	MetricsAddr string

	TemplatesDir string
	StaticDir    string

	Database DatabaseConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		HTTPHost:     getEnv("HTTP_HOST", "0.0.0.0"),
		HTTPPort:     getEnv("HTTP_PORT", "3000"),
		UDPHost:      getEnv("UDP_HOST", "127.0.0.1"),
		UDPBindHost:  getEnv("UDP_BIND_HOST", "0.0.0.0"),
		UDPPort:      getEnv("UDP_PORT", "5000"),
		MetricsAddr:  getEnv("METRICS_ADDR", ""),
		TemplatesDir: getEnv("TEMPLATES_DIR", "templates"),
		StaticDir:    getEnv("STATIC_DIR", "static"),
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
	}
}

// HTTPAddr returns the listen address of the web process.
func (c *AppConfig) HTTPAddr() string {
	return net.JoinHostPort(c.HTTPHost, c.HTTPPort)
}

// UDPAddr returns the datagram endpoint submissions are forwarded to.
func (c *AppConfig) UDPAddr() string {
	return net.JoinHostPort(c.UDPHost, c.UDPPort)
}

// UDPBindAddr returns the address the store process binds its socket on.
func (c *AppConfig) UDPBindAddr() string {
	return net.JoinHostPort(c.UDPBindHost, c.UDPPort)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
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
