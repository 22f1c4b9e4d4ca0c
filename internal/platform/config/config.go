// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	// Profile is the name passed to Load. It is not read from any source.
	Profile string `koanf:"-"`

	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Auth      AuthConfig      `koanf:"auth"`
	Store     StoreConfig     `koanf:"store"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// AuthConfig holds credential hashing, session and login throttling settings.
type AuthConfig struct {
	BcryptCost   int           `koanf:"bcrypt_cost"`
	SessionTTL   time.Duration `koanf:"session_ttl"`
	SessionSweep time.Duration `koanf:"session_sweep"`
	CookieSecure bool          `koanf:"cookie_secure"`
	LoginRate    float64       `koanf:"login_rate"`
	LoginBurst   int           `koanf:"login_burst"`
}

// StoreConfig holds entity store settings.
type StoreConfig struct {
	// Seed loads the demo household at startup.
	Seed bool `koanf:"seed"`
}
