package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/household-tasks/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
	if cfg.Store.Seed {
		t.Error("Store.Seed = true, want false for prod")
	}
	if cfg.Profile != "prod" {
		t.Errorf("Profile = %q, want prod", cfg.Profile)
	}
}

func TestLoad_ProdRejectsDemoSeed(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_STORE_SEED", "true")

	_, err := config.Load("prod")
	if err == nil {
		t.Fatal("Load(\"prod\") with store.seed=true returned nil error")
	}
	if !strings.Contains(err.Error(), "store.seed") {
		t.Errorf("error = %v, want mention of store.seed", err)
	}
}

func TestLoad_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", `dev\x`, "a/b"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error", profile)
		}
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Auth.LoginBurst != 5 {
		t.Errorf("Auth.LoginBurst = %d, want 5 (from base)", cfg.Auth.LoginBurst)
	}
	if cfg.Auth.SessionTTL != 168*time.Hour {
		t.Errorf("Auth.SessionTTL = %v, want 168h (from base)", cfg.Auth.SessionTTL)
	}
	if !cfg.Store.Seed {
		t.Error("Store.Seed = false, want true for local")
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_AUTH_SESSION_TTL", "2h")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Auth.SessionTTL != 2*time.Hour {
		t.Errorf("Auth.SessionTTL = %v, want 2h (env override)", cfg.Auth.SessionTTL)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	// request_timeout is not set in any YAML file.
	if cfg.Server.RequestTimeout != 8*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want 8s (default)", cfg.Server.RequestTimeout)
	}
	if cfg.Telemetry.ServiceName != "household-tasks" {
		t.Errorf("Telemetry.ServiceName = %q, want household-tasks (default)", cfg.Telemetry.ServiceName)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"bcrypt cost too low", func(c *config.Config) { c.Auth.BcryptCost = 2 }},
		{"zero session ttl", func(c *config.Config) { c.Auth.SessionTTL = 0 }},
		{"zero login rate", func(c *config.Config) { c.Auth.LoginRate = 0 }},
		{"zero login burst", func(c *config.Config) { c.Auth.LoginBurst = 0 }},
		{"port zero", func(c *config.Config) { c.Server.Port = 0 }},
		{"unknown log level", func(c *config.Config) { c.Log.Level = "verbose" }},
		{"otlp without endpoint", func(c *config.Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Exporter = "otlp"
		}},
		{"request timeout outlives write timeout", func(c *config.Config) { c.Server.RequestTimeout = 10 * time.Second }},
		{"prod with demo seed", func(c *config.Config) {
			c.Profile = config.ProfileProd
			c.Auth.CookieSecure = true
			c.Store.Seed = true
		}},
		{"prod with insecure cookie", func(c *config.Config) { c.Profile = config.ProfileProd }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
		})
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    120 * time.Second,
			RequestTimeout: 8 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
		Auth: config.AuthConfig{
			BcryptCost:   10,
			SessionTTL:   168 * time.Hour,
			SessionSweep: 10 * time.Minute,
			LoginRate:    1,
			LoginBurst:   5,
		},
	}
}
