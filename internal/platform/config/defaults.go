package config

const (
	defaultServerPort = 8080

	defaultBcryptCost = 10
	defaultLoginRate  = 1.0
	defaultLoginBurst = 5
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "8s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "household-tasks",

		"auth.bcrypt_cost":   defaultBcryptCost,
		"auth.session_ttl":   "168h",
		"auth.session_sweep": "10m",
		"auth.cookie_secure": false,
		"auth.login_rate":    defaultLoginRate,
		"auth.login_burst":   defaultLoginBurst,

		"store.seed": false,
	}
}
