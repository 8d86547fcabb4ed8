// Package config loads runtime settings for the intranet terminal client.
//
// Sources are layered: built-in defaults, then an optional JSON file
// (-c/-config), then command-line flags. Later sources win.
package config

// Config holds runtime settings for the intranet CLI.
//
// Fields:
//   - APIURL: base URL of the intranet REST API (entity endpoints).
//   - LoginAPIURL: base URL of the auth endpoints; often the same host.
//   - SessionDBPath: path of the local session database file.
type Config struct {
	APIURL        string
	LoginAPIURL   string
	SessionDBPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://localhost:8080/api"
	c.LoginAPIURL = "http://localhost:8080/api"
	c.SessionDBPath = "intranet-session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
