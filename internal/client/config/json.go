package config

import (
	"encoding/json"
	"os"

	"github.com/dserranox/blschool-intranet/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling; values are
// copied into the runtime Config afterwards.
type JsonConfig struct {
	APIURL        string `json:"api_url"`
	LoginAPIURL   string `json:"login_api_url"`
	SessionDBPath string `json:"session_db_path"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flag. Absent flag means no JSON is loaded. Only keys
// present in the file override the current values. Panics on read or
// unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIURL != "" {
		cfg.APIURL = jc.APIURL
	}
	if jc.LoginAPIURL != "" {
		cfg.LoginAPIURL = jc.LoginAPIURL
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
}
