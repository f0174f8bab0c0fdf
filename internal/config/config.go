package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	DatabasePath string `json:"database_path"`
	FrontendURL  string `json:"frontend_url"`
	Adjudicator  *struct {
		Model          string `json:"model"`
		TimeoutSeconds int    `json:"timeout_seconds"`
	} `json:"adjudicator"`
}

// LoadedConfig is the resolved server configuration.
type LoadedConfig struct {
	ServerAddress      string
	DatabasePath       string
	FrontendURL        string
	AdjudicatorModel   string
	AdjudicatorTimeout time.Duration
}

const (
	defaultAddress            = ":8080"
	defaultDatabasePath       = "./data/arena.db"
	defaultFrontendURL        = "http://localhost:5173"
	defaultAdjudicatorTimeout = 20 * time.Second
)

// LoadConfig reads the JSON configuration at path. A missing file is not an
// error: the server runs on defaults so local development needs no config.
func LoadConfig(path string) (*LoadedConfig, error) {
	out := &LoadedConfig{
		ServerAddress:      defaultAddress,
		DatabasePath:       defaultDatabasePath,
		FrontendURL:        defaultFrontendURL,
		AdjudicatorTimeout: defaultAdjudicatorTimeout,
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	if rc.DatabasePath != "" {
		out.DatabasePath = rc.DatabasePath
	}
	if rc.FrontendURL != "" {
		out.FrontendURL = rc.FrontendURL
	}
	if rc.Adjudicator != nil {
		out.AdjudicatorModel = rc.Adjudicator.Model
		if rc.Adjudicator.TimeoutSeconds < 0 {
			return nil, fmt.Errorf("config file %s: adjudicator timeout_seconds must not be negative", path)
		}
		if rc.Adjudicator.TimeoutSeconds > 0 {
			out.AdjudicatorTimeout = time.Duration(rc.Adjudicator.TimeoutSeconds) * time.Second
		}
	}
	return out, nil
}
