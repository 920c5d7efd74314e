package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
)

const (
	defaultServerAddress = ":8080"
	defaultUndoDepth     = 5
	defaultTeam1Label    = "Stripes"
	defaultTeam2Label    = "Solids"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	// UndoDepth bounds the number of retained undo snapshots per match.
	UndoDepth *int `json:"undo_depth"`
	// Default side labels shown to scorekeepers (e.g. ball group names).
	Team1Label string `json:"team1_label"`
	Team2Label string `json:"team2_label"`
	// Optional webhook that receives exported match records. When empty,
	// exports are only returned to the caller.
	ExportWebhookURL string `json:"export_webhook_url"`
}

// LoadedConfig contains the resolved server settings.
type LoadedConfig struct {
	ServerAddress    string
	UndoDepth        int
	Team1Label       string
	Team2Label       string
	ExportWebhookURL string
}

func defaults() *LoadedConfig {
	return &LoadedConfig{
		ServerAddress: defaultServerAddress,
		UndoDepth:     defaultUndoDepth,
		Team1Label:    defaultTeam1Label,
		Team2Label:    defaultTeam2Label,
	}
}

// LoadConfig reads the configuration file at path. A missing file is not an
// error: the server runs on defaults. A present but invalid file fails
// startup so a typo never silently reverts settings.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	out := defaults()
	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	if rc.UndoDepth != nil {
		if *rc.UndoDepth < 1 {
			return nil, fmt.Errorf("config file %s: undo_depth must be at least 1", path)
		}
		out.UndoDepth = *rc.UndoDepth
	}
	if l := strings.TrimSpace(rc.Team1Label); l != "" {
		out.Team1Label = l
	}
	if l := strings.TrimSpace(rc.Team2Label); l != "" {
		out.Team2Label = l
	}
	if w := strings.TrimSpace(rc.ExportWebhookURL); w != "" {
		u, err := url.Parse(w)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return nil, fmt.Errorf("config file %s: export_webhook_url must be an http(s) URL", path)
		}
		out.ExportWebhookURL = w
	}
	return out, nil
}
