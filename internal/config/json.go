package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/tidwall/jsonc"
)

// StructuredJSONConfig is the on-disk shape of the configuration file.
type StructuredJSONConfig struct {
	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Logger struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"logger,omitempty"`

	UI struct {
		IndentWidth    int    `json:"indent_width"`
		Highlight      *bool  `json:"highlight"`
		HighlightStyle string `json:"highlight_style"`
		ShowOnLaunch   bool   `json:"show_on_launch"`
	} `json:"ui,omitempty"`

	JSON struct {
		Lenient bool `json:"lenient"`
	} `json:"json,omitempty"`
}

// parseJSON reads the configuration file at jsonFilePath. Comments and
// trailing commas are stripped before decoding.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Logger: Logger{
			File:  jsonCfg.Logger.File,
			Level: jsonCfg.Logger.Level,
		},
		UI: UI{
			IndentWidth:    jsonCfg.UI.IndentWidth,
			Highlight:      jsonCfg.UI.Highlight,
			HighlightStyle: jsonCfg.UI.HighlightStyle,
			ShowOnLaunch:   jsonCfg.UI.ShowOnLaunch,
		},
		JSON:         JSON{Lenient: jsonCfg.JSON.Lenient},
		JSONFilePath: "",
	}

	return cfg, nil
}
