package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type StructuredJSONConfig struct {
	User struct {
		FullName string `json:"full_name"`
	} `json:"user,omitempty"`

	Site struct {
		Name     string  `json:"name"`
		Counter  Counter `json:"counter"`
		Template string  `json:"template"`
	} `json:"site,omitempty"`

	UI struct {
		Clipboard bool `json:"clipboard"`
		Identicon bool `json:"identicon"`
	} `json:"ui,omitempty"`

	Storage struct {
		DSN string `json:"dsn"`
	} `json:"storage,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		User: User{
			FullName: jsonCfg.User.FullName,
		},
		Site: Site{
			Name:     jsonCfg.Site.Name,
			Counter:  jsonCfg.Site.Counter,
			Template: jsonCfg.Site.Template,
		},
		UI: UI{
			Clipboard: jsonCfg.UI.Clipboard,
			Identicon: jsonCfg.UI.Identicon,
		},
		Storage: Storage{
			DSN: jsonCfg.Storage.DSN,
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
