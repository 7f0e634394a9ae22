package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type StructuredJSONConfig struct {
	App struct {
		EnvFile  string `json:"env_file"`
		Output   string `json:"output"`
		Strict   bool   `json:"strict"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	decoder := json.NewDecoder(jsonFile)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			EnvFile:  jsonCfg.App.EnvFile,
			Output:   jsonCfg.App.Output,
			Strict:   jsonCfg.App.Strict,
			LogLevel: jsonCfg.App.LogLevel,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
