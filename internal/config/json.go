// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config.
type StructuredJSONConfig struct {
	App struct {
		SecretFile     string `json:"secret_file"`
		RestartCommand string `json:"restart_command"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend string   `json:"backend"`
		Timeout Duration `json:"timeout"`

		Mongo struct {
			Host       string `json:"host"`
			Port       int    `json:"port"`
			URI        string `json:"uri"`
			Database   string `json:"database"`
			Collection string `json:"collection"`
		} `json:"mongo,omitempty"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Probe struct {
		Timeout Duration `json:"timeout"`
	} `json:"probe,omitempty"`

	LogLevel string `json:"log_level"`
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
		App: App{
			SecretFile:     jsonCfg.App.SecretFile,
			RestartCommand: jsonCfg.App.RestartCommand,
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			Timeout: time.Duration(jsonCfg.Storage.Timeout),
			Mongo: Mongo{
				Host:       jsonCfg.Storage.Mongo.Host,
				Port:       jsonCfg.Storage.Mongo.Port,
				URI:        jsonCfg.Storage.Mongo.URI,
				Database:   jsonCfg.Storage.Mongo.Database,
				Collection: jsonCfg.Storage.Mongo.Collection,
			},
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Probe: Probe{
			Timeout: time.Duration(jsonCfg.Probe.Timeout),
		},
		LogLevel: jsonCfg.LogLevel,
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
