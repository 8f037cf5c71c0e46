package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations for file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		Version      string   `json:"version"`
		RecentWindow Duration `json:"recent_window"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Collaborators struct {
		Payments struct {
			BaseURL        string   `json:"base_url"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"payments,omitempty"`

		Calendar struct {
			BaseURL        string   `json:"base_url"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"calendar,omitempty"`

		Dispatcher struct {
			MassEmailURL   string   `json:"mass_email_url"`
			EventURL       string   `json:"event_url"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"dispatcher,omitempty"`
	} `json:"collaborators,omitempty"`
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
			Version:      jsonCfg.App.Version,
			RecentWindow: time.Duration(jsonCfg.App.RecentWindow),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Collaborators: Collaborators{
			Payments: Endpoint{
				BaseURL:        jsonCfg.Collaborators.Payments.BaseURL,
				RequestTimeout: time.Duration(jsonCfg.Collaborators.Payments.RequestTimeout),
			},
			Calendar: Endpoint{
				BaseURL:        jsonCfg.Collaborators.Calendar.BaseURL,
				RequestTimeout: time.Duration(jsonCfg.Collaborators.Calendar.RequestTimeout),
			},
			Dispatcher: Dispatcher{
				MassEmailURL:   jsonCfg.Collaborators.Dispatcher.MassEmailURL,
				EventURL:       jsonCfg.Collaborators.Dispatcher.EventURL,
				RequestTimeout: time.Duration(jsonCfg.Collaborators.Dispatcher.RequestTimeout),
			},
		},
		JSONFilePath: "",
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
