package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		CipherKey                string            `json:"cipher_key"`
		ChatKeys                 map[string]string `json:"cipher_chat_keys"`
		RunePolicy               string            `json:"cipher_rune_policy"`
		TransformConflictRetries int               `json:"transform_conflict_retries"`
		TokenSignKey             string            `json:"token_sign_key"`
		TokenIssuer              string            `json:"token_issuer"`
		TokenDuration            Duration          `json:"token_duration"`
		Token                    string            `json:"token"`
		PeerID                   string            `json:"peer_id"`
		Version                  string            `json:"version"`
		LogLevel                 string            `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			ImageDir string `json:"image_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		AIBaseURL      string   `json:"ai_base_url"`
		AIAPIKey       string   `json:"ai_api_key"`
		AIModel        string   `json:"ai_model"`
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		PollInterval Duration `json:"poll_interval"`
	} `json:"workers,omitempty"`
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
			CipherKey:                jsonCfg.App.CipherKey,
			ChatKeys:                 jsonCfg.App.ChatKeys,
			RunePolicy:               jsonCfg.App.RunePolicy,
			TransformConflictRetries: jsonCfg.App.TransformConflictRetries,
			TokenSignKey:             jsonCfg.App.TokenSignKey,
			TokenIssuer:              jsonCfg.App.TokenIssuer,
			TokenDuration:            time.Duration(jsonCfg.App.TokenDuration),
			Token:                    jsonCfg.App.Token,
			PeerID:                   jsonCfg.App.PeerID,
			Version:                  jsonCfg.App.Version,
			LogLevel:                 jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Files: Files{ImageDir: jsonCfg.Storage.Files.ImageDir},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			AIBaseURL:      jsonCfg.Adapter.AIBaseURL,
			AIAPIKey:       jsonCfg.Adapter.AIAPIKey,
			AIModel:        jsonCfg.Adapter.AIModel,
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			PollInterval: time.Duration(jsonCfg.Workers.PollInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
