package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			RunePolicy:               "strict",
			TransformConflictRetries: 3,
			TokenIssuer:              "go-chat-cipher",
			TokenDuration:            24 * time.Hour,
			Version:                  "dev",
			LogLevel:                 "debug",
		},
		Storage: Storage{
			DB:    DB{DSN: "chat.db"},
			Files: Files{ImageDir: "images"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			AIBaseURL:      "https://generativelanguage.googleapis.com",
			AIModel:        "gemini-1.5-flash",
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			PollInterval: 2 * time.Second,
		},
	}
}
