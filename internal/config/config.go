// Package config loads server configuration from an optional JSON file
// with environment variable overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Addr    string `json:"addr"`
	DataDir string `json:"data_dir"`

	// DatabaseURL enables the remote persistence tier when set.
	DatabaseURL string `json:"database_url"`

	JWTSecret string `json:"jwt_secret"`

	OllamaBaseURL string `json:"ollama_base_url"`
	OllamaModel   string `json:"ollama_model"`
	OpenAIBaseURL string `json:"openai_base_url"`
	OpenAIAPIKey  string `json:"openai_api_key"`
	OpenAIModel   string `json:"openai_model"`

	TelegramBotToken string `json:"telegram_bot_token"`
	TelegramChatID   string `json:"telegram_chat_id"`
}

func defaults() Config {
	return Config{
		Addr:    ":8080",
		DataDir: "data",
	}
}

// Load reads the config file at path (skipped when empty or missing),
// then applies FRIENDSYNC_* environment overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// optional file
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := json.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return Config{}, fmt.Errorf("jwt secret is required (set FRIENDSYNC_JWT_SECRET)")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	overrides := map[string]*string{
		"FRIENDSYNC_ADDR":               &cfg.Addr,
		"FRIENDSYNC_DATA_DIR":           &cfg.DataDir,
		"FRIENDSYNC_DATABASE_URL":       &cfg.DatabaseURL,
		"FRIENDSYNC_JWT_SECRET":         &cfg.JWTSecret,
		"FRIENDSYNC_OLLAMA_BASE_URL":    &cfg.OllamaBaseURL,
		"FRIENDSYNC_OLLAMA_MODEL":       &cfg.OllamaModel,
		"FRIENDSYNC_OPENAI_BASE_URL":    &cfg.OpenAIBaseURL,
		"FRIENDSYNC_OPENAI_API_KEY":     &cfg.OpenAIAPIKey,
		"FRIENDSYNC_OPENAI_MODEL":       &cfg.OpenAIModel,
		"FRIENDSYNC_TELEGRAM_BOT_TOKEN": &cfg.TelegramBotToken,
		"FRIENDSYNC_TELEGRAM_CHAT_ID":   &cfg.TelegramChatID,
	}
	for key, target := range overrides {
		if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
			*target = strings.TrimSpace(value)
		}
	}
}
