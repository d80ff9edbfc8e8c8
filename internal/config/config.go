// Package config loads service configuration from an optional JSON file
// with environment overrides.
package config

import (
    "encoding/json"
    "fmt"
    "os"
)

// Generator configures the image-generation collaborator.
type Generator struct {
    Endpoint string `json:"endpoint"`
    APIKey   string `json:"apiKey"`
}

// Config is the service configuration.
type Config struct {
    Port         string    `json:"port"`
    Generator    Generator `json:"generator"`
    ShareBaseURL string    `json:"shareBaseUrl"`
}

func defaults() *Config {
    return &Config{
        Port:         "8080",
        ShareBaseURL: "http://localhost:8080",
    }
}

// Load reads the JSON config at path (missing file is fine, defaults apply)
// and then applies environment overrides: PORT, GENERATOR_ENDPOINT,
// GENERATOR_API_KEY, SHARE_BASE_URL.
func Load(path string) (*Config, error) {
    cfg := defaults()

    if path != "" {
        data, err := os.ReadFile(path)
        switch {
        case os.IsNotExist(err):
            // fall through to defaults
        case err != nil:
            return nil, fmt.Errorf("read config: %w", err)
        default:
            if err := json.Unmarshal(data, cfg); err != nil {
                return nil, fmt.Errorf("parse config %s: %w", path, err)
            }
        }
    }

    if v := os.Getenv("PORT"); v != "" {
        cfg.Port = v
    }
    if v := os.Getenv("GENERATOR_ENDPOINT"); v != "" {
        cfg.Generator.Endpoint = v
    }
    if v := os.Getenv("GENERATOR_API_KEY"); v != "" {
        cfg.Generator.APIKey = v
    }
    if v := os.Getenv("SHARE_BASE_URL"); v != "" {
        cfg.ShareBaseURL = v
    }
    return cfg, nil
}
