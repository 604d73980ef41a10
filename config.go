package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultClassifierTimeout = 15 * time.Second

// Config holds the service configuration. Values come from config.yaml if
// present, with environment variables taking precedence.
type Config struct {
	ServerAddr string `yaml:"server_addr"`
	GinMode    string `yaml:"gin_mode"`

	ClassifierURL            string `yaml:"classifier_url"`
	ClassifierTimeoutSeconds int    `yaml:"classifier_timeout_seconds"`
}

func LoadConfig() Config {
	var cfg Config

	// Load from config.yaml if it exists
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.ServerAddr, "SERVER_ADDR")
	envOverride(&cfg.GinMode, "GIN_MODE")
	envOverride(&cfg.ClassifierURL, "CLASSIFIER_URL")
	envOverrideInt(&cfg.ClassifierTimeoutSeconds, "CLASSIFIER_TIMEOUT_SECONDS")

	// Defaults
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = ":8090"
	}
	if cfg.GinMode == "" {
		cfg.GinMode = "debug"
	}
	if cfg.ClassifierURL == "" {
		cfg.ClassifierURL = "http://localhost:8500/infer"
	}
	if cfg.ClassifierTimeoutSeconds <= 0 {
		cfg.ClassifierTimeoutSeconds = int(defaultClassifierTimeout / time.Second)
	}

	return cfg
}

// ClassifierTimeout returns the sidecar request timeout as a duration.
func (c Config) ClassifierTimeout() time.Duration {
	return time.Duration(c.ClassifierTimeoutSeconds) * time.Second
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}
