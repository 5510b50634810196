package config

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
)

// Config defines the global application configuration structure.
// This structure maps directly to the config.json file and holds
// business-level settings: channel credentials, classifier providers,
// and the locations of the HR data files.
type Config struct {
	// Channels contains a map of channel identifiers (e.g., "telegram",
	// "console") to their specific configuration payloads in raw JSON format.
	Channels map[string]jsoniter.RawMessage `json:"channels"`
	// Classifier holds the intent-classifier provider group list in raw JSON.
	// Each group is resolved against the provider registry at startup.
	Classifier jsoniter.RawMessage `json:"classifier"`
	// Store configures the HR record store.
	Store StoreConfig `json:"store"`
	// Policy configures the HR policy corpus.
	Policy PolicyConfig `json:"policy"`
	// Reports configures the daily-report artifact output.
	Reports ReportsConfig `json:"reports"`
}

// StoreConfig locates the sqlite database file backing the record store.
type StoreConfig struct {
	Path string `json:"path"`
}

// PolicyConfig locates the yaml file holding the HR policy corpus.
type PolicyConfig struct {
	Path string `json:"path"`
}

// ReportsConfig names the directory where rendered report artifacts land.
type ReportsConfig struct {
	Dir string `json:"dir"`
}

// Validate ensures the configuration structure contains all mandatory fields
// and fills in defaults for the optional ones. It acts as a primary guard
// before the system proceeds to initialization.
func (c *Config) Validate() error {
	if len(c.Channels) == 0 {
		return fmt.Errorf("mandatory 'channels' configuration is missing or empty")
	}
	if c.Store.Path == "" {
		c.Store.Path = "hr_system.db"
	}
	if c.Policy.Path == "" {
		c.Policy.Path = "policies.yaml"
	}
	if c.Reports.Dir == "" {
		c.Reports.Dir = "reports"
	}
	return nil
}

// SystemConfig defines engine-level technical parameters.
// These settings are usually stored in system.json and control the
// reliability and technical behavior of the hrdesk engine, as opposed
// to the business configuration in config.json.
type SystemConfig struct {
	// MaxRetries is the number of times a classifier provider is retried
	// on a transient error before the next provider in the chain is tried.
	MaxRetries int `json:"max_retries"`
	// RetryDelayMs is the duration to wait (in milliseconds) between
	// consecutive retry attempts.
	RetryDelayMs int `json:"retry_delay_ms"`
	// ClassifyTimeoutMs is the hard cutoff time (in milliseconds) for a
	// single intent-classification call. The context is cancelled if exceeded.
	ClassifyTimeoutMs int `json:"classify_timeout_ms"`
	// OllamaDefaultURL is the fallback endpoint used when connecting
	// to a local Ollama instance if no specific URL is provided.
	OllamaDefaultURL string `json:"ollama_default_url"`
	// TelegramMessageLimit is the maximum character count for a single
	// Telegram message. Longer replies are split into multiple chunks.
	TelegramMessageLimit int `json:"telegram_message_limit"`
	// PolicyTopK is how many policy candidates the fuzzy search considers
	// before picking the best match.
	PolicyTopK int `json:"policy_top_k"`
	// LogLevel sets the minimum severity for log output.
	// Accepted values: "debug", "info", "warn", "error". Default: "info".
	LogLevel string `json:"log_level"`
}

// DefaultSystemConfig returns a SystemConfig pointer initialized with hardcoded
// safe default values. This is used as a fallback when the system.json file
// is missing or corrupt, ensuring the engine can always start.
func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		MaxRetries:           3,
		RetryDelayMs:         500,
		ClassifyTimeoutMs:    60000,
		OllamaDefaultURL:     "http://localhost:11434",
		TelegramMessageLimit: 4000,
		PolicyTopK:           3,
		LogLevel:             "info",
	}
}

// Load reads and parses the JSON configuration files from the current working directory.
// It first attempts to load 'config.json' (app config). If this file is missing, it returns an error.
// Then it calls LoadSystemConfig to load 'system.json'.
// Returns pointers to the loaded Config and SystemConfig, or an error if the mandatory app config fails.
func Load() (*Config, *SystemConfig, error) {
	appPath := "config.json"
	if _, err := os.Stat(appPath); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("config file '%s' not found. please create one", appPath)
	}

	appFile, err := os.ReadFile(appPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(appFile, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	sysCfg := LoadSystemConfig("system.json")

	return &cfg, sysCfg, nil
}

// LoadSystemConfig attempts to load system settings, returns defaults if it fails
func LoadSystemConfig(path string) *SystemConfig {
	cfg := DefaultSystemConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		return cfg // File not found, use defaults
	}

	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(file, cfg); err != nil {
		return cfg // Parse failed, use defaults
	}

	return cfg
}
