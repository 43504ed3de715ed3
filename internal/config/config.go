// Package config loads the yaml configuration that sits next to the
// executable. Missing file means defaults; missing API key falls back to
// the environment.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	exeDirCache string
)

// getExecutableDir returns the directory where the executable is located
func getExecutableDir() string {
	if exeDirCache != "" {
		return exeDirCache
	}
	execPath, err := os.Executable()
	if err != nil {
		exeDirCache = "."
		return exeDirCache
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		exeDirCache = "."
		return exeDirCache
	}
	exeDirCache = filepath.Dir(execPath)
	return exeDirCache
}

type Config struct {
	AI      AIConfig      `yaml:"ai,omitempty"`
	Agent   AgentConfig   `yaml:"agent,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

type AIConfig struct {
	Provider string `yaml:"provider,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model,omitempty"`
}

type AgentConfig struct {
	MaxToolIterations int `yaml:"max_tool_iterations,omitempty"`
	HistoryWindow     int `yaml:"history_window,omitempty"`
	MaxTokens         int `yaml:"max_tokens,omitempty"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		AI: AIConfig{
			Provider: "claude",
		},
		Agent: AgentConfig{
			MaxToolIterations: 5,
			HistoryWindow:     20,
			MaxTokens:         4096,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func ConfigPath() string {
	exeDir := getExecutableDir()
	return filepath.Join(exeDir, ".siteagent.yaml")
}

// DataPath is where the sqlite conversation store lives.
func DataPath() string {
	exeDir := getExecutableDir()
	return filepath.Join(exeDir, ".siteagent.db")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			cfg.fillFromEnv()
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.fillFromEnv()
	return cfg, nil
}

// fillFromEnv covers the common deployment where the key lives in the
// environment rather than on disk.
func (c *Config) fillFromEnv() {
	if c.AI.APIKey != "" {
		return
	}
	switch c.AI.Provider {
	case "", "claude", "anthropic":
		c.AI.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	default:
		c.AI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
}

func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigPath(), data, 0600)
}
