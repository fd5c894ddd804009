package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Broadcaster   string        `yaml:"broadcaster"`
	User          string        `yaml:"user"`
	Subscriptions []string      `yaml:"subscriptions"`
	Metrics       MetricsConfig `yaml:"metrics"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Subscriptions: []string{"channel.chat.message"},
		Metrics: MetricsConfig{
			Addr: "127.0.0.1:9120",
		},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
