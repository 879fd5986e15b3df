package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

// SupplierConfig describes one feed the sync service pulls from.
type SupplierConfig struct {
	Key          string `yaml:"key"`
	BaseURL      string `yaml:"base_url"`
	APIKey       string `yaml:"api_key"`
	AuthHeader   string `yaml:"auth_header"`
	PageSize     int    `yaml:"page_size"`
	MaxPages     int    `yaml:"max_pages"`
	RateLimit    int    `yaml:"rate_limit"` // requests per minute
	FeedURL      string `yaml:"feed_url"`
	FeedEncoding string `yaml:"feed_encoding"`
	FeedComma    string `yaml:"feed_comma"`
}

// CatalogValues holds the text-cleanup limits applied before persistence.
type CatalogValues struct {
	MaxNameLength        int `yaml:"max-name-length"`
	MaxDescriptionLength int `yaml:"max-description-length"`
}

type AppConfig struct {
	Addr      string           `yaml:"addr"`
	Suppliers []SupplierConfig `yaml:"suppliers"`
	Values    CatalogValues    `yaml:"default_values"`
	Postgres  PostgresConfig   `yaml:"postgres"`
}

// LoadConfig reads the yaml config. ${VAR} references are expanded from
// the environment first, so secrets like API keys stay out of the file;
// unset variables expand to the empty string.
func LoadConfig(filename string) (*AppConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := &AppConfig{}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), config); err != nil {
		return nil, err
	}
	if config.Addr == "" {
		config.Addr = ":8081"
	}
	if config.Values.MaxNameLength == 0 {
		config.Values.MaxNameLength = 200
	}
	if config.Values.MaxDescriptionLength == 0 {
		config.Values.MaxDescriptionLength = 5000
	}
	return config, nil
}
