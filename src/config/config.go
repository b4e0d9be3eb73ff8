package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Service  ServiceConfig  `mapstructure:"service"`
	Store    StoreConfig    `mapstructure:"store"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
	AWS      AWSConfig      `mapstructure:"aws"`
}

type ServiceConfig struct {
	Port            string          `mapstructure:"port"`
	APIKey          string          `mapstructure:"apiKey"`
	DevelopmentMode bool            `mapstructure:"developmentMode"`
	RateLimit       RateLimitConfig `mapstructure:"rateLimit"`
}

type RateLimitConfig struct {
	Requests      int `mapstructure:"requests"`
	WindowSeconds int `mapstructure:"windowSeconds"`
}

type StoreBackend string

const (
	SheetsBackend StoreBackend = "sheets"
	XLSXBackend   StoreBackend = "xlsx"
)

type StoreConfig struct {
	Backend StoreBackend `mapstructure:"backend"`
	Sheets  SheetsConfig `mapstructure:"sheets"`
	XLSX    XLSXConfig   `mapstructure:"xlsx"`
}

type SheetsConfig struct {
	BaseURL       string `mapstructure:"baseUrl"`
	SpreadsheetID string `mapstructure:"spreadsheetId"`
	Token         string `mapstructure:"token"`
}

type XLSXConfig struct {
	Path string `mapstructure:"path"`
}

type SnapshotConfig struct {
	Cron string `mapstructure:"cron"`
}

type AWSConfig struct {
	Region        string `mapstructure:"region"`
	TokenSecretID string `mapstructure:"tokenSecretId"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	viper.AddConfigPath(path)
	viper.SetConfigName("appsettings")
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Service.Port == "" {
		cfg.Service.Port = "8000"
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = SheetsBackend
	}
	return &cfg, nil
}
