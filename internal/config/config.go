package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	StorageDriverFile  = "file"
	StorageDriverMySQL = "mysql"

	GenerationModeMock   = "mock"
	GenerationModeRemote = "remote"
)

type Config struct {
	Storage    StorageConfig    `mapstructure:"storage"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Generation GenerationConfig `mapstructure:"generation"`
	Backups    BackupsConfig    `mapstructure:"backups"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=file mysql"`
	File   string `mapstructure:"file" validate:"required_if=Driver file"`
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	TLS             bool   `mapstructure:"tls"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type GenerationConfig struct {
	Mode             string `mapstructure:"mode" validate:"oneof=mock remote"`
	Endpoint         string `mapstructure:"endpoint" validate:"required_if=Mode remote,omitempty,url"`
	MaxRetryAttempts uint   `mapstructure:"max_retry_attempts"`
}

type BackupsConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/flashdeck")
	}

	v.SetDefault("storage.driver", StorageDriverFile)
	v.SetDefault("storage.file", filepath.Join("data", "flashcards.json"))
	v.SetDefault("backups.directory", filepath.Join("data", "backups"))
	v.SetDefault("generation.mode", GenerationModeMock)
	v.SetDefault("generation.max_retry_attempts", 3)
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "flashdeck")

	// Bind secrets and the generation endpoint to environment variables only
	// (not from the config file)
	if err := v.BindEnv("database.password", "FLASHDECK_DATABASE_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind FLASHDECK_DATABASE_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("generation.endpoint", "FLASHDECK_GENERATION_ENDPOINT"); err != nil {
		return nil, fmt.Errorf("failed to bind FLASHDECK_GENERATION_ENDPOINT environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
