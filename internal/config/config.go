package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds everything the server needs to start
type Config struct {
	ServiceHost string
	ServicePort int
	Database    DatabaseConfig
}

// DatabaseConfig holds the PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

const (
	envDBHost = "DB_HOST"
	envDBUser = "DB_USER"
	envDBPass = "DB_PASSWORD"
	envDBName = "DB_NAME"
)

// NewConfig reads the TOML config file, then lets environment variables
// override the database credentials. A missing config file is not fatal: the
// defaults cover local development.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	viper.SetDefault("ServiceHost", "0.0.0.0")
	viper.SetDefault("ServicePort", 8080)
	viper.SetDefault("Database.Host", "localhost")
	viper.SetDefault("Database.Port", 5432)
	viper.SetDefault("Database.User", "postgres")
	viper.SetDefault("Database.Password", "postgres")
	viper.SetDefault("Database.Name", "accounting")
	viper.SetDefault("Database.SSLMode", "disable")

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, err
		}
		log.Warn("config file not found, using defaults")
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if v := os.Getenv(envDBHost); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv(envDBUser); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv(envDBPass); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv(envDBName); v != "" {
		cfg.Database.Name = v
	}

	log.Info("config parsed")

	return cfg, nil
}

// DSN renders the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Name, c.Database.SSLMode)
}

// Addr renders the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServiceHost, c.ServicePort)
}
