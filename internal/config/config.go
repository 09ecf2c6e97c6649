package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Ingest   IngestConfig   `mapstructure:"ingest"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Path           string `mapstructure:"path"`
	MigrationsPath string `mapstructure:"migrations_path"`
	MaxConnections int    `mapstructure:"max_connections"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// IngestConfig holds the CSV seed file locations consumed by cmd/seed
type IngestConfig struct {
	UsersCSV  string `mapstructure:"users_csv"`
	OrdersCSV string `mapstructure:"orders_csv"`
}

// Load reads configuration from configs/config.yaml with env overrides
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()

	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")
	viper.BindEnv("database.path", "DATABASE_PATH")
	viper.BindEnv("logging.level", "LOG_LEVEL")
	viper.BindEnv("ingest.users_csv", "USERS_CSV_PATH")
	viper.BindEnv("ingest.orders_csv", "ORDERS_CSV_PATH")

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional; defaults plus env are enough to run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 3001)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.mode", "development")

	viper.SetDefault("database.path", "./data/dashboard.db")
	viper.SetDefault("database.migrations_path", "./migrations")
	viper.SetDefault("database.max_connections", 25)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")

	viper.SetDefault("ingest.users_csv", "./data/users.csv")
	viper.SetDefault("ingest.orders_csv", "./data/orders.csv")
}
