package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AdminSeed holds the values used to create the initial administrator
// account at startup. When incomplete, seeding is skipped entirely.
type AdminSeed struct {
	Username  string `mapstructure:"admin_username"`
	Password  string `mapstructure:"admin_password"`
	Email     string `mapstructure:"admin_email"`
	FirstName string `mapstructure:"admin_first_name"`
	LastName  string `mapstructure:"admin_last_name"`
	Phone     string `mapstructure:"admin_phone"`
}

// Complete reports whether the minimum fields needed to create the
// administrator account are present.
func (a AdminSeed) Complete() bool {
	return a.Username != "" && a.Password != "" && a.Email != ""
}

type Config struct {
	HTTPPort        int       `mapstructure:"http_port"`
	LogLevel        string    `mapstructure:"log_level"`
	DatabaseDriver  string    `mapstructure:"database_driver"`
	DatabaseURL     string    `mapstructure:"database_url"`
	JwtSecret       string    `mapstructure:"jwt_secret"`
	TokenTTLMinutes int       `mapstructure:"token_ttl_minutes"`
	AllowedOrigins  []string  `mapstructure:"cors_allowed_origins"`

	AdminSeed `mapstructure:",squash"`
}

var AppConfig Config

func InitConfig() {
	// Deployments keep secrets in a .env file; absence is fine.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variable overrides
	viper.SetEnvPrefix("TASKHUB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("http_port", 8000)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("database_driver", "sqlite")
	viper.SetDefault("database_url", "todos.db")
	viper.SetDefault("jwt_secret", "default-very-insecure-secret-key") // CHANGE THIS IN PRODUCTION
	viper.SetDefault("token_ttl_minutes", 20)
	viper.SetDefault("cors_allowed_origins", []string{"http://localhost:8080"})

	// Admin seed values are usually env-only; register the keys so viper
	// picks them up during Unmarshal.
	for _, key := range []string{
		"admin_username", "admin_password", "admin_email",
		"admin_first_name", "admin_last_name", "admin_phone",
	} {
		viper.SetDefault(key, "")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Println("Config file not found, using defaults and environment variables.")
		} else {
			panic(fmt.Errorf("fatal error reading config file: %w", err))
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		panic(fmt.Errorf("unable to decode config into struct: %w", err))
	}
}
