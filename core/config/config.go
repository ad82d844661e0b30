package config

import (
	"fmt"
	"reflect"
	"strings"

	"file-agent/core/database"
	"file-agent/core/logger"
	"file-agent/core/server"
	"file-agent/core/storage"
	"file-agent/feature/agent"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage bucket backing all files.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the optional activity database.
	Database database.Config `mapstructure:"database"`
	// Agent holds configuration for the LLM agent.
	Agent agent.Config `mapstructure:"agent"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is normal outside local development.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags. An 'env' tag lists extra
// environment variable names accepted for the key.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Registering every key, even with an empty default, is what lets
		// AutomaticEnv pick it up during Unmarshal.
		v.SetDefault(key, field.Tag.Get("default"))

		// Legacy variable names are consulted after the canonical one.
		if aliases := field.Tag.Get("env"); aliases != "" {
			canonical := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
			_ = v.BindEnv(append([]string{key, canonical}, strings.Split(aliases, ",")...)...)
		}
	}
}
