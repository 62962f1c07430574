package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"static-server/core/logger"
	"static-server/core/server"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and an optional
// .env file found in path.
func LoadConfig(path string) (*Config, error) {
	// Ignore error if file doesn't exist
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	if err := bindValues(v, Config{}, ""); err != nil {
		return nil, err
	}

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags. Defaults are converted to the
// field's type so a malformed tag fails at load time instead of at Unmarshal.
func bindValues(v *viper.Viper, iface any, prefix string) error {
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
			if err := bindValues(v, reflect.New(field.Type).Elem().Interface(), key); err != nil {
				return err
			}
			continue
		}

		value, err := typedDefault(field.Type, field.Tag.Get("default"))
		if err != nil {
			return fmt.Errorf("default for %s: %w", key, err)
		}
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, value)
	}
	return nil
}

func typedDefault(t reflect.Type, raw string) (any, error) {
	if t == reflect.TypeOf(time.Duration(0)) {
		if raw == "" {
			return time.Duration(0), nil
		}
		return time.ParseDuration(raw)
	}

	switch t.Kind() {
	case reflect.Bool:
		if raw == "" {
			return false, nil
		}
		return strconv.ParseBool(raw)
	case reflect.Int, reflect.Int64, reflect.Int32:
		if raw == "" {
			return 0, nil
		}
		return strconv.Atoi(raw)
	default:
		return raw, nil
	}
}
