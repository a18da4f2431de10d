package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	"github.com/yuanweize/BTtrackers-updater/core/logger"
	"github.com/yuanweize/BTtrackers-updater/feature/aria2conf"
	"github.com/yuanweize/BTtrackers-updater/feature/aria2rpc"
	"github.com/yuanweize/BTtrackers-updater/feature/sources"
	"github.com/yuanweize/BTtrackers-updater/feature/update"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Aria2 holds configuration for the aria2 config file target.
	Aria2 aria2conf.Config `mapstructure:"aria2"`
	// Sources holds configuration for remote tracker list retrieval.
	Sources sources.Config `mapstructure:"sources"`
	// RPC holds configuration for the aria2 JSON-RPC target.
	RPC aria2rpc.Config `mapstructure:"rpc"`
	// Update holds configuration for the update orchestrator.
	Update update.Config `mapstructure:"update"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig builds the configuration by layering defaults, an optional
// config file, and environment variables, in that order. The returned value
// is never mutated afterwards; command-line overrides are applied by the
// caller before components are constructed.
func LoadConfig(file string) (*Config, error) {
	// 1. Load .env file if it exists
	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(".env")

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Slice defaults can't live in struct tags
	v.SetDefault("sources.urls", sources.DefaultURLs)

	// 2. Optional config file; a missing file means "use defaults"
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			var pathErr *fs.PathError
			if !errors.As(err, &pathErr) {
				return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
			}
		}
	}

	// 3. Map environment variables to nested keys (e.g. RPC_URL -> rpc.url)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Slices get their defaults set explicitly by the caller
		if field.Type.Kind() == reflect.Slice {
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
