package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds application configuration.
type Settings struct {
	Server ServerSettings
	Output OutputSettings
	Log    LogSettings
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	Address        string
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OutputSettings configures report rendering.
type OutputSettings struct {
	Format string
}

// LogSettings configures logging.
type LogSettings struct {
	Level string
}

// LoadSettings reads settings from file and env. Env var overrides use prefix QUOTECALC_,
// e.g. QUOTECALC_SERVER_ADDRESS.
func LoadSettings() (Settings, error) {
	v := viper.New()

	// default values
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("output.format", "console")
	v.SetDefault("log.level", "info")

	v.SetConfigType("yaml")

	cfgPath := os.Getenv("QUOTECALC_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "quotecalc"))
		v.AddConfigPath(".")
		v.SetConfigName("quotecalc")
	}

	v.SetEnvPrefix("QUOTECALC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing default file is fine; an explicit file that fails to load is not.
		if cfgPath != "" {
			return Settings{}, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return s, nil
}
