// Package project persists PatternCut state on disk: the application
// configuration, the saved pattern store, generated plans and backups.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/piwi3910/PatternCut/internal/model"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to configuration keys when read from the
// environment, e.g. PATTERNCUT_UPLOAD_DIR.
const EnvPrefix = "PATTERNCUT"

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.patterncut/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".patterncut")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// newViper returns a viper instance with every AppConfig key defaulted and
// bound to the environment. The bare PORT variable is honoured for hosting
// platforms that inject it.
func newViper() *viper.Viper {
	v := viper.New()
	d := model.DefaultAppConfig()
	v.SetDefault("port", d.Port)
	v.SetDefault("upload_dir", d.UploadDir)
	v.SetDefault("max_upload_size", d.MaxUploadSize)
	v.SetDefault("public_dir", d.PublicDir)
	v.SetDefault("data_file", d.DataFile)
	v.SetDefault("default_fabric", d.DefaultFabric)
	v.SetDefault("waste_percent", d.WastePercent)
	v.SetDefault("price_per_meter", d.PricePerMeter)
	v.SetDefault("cutter_profile", d.CutterProfile)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("port", EnvPrefix+"_PORT", "PORT")
	return v
}

// LoadAppConfig reads an AppConfig from the given path (JSON or YAML,
// chosen by extension), then applies environment overrides. If the file does
// not exist the defaults are used with no error. An empty path skips the
// file entirely.
func LoadAppConfig(path string) (model.AppConfig, error) {
	v := newViper()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return model.AppConfig{}, fmt.Errorf("error reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return model.AppConfig{}, err
		}
	}

	var config model.AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := ValidateAppConfig(config); err != nil {
		return model.AppConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

var validate = validator.New()

// ValidateAppConfig checks value ranges declared on AppConfig.
func ValidateAppConfig(config model.AppConfig) error {
	return validate.Struct(config)
}
