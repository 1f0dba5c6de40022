// Package config loads langshim settings from the config file and LANGSHIM_* variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/conn-castle/langshim/internal/messages"
)

// EnvPrefix prefixes environment variables that override config keys
// (LANGSHIM_USER_ROOT, LANGSHIM_SYSTEM_ROOT, LANGSHIM_DEBUG).
const EnvPrefix = "LANGSHIM"

// Config holds the resolved langshim settings.
type Config struct {
	// UserRoot is the user-scope managed installation tree.
	UserRoot string `mapstructure:"user_root"`
	// SystemRoot is the system-scope managed installation tree.
	SystemRoot string `mapstructure:"system_root"`
	// Debug enables debug logging on stderr.
	Debug bool `mapstructure:"debug"`
}

// LoadOptions adjusts where configuration is read from.
type LoadOptions struct {
	// ConfigDir overrides Dir(); tests point it at a temp directory.
	ConfigDir string
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		UserRoot:   DefaultUserRoot(),
		SystemRoot: DefaultSystemRoot(),
	}
}

// Load reads the config file, when present, and applies environment overrides.
// It returns the config and the file path that was read ("" when none).
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("user_root", defaults.UserRoot)
	v.SetDefault("system_root", defaults.SystemRoot)
	v.SetDefault("debug", defaults.Debug)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	dir := opts.ConfigDir
	if dir == "" {
		var err error
		dir, err = Dir()
		if err != nil {
			return nil, "", err
		}
	}

	resolvedPath := ""
	path := filepath.Join(dir, FileName)
	if fileExists(path) {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf(messages.ConfigInvalidConfigFmt, path, err)
		}
		resolvedPath = path
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf(messages.ConfigDecodeFmt, err)
	}
	if err := cfg.expand(); err != nil {
		return nil, "", err
	}
	return &cfg, resolvedPath, nil
}

// expand resolves ~ in the installation roots and requires them to be absolute.
func (c *Config) expand() error {
	roots := []struct {
		key   string
		value *string
	}{
		{"user_root", &c.UserRoot},
		{"system_root", &c.SystemRoot},
	}
	for _, root := range roots {
		expanded, err := homedir.Expand(*root.value)
		if err != nil {
			return fmt.Errorf(messages.ConfigExpandPathFmt, root.key, *root.value, err)
		}
		if !filepath.IsAbs(expanded) {
			return fmt.Errorf(messages.ConfigRootRelativeFmt, root.key, expanded)
		}
		*root.value = filepath.Clean(expanded)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
