package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/langshim/internal/messages"
)

const (
	// AppName is the application name used for config and data directories.
	AppName = "langshim"
	// FileName is the config file name inside Dir.
	FileName = "config.toml"
)

// Dir returns the langshim configuration directory: %APPDATA%\langshim on Windows,
// $XDG_CONFIG_HOME/langshim (default ~/.config/langshim) elsewhere.
func Dir() (string, error) {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName), nil
		}
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// DefaultUserRoot is the user-scope managed installation tree before expansion.
func DefaultUserRoot() string {
	if runtime.GOOS == "windows" {
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, AppName)
		}
	}
	return filepath.Join("~", ".local", "share", AppName)
}

// DefaultSystemRoot is the system-scope managed installation tree.
func DefaultSystemRoot() string {
	if runtime.GOOS == "windows" {
		if programData := os.Getenv("ProgramData"); programData != "" {
			return filepath.Join(programData, AppName)
		}
	}
	return filepath.Join(string(filepath.Separator), "usr", "local", "share", AppName)
}
