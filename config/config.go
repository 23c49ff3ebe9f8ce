package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	AppName    = "udevmonitor-fancy"
	AppVersion = "0.2"
)

// MonitorConfig selects the netlink sources to watch and how diffs are
// rendered. Flags layer over environment variables over the config file
// over defaults, in viper's usual order.
type MonitorConfig struct {
	Kernel     bool
	Udev       bool
	Subsystems []string
	NoColor    bool
}

func Load() (*MonitorConfig, error) {
	viper.SetDefault("Kernel", false)
	viper.SetDefault("Udev", false)
	viper.SetDefault("Subsystems", []string{})
	viper.SetDefault("NoColor", false)

	// Load from configuration file, environment variables, and CLI flags
	viper.SetConfigName("config")                       // name of config file (without extension)
	viper.SetConfigType("yaml")                         // config file format
	viper.AddConfigPath(filepath.Join("/etc", AppName)) // Global configuration path
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", AppName)) // User config path
	}

	// Environment variable support
	viper.SetEnvPrefix(strings.ReplaceAll(AppName, "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// File not found is acceptable, only raise errors for other issues
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("Error reading config file: %w", err)
		}
	}

	cfg := &MonitorConfig{
		Kernel:     viper.GetBool("Kernel"),
		Udev:       viper.GetBool("Udev"),
		Subsystems: viper.GetStringSlice("Subsystems"),
		NoColor:    viper.GetBool("NoColor"),
	}
	// The udev source alone is enabled when nothing asked for either.
	if !cfg.Kernel && !cfg.Udev {
		cfg.Udev = true
	}
	return cfg, nil
}
