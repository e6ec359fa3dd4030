// Package config loads yavoy settings with Viper from defaults, YAVOY_* environment
// variables, the global XDG config file and a project-local yavoy.yml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/yavoy/internal/delay"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Share targets understood by the share gateway factory.
const (
	ShareStdout    = "stdout"
	ShareClipboard = "clipboard"
	ShareFile      = "file"
	ShareNATS      = "nats"
)

// DefaultTimeLayout renders an abbreviated date with a short time, e.g. "Jul 6, 2025 at 7:00 PM".
const DefaultTimeLayout = "Jan 2, 2006 at 3:04 PM"

// Config holds all configuration values for yavoy.
type Config struct {
	Family      string `mapstructure:"family" yaml:"family"`
	TimeLayout  string `mapstructure:"time_layout" yaml:"time_layout"`
	ShareTarget string `mapstructure:"share_target" yaml:"share_target"`
	ShareDir    string `mapstructure:"share_dir" yaml:"share_dir"`
	DataDir     string `mapstructure:"data_dir" yaml:"data_dir"`
	ServeAddr   string `mapstructure:"serve_addr" yaml:"serve_addr"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Family:      "colombian",
		TimeLayout:  DefaultTimeLayout,
		ShareTarget: ShareStdout,
		ShareDir:    "shares",
		DataDir:     ".yavoy",
		ServeAddr:   "127.0.0.1:8765",
		LogLevel:    "info",
		LogFile:     "",
		MetricsFile: "",
	}
}

// envKeys lists every key bound to a YAVOY_* variable.
var envKeys = []string{
	"family",
	"time_layout",
	"share_target",
	"share_dir",
	"data_dir",
	"serve_addr",
	"log_level",
	"log_file",
	"metrics_file",
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("yavoy")

	def := Default()
	v.SetDefault("family", def.Family)
	v.SetDefault("time_layout", def.TimeLayout)
	v.SetDefault("share_target", def.ShareTarget)
	v.SetDefault("share_dir", def.ShareDir)
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("serve_addr", def.ServeAddr)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("metrics_file", def.MetricsFile)

	v.SetEnvPrefix("YAVOY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range envKeys {
		if err := v.BindEnv(key, "YAVOY_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail late (at share or wizard time).
func (c *Config) Validate() error {
	switch c.ShareTarget {
	case ShareStdout, ShareClipboard, ShareFile, ShareNATS:
	default:
		return fmt.Errorf("invalid share_target %q (want stdout, clipboard, file or nats)", c.ShareTarget)
	}

	f, err := delay.ParseFamily(c.Family)
	if err != nil {
		return fmt.Errorf("invalid family: %w", err)
	}
	if !f.Available() {
		return fmt.Errorf("family %q: %w", c.Family, delay.ErrFamilyLocked)
	}

	if strings.TrimSpace(c.TimeLayout) == "" {
		return fmt.Errorf("time_layout cannot be empty")
	}
	// A layout without any reference-time token renders every instant the same way.
	probe := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	if probe.Format(c.TimeLayout) == probe.Add(25*time.Hour+61*time.Minute).Format(c.TimeLayout) {
		return fmt.Errorf("time_layout %q does not contain a date or time", c.TimeLayout)
	}
	return nil
}

// SelectedFamily returns the parsed family. Call after Validate.
func (c *Config) SelectedFamily() delay.Family {
	f, _ := delay.ParseFamily(c.Family)
	return f
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/yavoy/yavoy.yml or $XDG_CONFIG_HOME/yavoy/yavoy.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "yavoy", "yavoy.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "yavoy", "yavoy.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "yavoy.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
