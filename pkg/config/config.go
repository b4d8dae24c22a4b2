/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/RespectNoodles/HelpBox/internal/schema"
	"github.com/RespectNoodles/HelpBox/pkg/logger"
	"github.com/RespectNoodles/HelpBox/pkg/tools"
	"github.com/spf13/viper"
)

// EnvRoot overrides deployment root discovery.
const EnvRoot = "TOOLBOX_ROOT"

// Config holds the operator-level settings read from .config/toolbox.json
type Config struct {
	Prefix  string `mapstructure:"prefix"`
	Color   bool   `mapstructure:"color"`
	Verbose bool   `mapstructure:"verbose"`
}

var defaultConfig = Config{
	Prefix:  "./.tools",
	Color:   true,
	Verbose: false,
}

// Default returns the built-in configuration.
func Default() Config {
	return defaultConfig
}

// Paths are the well-known files below a deployment root.
type Paths struct {
	Root      string
	Registry  string
	Presets   string
	Config    string
	ShellInit string
}

// NewPaths lays out the deployment files under root.
func NewPaths(root string) Paths {
	return Paths{
		Root:      root,
		Registry:  filepath.Join(root, "tools", "registry.json"),
		Presets:   filepath.Join(root, "tools", "presets.json"),
		Config:    filepath.Join(root, ".config", "toolbox.json"),
		ShellInit: filepath.Join(root, "shell", "init.sh"),
	}
}

// FindRoot resolves the deployment root: TOOLBOX_ROOT when set, otherwise the
// nearest ancestor of the working directory holding tools/registry.json,
// otherwise the working directory itself.
func FindRoot() (string, error) {
	return FindRootWith(tools.HostEnviron())
}

// FindRootWith is FindRoot reading TOOLBOX_ROOT from environ.
func FindRootWith(environ []string) (string, error) {
	root, _ := tools.LookupEnv(environ, EnvRoot)
	if root = strings.TrimSpace(root); root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", EnvRoot, err)
		}
		logger.Debug("deployment root from environment", logger.String("root", abs))
		return abs, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return FindRootFrom(cwd), nil
}

// FindRootFrom walks up from start looking for tools/registry.json.
func FindRootFrom(start string) string {
	dir := filepath.Clean(start)
	for {
		if st, err := os.Stat(filepath.Join(dir, "tools", "registry.json")); err == nil && !st.IsDir() {
			logger.Debug("deployment root discovered", logger.String("root", dir))
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	logger.Debug("no registry found above working directory, using it as root", logger.String("root", start))
	return filepath.Clean(start)
}

// LoadConfig reads configuration for the deployment described by paths.
// Sources in increasing precedence: defaults, the config file, TOOLBOX_*
// environment variables. An explicit file must exist; the default
// .config/toolbox.json is optional. It returns the file actually used, if any.
func LoadConfig(paths Paths, explicit string) (*Config, string, error) {
	v := viper.New()

	v.SetDefault("prefix", defaultConfig.Prefix)
	v.SetDefault("color", defaultConfig.Color)
	v.SetDefault("verbose", defaultConfig.Verbose)

	switch {
	case explicit != "":
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config %s: %w", explicit, err)
		}
	case paths.Config != "":
		if _, err := os.Stat(paths.Config); err == nil {
			v.SetConfigFile(paths.Config)
			v.SetConfigType("json")
			if err := v.ReadInConfig(); err != nil {
				return nil, "", fmt.Errorf("failed to read config %s: %w", paths.Config, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("failed to stat config %s: %w", paths.Config, err)
		}
	}

	if v.ConfigFileUsed() != "" {
		if err := validateSettings(v.ConfigFileUsed(), v.AllSettings()); err != nil {
			return nil, "", err
		}
	}

	// Environment binds after validation so TOOLBOX_* strings are not schema-checked.
	v.SetEnvPrefix("TOOLBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("error unmarshaling config: %w", err)
	}
	if strings.TrimSpace(cfg.Prefix) == "" {
		cfg.Prefix = defaultConfig.Prefix
	}

	used := v.ConfigFileUsed()
	logger.Debug("configuration loaded",
		logger.String("file", used),
		logger.String("prefix", cfg.Prefix),
		logger.Bool("color", cfg.Color))
	return &cfg, used, nil
}

func validateSettings(file string, settings map[string]interface{}) error {
	res, err := schema.Validate(settings, schema.Config)
	if err != nil {
		return fmt.Errorf("failed to validate config %s: %w", file, err)
	}
	if res.Valid {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors))
	for _, e := range res.Errors {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("invalid config %s: %s", file, strings.Join(msgs, "; "))
}
