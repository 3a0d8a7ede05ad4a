// Package config loads tool defaults from an optional config file and the
// environment so operators do not retype instance and server values on
// every invocation. CLI flags always override these defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the site defaults shared by every tool.
type Config struct {
	User     string // default scheduler username
	Instance string // default instance identifier
	Server   string // default application server address

	// External command overrides for site-local wrapper scripts.
	Autorep    string
	Autosyslog string
}

// Load reads cfgFile when given, otherwise looks for .aetools.yaml in the
// home directory and the working directory. AETOOLS_* environment variables
// override file values. A missing default config file is not an error; a
// malformed or explicitly named but unreadable one is. Passwords are never
// read from configuration.
func Load(cfgFile string) (Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".aetools")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("AETOOLS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Config{
		User:       v.GetString("user"),
		Instance:   v.GetString("instance"),
		Server:     v.GetString("server"),
		Autorep:    v.GetString("autorep"),
		Autosyslog: v.GetString("autosyslog"),
	}, nil
}
