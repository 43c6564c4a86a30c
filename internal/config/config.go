// Package config resolves mazewalk CLI settings from flags, MAZEWALK_*
// environment variables and an optional config file, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key: --log-level reads MAZEWALK_LOG_LEVEL.
const EnvPrefix = "MAZEWALK"

// Keys shared by flags, environment and config file.
const (
	KeyLogLevel     = "log-level"
	KeyMarker       = "marker"
	KeyColor        = "color"
	KeyStrictBounds = "strict-bounds"
	KeyDump         = "dump"
)

// ErrInvalidMarker reports a marker that is not exactly one character.
var ErrInvalidMarker = errors.New("config: marker must be a single character")

// Config is the resolved CLI configuration.
type Config struct {
	LogLevel     string
	Marker       rune
	Color        bool
	StrictBounds bool
	Dump         bool
}

// Defaults returns the settings used when nothing else is set.
func Defaults() Config {
	return Config{
		LogLevel: "info",
		Marker:   '*',
	}
}

// NewViper returns a viper instance reading MAZEWALK_* variables and, when
// explicitPath is empty, a "config.{yaml,toml,json}" file from the search
// directories.
func NewViper(explicitPath string) *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyMarker, string(d.Marker))
	v.SetDefault(KeyColor, d.Color)
	v.SetDefault(KeyStrictBounds, d.StrictBounds)
	v.SetDefault(KeyDump, d.Dump)

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return v
	}
	v.SetConfigName("config")
	for _, dir := range SearchDirs() {
		v.AddConfigPath(dir)
	}

	return v
}

// SearchDirs lists the directories probed for a config file.
func SearchDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "mazewalk"))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, filepath.Join(home, ".config", "mazewalk"))
	}

	return dirs
}

// ReadFile loads the config file. A missing file is only an error when
// strict is set, i.e. when the user named the file explicitly.
func ReadFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && !strict {
			return nil
		}
		if !strict && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read: %w", err)
	}

	return nil
}

// Load binds fs to v and resolves the final Config.
func Load(v *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	marker := v.GetString(KeyMarker)
	if utf8.RuneCountInString(marker) != 1 {
		return Config{}, fmt.Errorf("%w: got %q", ErrInvalidMarker, marker)
	}
	r, _ := utf8.DecodeRuneInString(marker)

	return Config{
		LogLevel:     v.GetString(KeyLogLevel),
		Marker:       r,
		Color:        v.GetBool(KeyColor),
		StrictBounds: v.GetBool(KeyStrictBounds),
		Dump:         v.GetBool(KeyDump),
	}, nil
}
