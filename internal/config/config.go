package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/read-lnk/read-lnk/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the CLI.
const (
	KeyOutput = "output"
	KeyDebug  = "debug"
)

// Settings is the resolved view of the config file and environment.
type Settings struct {
	Output string
	Debug  bool
}

// Dir returns the path to the config directory (~/.read-lnk/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.read-lnk/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// New returns a Viper instance reading from path, the environment, and any
// flags in fs named after a config key. Precedence is flag, env, file,
// default. A missing config file is not an error; a malformed one is.
func New(path string, fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	v.SetDefault(KeyOutput, "text")
	v.SetDefault(KeyDebug, false)

	if fs != nil {
		for _, key := range []string{KeyOutput, KeyDebug} {
			if f := fs.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", key, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	return v, nil
}

// LoadFrom reads the config file at path, the environment, and flags in fs
// into Settings.
func LoadFrom(path string, fs *pflag.FlagSet) (Settings, error) {
	v, err := New(path, fs)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Output: v.GetString(KeyOutput),
		Debug:  v.GetBool(KeyDebug),
	}, nil
}
