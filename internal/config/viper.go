package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix     = "RACETIMEOUT"
	EnvConfigFile = EnvPrefix + "_CONFIG"
)

// Bind fills every flag of cmd that was not set on the command line from the
// environment or the config file. An explicit configFile (or
// RACETIMEOUT_CONFIG) must exist; otherwise a missing config.* is ignored.
func Bind(cmd *cobra.Command, configFile string) error {
	if configFile == "" {
		configFile = os.Getenv(EnvConfigFile)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	configureConfigFile(v, configFile)

	fs := cmd.Flags()
	if err := v.BindPFlags(fs); err != nil {
		return pkgerrors.Wrap(err, "bind flags")
	}

	if err := readConfigFile(v, configFile != ""); err != nil {
		return pkgerrors.Wrapf(err, "read config %s", v.ConfigFileUsed())
	}

	var setErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) || setErr != nil {
			return
		}
		val := fmt.Sprintf("%v", v.Get(f.Name))
		if val == "" {
			return
		}
		if err := f.Value.Set(val); err != nil {
			setErr = pkgerrors.Wrapf(err, "invalid value %q for %s", val, f.Name)
		}
	})
	return setErr
}

func configureConfigFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName("config")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(dir + "/racetimeout")
	}
}

func readConfigFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if errors.As(err, &cfgErr) && !strict {
			return nil
		}
		return err
	}
	return nil
}
