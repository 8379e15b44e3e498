// Package env fills unset command flags from environment variables and config files.
package env

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Prefix of environment variables, e.g. BNFRULE_FORMAT sets --format flag.
const Prefix = "bnfrule"

const errorMessagePrefix = "error mapping configuration to command flags"

// ApplyConfig sets flags that were not given on the command line.
// Values are taken from environment variables first, then from configFile if it is not empty.
// Config file keys are flag names; file format is detected by extension (YAML, TOML, JSON, etc.).
func ApplyConfig(command *cobra.Command, configFile string) error {
	v := viper.New()
	v.SetEnvPrefix(Prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if e := v.ReadInConfig(); e != nil {
			return fmt.Errorf("%s: %w", errorMessagePrefix, e)
		}
	}

	var errs []string
	command.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}

		var e error
		val := v.Get(f.Name)
		if list, isList := val.([]any); isList {
			for _, item := range list {
				if e == nil {
					e = command.Flags().Set(f.Name, fmt.Sprintf("%v", item))
				}
			}
		} else {
			e = command.Flags().Set(f.Name, fmt.Sprintf("%v", val))
		}
		if e != nil {
			errs = append(errs, e.Error())
		}
	})

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%s: %s", errorMessagePrefix, strings.Join(errs, "; "))
}
