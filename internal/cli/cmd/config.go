package cmd

import (
	"os"
	"strings"

	"github.com/sierrasoftworks/humane-errors-go"
	"github.com/spf13/viper"

	"github.com/spechtlabs/nba/internal/cli/pretty_print"
)

func initConfig() {
	if err := readConfig(viper.GetViper(), configFileName); err != nil {
		pretty_print.PrintError(os.Stderr, err)
		os.Exit(2)
	}
}

// readConfig points v at configFile, or at the default search paths when it is
// empty, and loads it. A missing default config file is not an error.
func readConfig(v *viper.Viper, configFile string) humane.Error {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.config/nba/")
		v.AddConfigPath("/etc/nba/")
	}

	v.SetEnvPrefix("NBA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return nil
		}
		return humane.Wrap(err, "failed to read config file",
			"check the file is valid YAML with identity.*, certificate.*, output.* and otel.* keys",
			"pass a different file with --config, or remove it to use the defaults",
		)
	}

	return nil
}
