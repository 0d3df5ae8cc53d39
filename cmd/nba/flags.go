package main

import (
	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func bindFlag(c *cobra.Command, key, name string) {
	if err := viper.BindPFlag(key, c.Flags().Lookup(name)); err != nil {
		panic(humane.Wrap(err, "fatal binding flag", "check that the flag name matches the viper key")) //nolint:nopanic // flag binding errors are programming errors
	}
}
