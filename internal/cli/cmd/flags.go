package cmd

import (
	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spechtlabs/nba/internal/cli/pretty_print"
	"github.com/spechtlabs/nba/pkg/identity"
)

var configFileName string

func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(humane.Wrap(err, "fatal binding flag", "check that the flag name matches the viper key")) //nolint:nopanic // flag binding errors are programming errors
	}
}

func addCommonFlags(cmd *cobra.Command) {
	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.insecure", true)

	cmd.PersistentFlags().StringVarP(&configFileName, "config", "c", "", "Name of the config file")
	_ = cmd.RegisterFlagCompletionFunc("config", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "json"}, cobra.ShellCompDirectiveFilterFileExt
	})

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	viper.SetDefault("debug", false)
	bindFlag("debug", cmd.PersistentFlags().Lookup("debug"))

	cmd.PersistentFlags().StringP("theme", "t", string(pretty_print.TokyoNightStyle), "theme to use for the CLI")
	viper.SetDefault("output.theme", string(pretty_print.TokyoNightStyle))
	bindFlag("output.theme", cmd.PersistentFlags().Lookup("theme"))
	_ = cmd.RegisterFlagCompletionFunc("theme", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return pretty_print.AllThemeNames(), cobra.ShellCompDirectiveDefault
	})
}

// addIdentityFlags registers the seed values every manifest is derived from.
func addIdentityFlags(cmd *cobra.Command) {
	defaults := identity.DefaultSeeds()

	cmd.PersistentFlags().String("name", defaults.Name, "Name of the annotator service")
	viper.SetDefault("identity.name", defaults.Name)
	bindFlag("identity.name", cmd.PersistentFlags().Lookup("name"))

	cmd.PersistentFlags().StringP("namespace", "n", defaults.Namespace, "Namespace the annotator is deployed to")
	viper.SetDefault("identity.namespace", defaults.Namespace)
	bindFlag("identity.namespace", cmd.PersistentFlags().Lookup("namespace"))

	cmd.PersistentFlags().String("secret-name", defaults.SecretName, "Name of the TLS secret issued for the annotator")
	viper.SetDefault("identity.secretName", defaults.SecretName)
	bindFlag("identity.secretName", cmd.PersistentFlags().Lookup("secret-name"))

	cmd.PersistentFlags().Int32P("port", "p", defaults.Port, "HTTPS port the annotator listens on")
	viper.SetDefault("identity.port", defaults.Port)
	bindFlag("identity.port", cmd.PersistentFlags().Lookup("port"))

	cmd.PersistentFlags().String("image", defaults.Image, "Container image of the annotator")
	viper.SetDefault("workload.image", defaults.Image)
	bindFlag("workload.image", cmd.PersistentFlags().Lookup("image"))

	viper.SetDefault("identity.clusterDomain", defaults.ClusterDomain)
	viper.SetDefault("identity.enableLabel", defaults.EnableLabel)
	viper.SetDefault("certificate.organizations", defaults.Organizations)
}
