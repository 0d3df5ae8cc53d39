package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spechtlabs/nba/internal/cli/pretty_print"
)

func NewRootCmd() *cobra.Command {
	cobra.OnInitialize(initConfig)

	cmdRoot := &cobra.Command{
		Use:   "nba [--config|-c <string>] [--debug] [--theme|-t <string>]",
		Short: "nba synthesizes the deployment manifests of the network-bandwidth-annotator",
		Long: `nba derives the complete deployment topology of the network-bandwidth-annotator
admission webhook from a handful of identity values: the namespace, a self-signed
cert-manager issuer and certificate, the Deployment and Service, and the
MutatingWebhookConfiguration. Every cross reference between those objects is
derived from the same values, so they always agree.

Identity values can be set with flags, the config file or environment variables
prefixed with NBA_ (e.g. NBA_IDENTITY_NAMESPACE).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			theme := viper.GetString("output.theme")
			if !slices.Contains(pretty_print.AllThemeNames(), theme) {
				viper.Set("output.theme", string(pretty_print.TokyoNightStyle))
				return fmt.Errorf("invalid theme: %s", theme)
			}
			return nil
		},
	}

	addCommonFlags(cmdRoot)
	addIdentityFlags(cmdRoot)

	cmdRoot.AddCommand(newVersionCmd())

	errPrefix := pretty_print.FormatWithOptions(pretty_print.ErrLvl, "Error:", []string{}, pretty_print.WithoutNewline())
	cmdRoot.SetErrPrefix(errPrefix)

	return cmdRoot
}
