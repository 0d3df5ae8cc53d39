package cmd

import (
	"github.com/spf13/viper"

	"github.com/spechtlabs/nba/pkg/identity"
)

// SeedsFromConfig reads the identity seeds from flags, environment and config file.
func SeedsFromConfig() identity.Seeds {
	return identity.Seeds{
		Name:          viper.GetString("identity.name"),
		Namespace:     viper.GetString("identity.namespace"),
		SecretName:    viper.GetString("identity.secretName"),
		Port:          viper.GetInt32("identity.port"),
		Image:         viper.GetString("workload.image"),
		Organizations: viper.GetStringSlice("certificate.organizations"),
		ClusterDomain: viper.GetString("identity.clusterDomain"),
		EnableLabel:   viper.GetString("identity.enableLabel"),
	}
}
