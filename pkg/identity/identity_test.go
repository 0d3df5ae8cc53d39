package identity_test

import (
	"testing"

	"github.com/spechtlabs/nba/pkg/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	id, err := identity.Resolve(identity.DefaultSeeds())
	require.Nil(t, err)

	assert.Equal(t, "network-bandwidth-annotator", id.Name())
	assert.Equal(t, "nba", id.Namespace())
	assert.Equal(t, "tls-network-bandwidth-annotator", id.SecretName())
	assert.Equal(t, int32(8443), id.Port())
	assert.Equal(t, []string{
		"network-bandwidth-annotator.nba.svc",
		"network-bandwidth-annotator.nba.svc.cluster.local",
	}, id.DNSNames())
	assert.Equal(t, map[string]string{"app": "network-bandwidth-annotator"}, id.Labels())
	assert.Equal(t, "0.0.0.0:8443", id.ListenAddr())
	assert.Equal(t, "/certs", id.CertDir())
	assert.Equal(t, "/certs/tls.crt", id.CertFile())
	assert.Equal(t, "/certs/tls.key", id.KeyFile())
	assert.Equal(t, "nba-enabled", id.EnableLabel())
	assert.Equal(t, []string{"Thomas Kosiewski"}, id.Organizations())
}

func TestResolveDerivesFromSeeds(t *testing.T) {
	seeds := identity.DefaultSeeds()
	seeds.Name = "annotator"
	seeds.Namespace = "infra"
	seeds.Port = 9443
	seeds.ClusterDomain = "example.internal"

	id, err := identity.Resolve(seeds)
	require.Nil(t, err)

	assert.Equal(t, []string{"annotator.infra.svc", "annotator.infra.svc.example.internal"}, id.DNSNames())
	assert.Equal(t, "annotator.infra.svc", id.ServiceHost())
	assert.Equal(t, "0.0.0.0:9443", id.ListenAddr())
	assert.Equal(t, map[string]string{"app": "annotator"}, id.Labels())
}

func TestIdentityHandsOutCopies(t *testing.T) {
	seeds := identity.DefaultSeeds()
	id, err := identity.Resolve(seeds)
	require.Nil(t, err)

	// mutating the caller's seeds after resolution must not leak in
	seeds.Organizations[0] = "changed"
	assert.Equal(t, []string{"Thomas Kosiewski"}, id.Organizations())

	labels := id.Labels()
	labels["app"] = "other"
	assert.Equal(t, "network-bandwidth-annotator", id.Labels()["app"])

	orgs := id.Organizations()
	orgs[0] = "other"
	assert.Equal(t, "Thomas Kosiewski", id.Organizations()[0])

	dns := id.DNSNames()
	dns[0] = "other"
	assert.Equal(t, "network-bandwidth-annotator.nba.svc", id.DNSNames()[0])
}

func TestResolveRejectsInvalidSeeds(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *identity.Seeds)
		wantMsg string
	}{
		{
			name:    "uppercase_name",
			mutate:  func(s *identity.Seeds) { s.Name = "Annotator" },
			wantMsg: "name:",
		},
		{
			name:    "name_starting_with_digit",
			mutate:  func(s *identity.Seeds) { s.Name = "1annotator" },
			wantMsg: "name:",
		},
		{
			name:    "empty_namespace",
			mutate:  func(s *identity.Seeds) { s.Namespace = "" },
			wantMsg: "namespace:",
		},
		{
			name:    "secret_with_underscore",
			mutate:  func(s *identity.Seeds) { s.SecretName = "tls_secret" },
			wantMsg: "secretName:",
		},
		{
			name:    "port_out_of_range",
			mutate:  func(s *identity.Seeds) { s.Port = 70000 },
			wantMsg: "port:",
		},
		{
			name:    "zero_port",
			mutate:  func(s *identity.Seeds) { s.Port = 0 },
			wantMsg: "port:",
		},
		{
			name:    "empty_image",
			mutate:  func(s *identity.Seeds) { s.Image = " " },
			wantMsg: "image:",
		},
		{
			name:    "bad_enable_label",
			mutate:  func(s *identity.Seeds) { s.EnableLabel = "nba enabled" },
			wantMsg: "enableLabel:",
		},
		{
			name:    "bad_cluster_domain",
			mutate:  func(s *identity.Seeds) { s.ClusterDomain = "Cluster.Local" },
			wantMsg: "clusterDomain:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seeds := identity.DefaultSeeds()
			tt.mutate(&seeds)

			_, err := identity.Resolve(seeds)
			require.NotNil(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.NotEmpty(t, err.Advice())
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	seeds := identity.DefaultSeeds()
	seeds.Name = "BAD"
	seeds.Namespace = "ALSO_BAD"

	err := seeds.Validate()
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "name:")
	assert.Contains(t, err.Error(), "namespace:")
}
