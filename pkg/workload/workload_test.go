package workload_test

import (
	"path"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"

	"github.com/spechtlabs/nba/pkg/identity"
	"github.com/spechtlabs/nba/pkg/trust"
	"github.com/spechtlabs/nba/pkg/workload"
)

func envValue(t *testing.T, c corev1.Container, name string) string {
	t.Helper()
	for _, e := range c.Env {
		if e.Name == name {
			return e.Value
		}
	}
	t.Fatalf("env var %s not set on container %s", name, c.Name)
	return ""
}

func TestNewDeployment(t *testing.T) {
	id, err := identity.Resolve(identity.DefaultSeeds())
	require.Nil(t, err)
	cert := trust.NewCertificate(id, trust.NewClusterIssuer())

	d := workload.NewDeployment(id, cert)

	assert.Equal(t, "network-bandwidth-annotator", d.Name)
	assert.Equal(t, "nba", d.Namespace)
	require.NotNil(t, d.Spec.Replicas)
	assert.Equal(t, int32(1), *d.Spec.Replicas)
	assert.Equal(t, d.Spec.Selector.MatchLabels, d.Spec.Template.Labels)
	assert.Equal(t, map[string]string{"app": "network-bandwidth-annotator"}, d.Spec.Template.Labels)

	require.Len(t, d.Spec.Template.Spec.Containers, 1)
	c := d.Spec.Template.Spec.Containers[0]
	assert.Equal(t, "network-bandwidth-annotator", c.Name)
	assert.Equal(t, identity.DefaultImage, c.Image)
	assert.Equal(t, []string{"./network-bandwidth-annotator", "-v"}, c.Command)
	require.Len(t, c.Ports, 1)
	assert.Equal(t, "https", c.Ports[0].Name)
	assert.Equal(t, int32(8443), c.Ports[0].ContainerPort)

	assert.Equal(t, "0.0.0.0:8443", envValue(t, c, workload.EnvAddr))
	assert.Equal(t, "/certs/tls.crt", envValue(t, c, workload.EnvTLSCertFile))
	assert.Equal(t, "/certs/tls.key", envValue(t, c, workload.EnvTLSKeyFile))

	require.Len(t, d.Spec.Template.Spec.Volumes, 1)
	vol := d.Spec.Template.Spec.Volumes[0]
	require.NotNil(t, vol.Secret)
	assert.Equal(t, cert.Spec.SecretName, vol.Secret.SecretName)
	assert.Equal(t, "tls-network-bandwidth-annotator", vol.Secret.SecretName)

	require.Len(t, c.VolumeMounts, 1)
	assert.Equal(t, vol.Name, c.VolumeMounts[0].Name)
	assert.True(t, c.VolumeMounts[0].ReadOnly)
}

func TestMountPathMatchesCertEnv(t *testing.T) {
	id, err := identity.Resolve(identity.DefaultSeeds())
	require.Nil(t, err)
	d := workload.NewDeployment(id, trust.NewCertificate(id, trust.NewClusterIssuer()))
	c := d.Spec.Template.Spec.Containers[0]

	mount := c.VolumeMounts[0].MountPath
	assert.Equal(t, mount, path.Dir(envValue(t, c, workload.EnvTLSCertFile)))
	assert.Equal(t, mount, path.Dir(envValue(t, c, workload.EnvTLSKeyFile)))
}

func TestNoProbesOrResources(t *testing.T) {
	id, err := identity.Resolve(identity.DefaultSeeds())
	require.Nil(t, err)
	d := workload.NewDeployment(id, trust.NewCertificate(id, trust.NewClusterIssuer()))
	c := d.Spec.Template.Spec.Containers[0]

	assert.Nil(t, c.LivenessProbe)
	assert.Nil(t, c.ReadinessProbe)
	assert.Empty(t, c.Resources.Limits)
	assert.Empty(t, c.Resources.Requests)
	assert.Empty(t, d.Spec.Strategy.Type)
}

func TestNewService(t *testing.T) {
	id, err := identity.Resolve(identity.DefaultSeeds())
	require.Nil(t, err)
	d := workload.NewDeployment(id, trust.NewCertificate(id, trust.NewClusterIssuer()))

	svc := workload.NewService(id, d)

	assert.Equal(t, "network-bandwidth-annotator", svc.Name)
	assert.Equal(t, "nba", svc.Namespace)
	if diff := cmp.Diff(d.Spec.Template.Labels, svc.Spec.Selector); diff != "" {
		t.Errorf("service selector differs from pod labels (-pod +svc):\n%s", diff)
	}
	require.Len(t, svc.Spec.Ports, 1)
	assert.Equal(t, "https", svc.Spec.Ports[0].Name)
	assert.Equal(t, int32(8443), svc.Spec.Ports[0].Port)
	assert.Equal(t, workload.ContainerPort(d), svc.Spec.Ports[0].Port)
	assert.Equal(t, "https", svc.Spec.Ports[0].TargetPort.String())

	// the selector is a copy, not an alias of the pod labels
	svc.Spec.Selector["app"] = "changed"
	assert.Equal(t, "network-bandwidth-annotator", d.Spec.Template.Labels["app"])
}

func TestSeedChangePropagates(t *testing.T) {
	seeds := identity.DefaultSeeds()
	seeds.SecretName = "rotated-tls"
	seeds.Port = 10443

	id, err := identity.Resolve(seeds)
	require.Nil(t, err)
	cert := trust.NewCertificate(id, trust.NewClusterIssuer())
	d := workload.NewDeployment(id, cert)
	svc := workload.NewService(id, d)

	assert.Equal(t, "rotated-tls", cert.Spec.SecretName)
	assert.Equal(t, "rotated-tls", d.Spec.Template.Spec.Volumes[0].Secret.SecretName)
	assert.Equal(t, int32(10443), workload.ContainerPort(d))
	assert.Equal(t, int32(10443), svc.Spec.Ports[0].Port)
}

func TestContainerPortMissing(t *testing.T) {
	id, err := identity.Resolve(identity.DefaultSeeds())
	require.Nil(t, err)
	d := workload.NewDeployment(id, trust.NewCertificate(id, trust.NewClusterIssuer()))
	d.Spec.Template.Spec.Containers[0].Ports = nil

	assert.Zero(t, workload.ContainerPort(d))
}
