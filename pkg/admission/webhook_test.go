package admission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	admissionregistrationv1 "k8s.io/api/admissionregistration/v1"
	corev1 "k8s.io/api/core/v1"

	certmanagerv1 "github.com/cert-manager/cert-manager/pkg/apis/certmanager/v1"

	"github.com/spechtlabs/nba/pkg/admission"
	"github.com/spechtlabs/nba/pkg/identity"
	"github.com/spechtlabs/nba/pkg/trust"
	"github.com/spechtlabs/nba/pkg/workload"
)

func buildChain(t *testing.T, seeds identity.Seeds) (identity.Identity, *certmanagerv1.Certificate, *corev1.Service) {
	t.Helper()
	id, err := identity.Resolve(seeds)
	require.Nil(t, err)
	cert := trust.NewCertificate(id, trust.NewClusterIssuer())
	svc := workload.NewService(id, workload.NewDeployment(id, cert))
	return id, cert, svc
}

func TestNewMutatingWebhookConfiguration(t *testing.T) {
	id, cert, svc := buildChain(t, identity.DefaultSeeds())

	mwc := admission.NewMutatingWebhookConfiguration(id, cert, svc)

	assert.Equal(t, "network-bandwidth-annotator", mwc.Name)
	assert.Equal(t, "nba", mwc.Namespace)
	assert.Equal(t, "nba/network-bandwidth-annotator", mwc.Annotations[admission.InjectCAFromAnnotation])
	assert.Equal(t, cert.Namespace+"/"+cert.Name, mwc.Annotations["cert-manager.io/inject-ca-from"])

	require.Len(t, mwc.Webhooks, 1)
	wh := mwc.Webhooks[0]
	assert.Equal(t, "network-bandwidth-annotator.nba.svc", wh.Name)

	require.NotNil(t, wh.ClientConfig.Service)
	assert.Equal(t, svc.Name, wh.ClientConfig.Service.Name)
	assert.Equal(t, svc.Namespace, wh.ClientConfig.Service.Namespace)
	require.NotNil(t, wh.ClientConfig.Service.Path)
	assert.Equal(t, "/mutate", *wh.ClientConfig.Service.Path)
	require.NotNil(t, wh.ClientConfig.Service.Port)
	assert.Equal(t, int32(8443), *wh.ClientConfig.Service.Port)
	assert.Equal(t, svc.Spec.Ports[0].Port, *wh.ClientConfig.Service.Port)
	assert.Empty(t, wh.ClientConfig.CABundle)
	assert.Nil(t, wh.ClientConfig.URL)

	require.NotNil(t, wh.NamespaceSelector)
	assert.Equal(t, map[string]string{"nba-enabled": "true"}, wh.NamespaceSelector.MatchLabels)

	require.NotNil(t, wh.FailurePolicy)
	assert.Equal(t, admissionregistrationv1.Ignore, *wh.FailurePolicy)
	require.NotNil(t, wh.TimeoutSeconds)
	assert.Equal(t, int32(5), *wh.TimeoutSeconds)
	require.NotNil(t, wh.SideEffects)
	assert.Equal(t, admissionregistrationv1.SideEffectClassNone, *wh.SideEffects)
	assert.Equal(t, []string{"v1", "v1beta1"}, wh.AdmissionReviewVersions)
}

func TestPodRules(t *testing.T) {
	rules := admission.PodRules()
	require.Len(t, rules, 1)

	r := rules[0]
	assert.Equal(t, []admissionregistrationv1.OperationType{admissionregistrationv1.Create, admissionregistrationv1.Update}, r.Operations)
	assert.Equal(t, []string{""}, r.APIGroups)
	assert.Equal(t, []string{"v1"}, r.APIVersions)
	assert.Equal(t, []string{"pods"}, r.Resources)
	require.NotNil(t, r.Scope)
	assert.Equal(t, admissionregistrationv1.NamespacedScope, *r.Scope)
}

func TestWebhookFollowsSeeds(t *testing.T) {
	seeds := identity.DefaultSeeds()
	seeds.Name = "bw"
	seeds.Namespace = "net"
	seeds.Port = 9443
	seeds.EnableLabel = "example.com/bw-enabled"

	id, cert, svc := buildChain(t, seeds)
	mwc := admission.NewMutatingWebhookConfiguration(id, cert, svc)
	wh := mwc.Webhooks[0]

	assert.Equal(t, "net/bw", mwc.Annotations[admission.InjectCAFromAnnotation])
	assert.Equal(t, "bw.net.svc", wh.Name)
	assert.Equal(t, int32(9443), *wh.ClientConfig.Service.Port)
	assert.Equal(t, map[string]string{"example.com/bw-enabled": "true"}, wh.NamespaceSelector.MatchLabels)
}

func TestNewServiceReferenceWithoutHTTPSPort(t *testing.T) {
	svc := &corev1.Service{}
	svc.Name = "x"
	svc.Namespace = "y"

	ref := admission.NewServiceReference(svc)
	assert.Equal(t, "x", ref.Name)
	assert.Equal(t, "y", ref.Namespace)
	assert.Nil(t, ref.Port)
}
