// Package manifest synthesizes the complete annotator topology and emits it
// as Kubernetes manifests.
//
// Synthesis is a single linear pass: the identity is resolved from the seeds,
// then every builder receives the identity plus the objects built before it.
// Nothing performs I/O, so running it twice with the same seeds yields the
// same bytes.
package manifest

import (
	"fmt"

	certmanagerv1 "github.com/cert-manager/cert-manager/pkg/apis/certmanager/v1"
	"github.com/sierrasoftworks/humane-errors-go"
	admissionregistrationv1 "k8s.io/api/admissionregistration/v1"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/spechtlabs/nba/pkg/admission"
	"github.com/spechtlabs/nba/pkg/identity"
	"github.com/spechtlabs/nba/pkg/trust"
	"github.com/spechtlabs/nba/pkg/workload"
)

// Graph is the fully wired resource set.
type Graph struct {
	Namespace   *corev1.Namespace
	Issuer      *certmanagerv1.ClusterIssuer
	Certificate *certmanagerv1.Certificate
	Deployment  *appsv1.Deployment
	Service     *corev1.Service
	Webhook     *admissionregistrationv1.MutatingWebhookConfiguration
}

// Synthesize resolves the seeds and builds the graph. Invalid seeds fail
// before any object is built.
func Synthesize(seeds identity.Seeds) (*Graph, humane.Error) {
	id, err := identity.Resolve(seeds)
	if err != nil {
		return nil, humane.Wrap(err, "failed to synthesize manifests", "fix the reported seed values and run again")
	}

	return Build(id), nil
}

// Build wires the graph for an already resolved identity.
func Build(id identity.Identity) *Graph {
	ns := NewNamespace(id)
	issuer := trust.NewClusterIssuer()
	cert := trust.NewCertificate(id, issuer)
	deployment := workload.NewDeployment(id, cert)
	svc := workload.NewService(id, deployment)
	webhook := admission.NewMutatingWebhookConfiguration(id, cert, svc)

	return &Graph{
		Namespace:   ns,
		Issuer:      issuer,
		Certificate: cert,
		Deployment:  deployment,
		Service:     svc,
		Webhook:     webhook,
	}
}

// Objects returns the resources in apply order: the namespace first, then the
// trust chain, the workload and finally the webhook registration.
func (g *Graph) Objects() []client.Object {
	return []client.Object{
		g.Namespace,
		g.Issuer,
		g.Certificate,
		g.Deployment,
		g.Service,
		g.Webhook,
	}
}

// Ref formats an object as Kind namespace/name for logs and CLI output.
func Ref(obj client.Object) string {
	kind := obj.GetObjectKind().GroupVersionKind().Kind
	if obj.GetNamespace() == "" {
		return fmt.Sprintf("%s %s", kind, obj.GetName())
	}
	return fmt.Sprintf("%s %s/%s", kind, obj.GetNamespace(), obj.GetName())
}
