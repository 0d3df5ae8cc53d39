package manifest

import (
	"fmt"
	"maps"
	"path"
	"strings"

	"github.com/sierrasoftworks/humane-errors-go"
	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/spechtlabs/nba/pkg/admission"
	"github.com/spechtlabs/nba/pkg/trust"
	"github.com/spechtlabs/nba/pkg/workload"
)

// Validate checks the cross references between the graph's objects. A graph
// returned by Build always passes; a graph edited by hand may not.
func (g *Graph) Validate() humane.Error {
	if g == nil || g.Namespace == nil || g.Issuer == nil || g.Certificate == nil ||
		g.Deployment == nil || g.Service == nil || g.Webhook == nil {
		return humane.New("incomplete resource graph", "build the graph with manifest.Synthesize or manifest.Build")
	}

	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	ns := g.Namespace.Name
	for _, obj := range []client.Object{g.Certificate, g.Deployment, g.Service, g.Webhook} {
		check(obj.GetNamespace() == ns, "%s is in namespace %q, expected %q", obj.GetName(), obj.GetNamespace(), ns)
	}

	cert := g.Certificate
	check(cert.Spec.IssuerRef.Name == g.Issuer.Name, "certificate issuerRef %q does not name issuer %q", cert.Spec.IssuerRef.Name, g.Issuer.Name)
	check(cert.Spec.IssuerRef.Kind == g.Issuer.Kind, "certificate issuerRef kind %q does not match issuer kind %q", cert.Spec.IssuerRef.Kind, g.Issuer.Kind)

	svcHost := fmt.Sprintf("%s.%s.svc", g.Service.Name, g.Service.Namespace)
	check(len(cert.Spec.DNSNames) == 2 &&
		cert.Spec.DNSNames[0] == svcHost &&
		strings.HasPrefix(cert.Spec.DNSNames[1], svcHost+"."),
		"certificate dnsNames %v do not match service host %q", cert.Spec.DNSNames, svcHost)

	problems = append(problems, g.validateWorkload()...)
	problems = append(problems, g.validateWebhook(svcHost)...)

	if len(problems) > 0 {
		return humane.New(
			fmt.Sprintf("inconsistent resource graph: %s", strings.Join(problems, "; ")),
			"objects that reference each other must be derived from the same identity",
		)
	}

	return nil
}

func (g *Graph) validateWorkload() []string {
	var problems []string
	d := g.Deployment

	if d.Spec.Selector == nil || !maps.Equal(d.Spec.Selector.MatchLabels, d.Spec.Template.Labels) {
		problems = append(problems, "deployment selector does not match pod labels")
	}
	if !maps.Equal(g.Service.Spec.Selector, d.Spec.Template.Labels) {
		problems = append(problems, "service selector does not match pod labels")
	}

	containers := d.Spec.Template.Spec.Containers
	if len(containers) != 1 {
		return append(problems, fmt.Sprintf("deployment must run exactly one container, has %d", len(containers)))
	}
	c := containers[0]

	var secretVolume *corev1.Volume
	for i := range d.Spec.Template.Spec.Volumes {
		if v := &d.Spec.Template.Spec.Volumes[i]; v.Name == workload.CertVolumeName {
			secretVolume = v
		}
	}
	if secretVolume == nil || secretVolume.Secret == nil || secretVolume.Secret.SecretName != g.Certificate.Spec.SecretName {
		problems = append(problems, fmt.Sprintf("deployment does not mount certificate secret %q", g.Certificate.Spec.SecretName))
	}

	var mountPath string
	for _, m := range c.VolumeMounts {
		if m.Name == workload.CertVolumeName {
			mountPath = m.MountPath
		}
	}
	for _, e := range c.Env {
		if e.Name == workload.EnvTLSCertFile || e.Name == workload.EnvTLSKeyFile {
			if path.Dir(e.Value) != mountPath {
				problems = append(problems, fmt.Sprintf("%s=%s is outside mount path %q", e.Name, e.Value, mountPath))
			}
		}
	}

	containerPort := workload.ContainerPort(d)
	var servicePort int32
	for _, p := range g.Service.Spec.Ports {
		if p.Name == workload.PortName {
			servicePort = p.Port
		}
	}
	if containerPort == 0 || containerPort != servicePort {
		problems = append(problems, fmt.Sprintf("service port %d does not match container port %d", servicePort, containerPort))
	}

	return problems
}

func (g *Graph) validateWebhook(svcHost string) []string {
	var problems []string
	mwc := g.Webhook

	if want := trust.InjectCAFrom(g.Certificate); mwc.Annotations[admission.InjectCAFromAnnotation] != want {
		problems = append(problems, fmt.Sprintf("webhook CA injection annotation is %q, expected %q",
			mwc.Annotations[admission.InjectCAFromAnnotation], want))
	}

	for _, wh := range mwc.Webhooks {
		ref := wh.ClientConfig.Service
		if ref == nil {
			problems = append(problems, fmt.Sprintf("webhook %s has no service reference", wh.Name))
			continue
		}
		if ref.Name != g.Service.Name || ref.Namespace != g.Service.Namespace {
			problems = append(problems, fmt.Sprintf("webhook %s routes to %s/%s, expected %s/%s",
				wh.Name, ref.Namespace, ref.Name, g.Service.Namespace, g.Service.Name))
		}
		if ref.Port == nil || *ref.Port != workload.ContainerPort(g.Deployment) {
			problems = append(problems, fmt.Sprintf("webhook %s does not call the service https port", wh.Name))
		}
		if wh.Name != svcHost {
			problems = append(problems, fmt.Sprintf("webhook name %q does not match service host %q", wh.Name, svcHost))
		}
	}

	return problems
}
