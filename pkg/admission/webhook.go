// Package admission registers the annotator as a mutating admission webhook
// for pods in namespaces that opted in.
package admission

import (
	certmanagerv1 "github.com/cert-manager/cert-manager/pkg/apis/certmanager/v1"
	admissionregistrationv1 "k8s.io/api/admissionregistration/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/spechtlabs/nba/pkg/identity"
	"github.com/spechtlabs/nba/pkg/trust"
	"github.com/spechtlabs/nba/pkg/workload"
)

// NewMutatingWebhookConfiguration creates the webhook registration. The CA
// injection annotation points at cert and the client config routes to svc.
func NewMutatingWebhookConfiguration(
	id identity.Identity,
	cert *certmanagerv1.Certificate,
	svc *corev1.Service,
) *admissionregistrationv1.MutatingWebhookConfiguration {
	return &admissionregistrationv1.MutatingWebhookConfiguration{
		TypeMeta: metav1.TypeMeta{
			APIVersion: admissionregistrationv1.SchemeGroupVersion.String(),
			Kind:       "MutatingWebhookConfiguration",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      id.Name(),
			Namespace: id.Namespace(),
			Annotations: map[string]string{
				InjectCAFromAnnotation: trust.InjectCAFrom(cert),
			},
		},
		Webhooks: []admissionregistrationv1.MutatingWebhook{
			{
				Name: id.ServiceHost(),
				ClientConfig: admissionregistrationv1.WebhookClientConfig{
					Service: NewServiceReference(svc),
				},
				NamespaceSelector: &metav1.LabelSelector{
					MatchLabels: map[string]string{
						id.EnableLabel(): EnableLabelValue,
					},
				},
				Rules:                   PodRules(),
				FailurePolicy:           ptr.To(FailurePolicy),
				AdmissionReviewVersions: AdmissionReviewVersions(),
				SideEffects:             ptr.To(SideEffects),
				TimeoutSeconds:          ptr.To(TimeoutSeconds),
			},
		},
	}
}

// NewServiceReference routes admission calls to the https port of svc.
func NewServiceReference(svc *corev1.Service) *admissionregistrationv1.ServiceReference {
	ref := &admissionregistrationv1.ServiceReference{
		Name:      svc.Name,
		Namespace: svc.Namespace,
		Path:      ptr.To(MutatePath),
	}

	for _, p := range svc.Spec.Ports {
		if p.Name == workload.PortName {
			ref.Port = ptr.To(p.Port)
			break
		}
	}

	return ref
}

// PodRules match pod creation and update in the core API group.
func PodRules() []admissionregistrationv1.RuleWithOperations {
	return []admissionregistrationv1.RuleWithOperations{
		{
			Operations: []admissionregistrationv1.OperationType{
				admissionregistrationv1.Create,
				admissionregistrationv1.Update,
			},
			Rule: admissionregistrationv1.Rule{
				APIGroups:   []string{""},
				APIVersions: []string{"v1"},
				Resources:   []string{"pods"},
				Scope:       ptr.To(admissionregistrationv1.NamespacedScope),
			},
		},
	}
}
