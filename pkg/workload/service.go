package workload

import (
	"maps"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/spechtlabs/nba/pkg/identity"
)

// NewService creates the Service selecting deployment's pods. Selector and port
// are read from the deployment so they cannot drift from what the pods carry.
func NewService(id identity.Identity, deployment *appsv1.Deployment) *corev1.Service {
	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			APIVersion: corev1.SchemeGroupVersion.String(),
			Kind:       "Service",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      id.Name(),
			Namespace: deployment.Namespace,
		},
		Spec: corev1.ServiceSpec{
			Selector: maps.Clone(deployment.Spec.Template.Labels),
			Ports: []corev1.ServicePort{
				{
					Name:       PortName,
					Port:       ContainerPort(deployment),
					TargetPort: intstr.FromString(PortName),
				},
			},
		},
	}
}
