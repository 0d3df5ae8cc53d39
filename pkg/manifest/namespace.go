package manifest

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/spechtlabs/nba/pkg/identity"
)

// NewNamespace creates the namespace every namespaced resource of the graph lives in.
func NewNamespace(id identity.Identity) *corev1.Namespace {
	return &corev1.Namespace{
		TypeMeta: metav1.TypeMeta{
			APIVersion: corev1.SchemeGroupVersion.String(),
			Kind:       "Namespace",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: id.Namespace(),
		},
	}
}
