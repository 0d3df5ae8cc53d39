// Package trust builds the certificate issuance chain for the annotator: a
// self-signed ClusterIssuer and the Certificate whose secret the workload mounts.
package trust

import (
	certmanagerv1 "github.com/cert-manager/cert-manager/pkg/apis/certmanager/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// NewClusterIssuer creates the cluster scoped self-signed issuer that signs the serving certificate.
func NewClusterIssuer() *certmanagerv1.ClusterIssuer {
	return &certmanagerv1.ClusterIssuer{
		TypeMeta: metav1.TypeMeta{
			APIVersion: certmanagerv1.SchemeGroupVersion.String(),
			Kind:       certmanagerv1.ClusterIssuerKind,
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: IssuerName,
		},
		Spec: certmanagerv1.IssuerSpec{
			IssuerConfig: certmanagerv1.IssuerConfig{
				SelfSigned: &certmanagerv1.SelfSignedIssuer{},
			},
		},
	}
}
