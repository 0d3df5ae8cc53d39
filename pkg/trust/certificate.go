package trust

import (
	"fmt"

	certmanagerv1 "github.com/cert-manager/cert-manager/pkg/apis/certmanager/v1"
	cmmeta "github.com/cert-manager/cert-manager/pkg/apis/meta/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/spechtlabs/nba/pkg/identity"
)

// NewCertificate creates the serving certificate request signed by issuer.
// Its DNS names are exactly the names the annotator's Service resolves to, and
// its SecretName is the secret the workload mounts.
func NewCertificate(id identity.Identity, issuer *certmanagerv1.ClusterIssuer) *certmanagerv1.Certificate {
	var subject *certmanagerv1.X509Subject
	if orgs := id.Organizations(); len(orgs) > 0 {
		subject = &certmanagerv1.X509Subject{Organizations: orgs}
	}

	return &certmanagerv1.Certificate{
		TypeMeta: metav1.TypeMeta{
			APIVersion: certmanagerv1.SchemeGroupVersion.String(),
			Kind:       certmanagerv1.CertificateKind,
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      id.Name(),
			Namespace: id.Namespace(),
		},
		Spec: certmanagerv1.CertificateSpec{
			SecretName:  id.SecretName(),
			Duration:    &metav1.Duration{Duration: Duration},
			RenewBefore: &metav1.Duration{Duration: RenewBefore},
			Subject:     subject,
			IsCA:        false,
			PrivateKey: &certmanagerv1.CertificatePrivateKey{
				Algorithm: KeyAlgorithm,
				Encoding:  KeyEncoding,
				Size:      KeySize,
			},
			Usages:   Usages(),
			DNSNames: id.DNSNames(),
			IssuerRef: cmmeta.ObjectReference{
				Name: issuer.Name,
				Kind: issuer.Kind,
			},
		},
	}
}

// InjectCAFrom returns the <namespace>/<name> reference the CA injector uses to
// find the certificate whose CA it copies into a webhook configuration.
func InjectCAFrom(cert *certmanagerv1.Certificate) string {
	return fmt.Sprintf("%s/%s", cert.Namespace, cert.Name)
}
