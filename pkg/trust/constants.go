package trust

import (
	"time"

	certmanagerv1 "github.com/cert-manager/cert-manager/pkg/apis/certmanager/v1"
)

// Issuance policy for the annotator's serving certificate. None of it is configurable.
const (
	// IssuerName is the name of the self-signed ClusterIssuer.
	IssuerName = "selfsigned-issuer"

	KeyAlgorithm = certmanagerv1.RSAKeyAlgorithm
	KeyEncoding  = certmanagerv1.PKCS1
	KeySize      = 2048

	// Duration is the certificate validity (90 days).
	Duration = 2160 * time.Hour
	// RenewBefore leaves the certificate controller 15 days to renew before expiry.
	RenewBefore = 360 * time.Hour
)

// Usages the serving certificate is issued for.
func Usages() []certmanagerv1.KeyUsage {
	return []certmanagerv1.KeyUsage{
		certmanagerv1.UsageServerAuth,
		certmanagerv1.UsageClientAuth,
	}
}
