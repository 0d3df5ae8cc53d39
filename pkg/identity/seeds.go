package identity

import (
	"fmt"
	"strings"

	"github.com/sierrasoftworks/humane-errors-go"
	"k8s.io/apimachinery/pkg/util/validation"
)

// Seeds are the few values every other identifier in the topology is derived from.
type Seeds struct {
	// Name is the service name. It doubles as the Deployment, Service, Certificate
	// and webhook configuration name.
	Name string
	// Namespace all namespaced resources are placed in.
	Namespace string
	// SecretName is the TLS secret the certificate controller populates and the workload mounts.
	SecretName string
	// Port the annotator listens on, exposed by the Service and called by the API server.
	Port int32
	// Image of the annotator container.
	Image string
	// Organizations end up in the certificate subject.
	Organizations []string
	// ClusterDomain is the suffix of the fully qualified service DNS name.
	ClusterDomain string
	// EnableLabel is the namespace label key that opts a namespace into mutation.
	EnableLabel string
}

func DefaultSeeds() Seeds {
	return Seeds{
		Name:          DefaultName,
		Namespace:     DefaultNamespace,
		SecretName:    DefaultSecretName,
		Port:          DefaultPort,
		Image:         DefaultImage,
		Organizations: []string{DefaultOrganization},
		ClusterDomain: DefaultClusterDomain,
		EnableLabel:   DefaultEnableLabel,
	}
}

// Validate checks every seed against the Kubernetes naming rules the derived
// resources have to satisfy. All problems are reported at once.
func (s Seeds) Validate() humane.Error {
	var problems []string

	// Name is also the Service name, which must be an RFC 1035 label.
	problems = append(problems, prefixed("name", validation.IsDNS1035Label(s.Name))...)
	problems = append(problems, prefixed("namespace", validation.IsDNS1123Label(s.Namespace))...)
	problems = append(problems, prefixed("secretName", validation.IsDNS1123Subdomain(s.SecretName))...)
	problems = append(problems, prefixed("port", validation.IsValidPortNum(int(s.Port)))...)
	problems = append(problems, prefixed("clusterDomain", validation.IsDNS1123Subdomain(s.ClusterDomain))...)
	problems = append(problems, prefixed("enableLabel", validation.IsQualifiedName(s.EnableLabel))...)

	if strings.TrimSpace(s.Image) == "" {
		problems = append(problems, "image: must not be empty")
	}

	// The longest derived name must still be a valid DNS subdomain.
	if len(problems) == 0 {
		fqdn := fmt.Sprintf("%s.%s.svc.%s", s.Name, s.Namespace, s.ClusterDomain)
		problems = append(problems, prefixed("dnsName", validation.IsDNS1123Subdomain(fqdn))...)
	}

	if len(problems) > 0 {
		return humane.New(
			fmt.Sprintf("invalid identity seeds: %s", strings.Join(problems, "; ")),
			"Names and namespaces must be lowercase labels (a-z, 0-9, '-'); the name must also start with a letter",
			"Check the identity.* keys in your config file or the NBA_IDENTITY_* environment variables",
		)
	}

	return nil
}

func prefixed(field string, errs []string) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, fmt.Sprintf("%s: %s", field, e))
	}
	return out
}
