// Package identity derives every name, namespace, label, port and path the
// annotator topology uses from a small set of seeds. The other builders never
// spell out these values themselves; they ask an Identity for them, so two
// resources that must agree on a value always read it from the same place.
package identity

import (
	"fmt"
	"net"
	"path"
	"slices"
	"strconv"

	"github.com/sierrasoftworks/humane-errors-go"
	corev1 "k8s.io/api/core/v1"
)

// Identity is the resolved, immutable set of identifiers. Accessors returning
// maps or slices hand out fresh copies.
type Identity struct {
	seeds Seeds
}

// Resolve validates the seeds and returns the derived identity.
func Resolve(seeds Seeds) (Identity, humane.Error) {
	if err := seeds.Validate(); err != nil {
		return Identity{}, err
	}

	seeds.Organizations = slices.Clone(seeds.Organizations)
	return Identity{seeds: seeds}, nil
}

// Seeds returns a copy of the seeds this identity was resolved from.
func (i Identity) Seeds() Seeds {
	s := i.seeds
	s.Organizations = slices.Clone(s.Organizations)
	return s
}

func (i Identity) Name() string { return i.seeds.Name }

func (i Identity) Namespace() string { return i.seeds.Namespace }

func (i Identity) SecretName() string { return i.seeds.SecretName }

func (i Identity) Port() int32 { return i.seeds.Port }

func (i Identity) Image() string { return i.seeds.Image }

func (i Identity) EnableLabel() string { return i.seeds.EnableLabel }

func (i Identity) Organizations() []string { return slices.Clone(i.seeds.Organizations) }

// ServiceHost is the short in-cluster DNS name: <name>.<namespace>.svc
func (i Identity) ServiceHost() string {
	return fmt.Sprintf("%s.%s.svc", i.seeds.Name, i.seeds.Namespace)
}

// ServiceFQDN is the fully qualified DNS name: <name>.<namespace>.svc.<clusterDomain>
func (i Identity) ServiceFQDN() string {
	return fmt.Sprintf("%s.%s", i.ServiceHost(), i.seeds.ClusterDomain)
}

// DNSNames are the identities the annotator's TLS listener presents, short form first.
func (i Identity) DNSNames() []string {
	return []string{i.ServiceHost(), i.ServiceFQDN()}
}

// Labels are used as pod labels, deployment selector and service selector.
func (i Identity) Labels() map[string]string {
	return map[string]string{AppLabel: i.seeds.Name}
}

// ListenAddr is the ADDR the annotator binds, e.g. 0.0.0.0:8443.
func (i Identity) ListenAddr() string {
	return net.JoinHostPort(listenHost, strconv.Itoa(int(i.seeds.Port)))
}

func (i Identity) CertDir() string { return CertDir }

// CertFile is the PEM certificate inside CertDir, named after the key the
// certificate controller writes into the TLS secret.
func (i Identity) CertFile() string { return path.Join(CertDir, corev1.TLSCertKey) }

func (i Identity) KeyFile() string { return path.Join(CertDir, corev1.TLSPrivateKeyKey) }
