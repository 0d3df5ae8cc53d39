package identity

// Defaults are used when no configuration overrides the seeds.
const (
	DefaultName          = "network-bandwidth-annotator"
	DefaultNamespace     = "nba"
	DefaultSecretName    = "tls-network-bandwidth-annotator" //nolint:gosec // K8s resource name, not a credential
	DefaultPort          = int32(8443)
	DefaultImage         = "default-registry:61940/networkbandwidthannotator:0.1.0"
	DefaultClusterDomain = "cluster.local"
	DefaultEnableLabel   = "nba-enabled"
	DefaultOrganization  = "Thomas Kosiewski"
)

const (
	// AppLabel is the single label key used for pod labels and the service selector.
	AppLabel = "app"

	// CertDir is the mount path of the TLS secret inside the annotator container.
	CertDir = "/certs"

	listenHost = "0.0.0.0"
)
