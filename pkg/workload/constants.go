package workload

// Container wiring of the annotator.
const (
	// PortName names both the container port and the service port.
	PortName = "https"

	// CertVolumeName is the pod volume carrying the TLS secret.
	CertVolumeName = "tls-certs"

	// Replicas is fixed; scaling and rollout policy are left to the cluster defaults.
	Replicas = int32(1)
)

// Environment variables the annotator reads on startup.
const (
	EnvAddr        = "ADDR"
	EnvTLSCertFile = "TLS_CERT_FILE"
	EnvTLSKeyFile  = "TLS_KEY_FILE"
)

// Command starts the annotator with verbose logging.
func Command() []string {
	return []string{"./network-bandwidth-annotator", "-v"}
}
