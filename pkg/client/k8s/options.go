package k8s

// ClientOptions holds configuration for how objects are written to the cluster.
type ClientOptions struct {
	// FieldOwner is recorded as the field manager of every write
	FieldOwner string
	// DryRun sends every write as a server side dry run
	DryRun bool
}

func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		FieldOwner: DefaultFieldOwner,
		DryRun:     false,
	}
}
