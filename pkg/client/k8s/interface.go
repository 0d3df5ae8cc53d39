// Package k8s pushes a synthesized resource graph into a live cluster.
// Synthesis itself never touches a cluster; this package is the only place
// that does, and it does so strictly in the graph's apply order.
package k8s

import (
	"context"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
)

// ApplyResult reports what happened to a single object.
type ApplyResult struct {
	// Ref is the object formatted as Kind namespace/name
	Ref string
	// Operation is either created or updated
	Operation controllerutil.OperationResult
}

// ApplyClient creates or updates resources in a cluster.
//
// Implementations should:
// Apply objects sequentially in the given order
// Stop at the first failure and report what was applied so far
// Never modify the objects passed in
type ApplyClient interface {
	// Apply creates every object that does not exist yet and updates the rest.
	Apply(ctx context.Context, objects []client.Object) ([]ApplyResult, humane.Error)

	// Ready reports whether the issued certificate and the rolled out
	// deployment among objects are usable. Other kinds are ready once they exist.
	Ready(ctx context.Context, objects []client.Object) (bool, humane.Error)
}
