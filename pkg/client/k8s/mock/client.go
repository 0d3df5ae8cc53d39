package mock

import (
	"context"

	"github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/nba/pkg/client/k8s"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
)

var _ k8s.ApplyClient = &MockApplyClient{}

// MockApplyClient records the objects it was asked to apply. If ApplyFn is nil
// every object is reported as created; if ReadyFn is nil everything is ready.
type MockApplyClient struct {
	ApplyFn func(ctx context.Context, objects []client.Object) ([]k8s.ApplyResult, humane.Error)
	ReadyFn func(ctx context.Context, objects []client.Object) (bool, humane.Error)

	Applied     [][]client.Object
	ReadyChecks int
}

func (m *MockApplyClient) Apply(ctx context.Context, objects []client.Object) ([]k8s.ApplyResult, humane.Error) {
	m.Applied = append(m.Applied, objects)

	if m.ApplyFn != nil {
		return m.ApplyFn(ctx, objects)
	}

	results := make([]k8s.ApplyResult, 0, len(objects))
	for _, obj := range objects {
		results = append(results, k8s.ApplyResult{
			Ref:       obj.GetObjectKind().GroupVersionKind().Kind + " " + obj.GetName(),
			Operation: controllerutil.OperationResultCreated,
		})
	}
	return results, nil
}

func (m *MockApplyClient) Ready(ctx context.Context, objects []client.Object) (bool, humane.Error) {
	m.ReadyChecks++

	if m.ReadyFn != nil {
		return m.ReadyFn(ctx, objects)
	}
	return true, nil
}
