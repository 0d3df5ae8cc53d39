package k8s

import (
	"context"
	"fmt"

	"github.com/go-logr/zapr"
	"github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/go-otel-utils/otelzap"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/rest"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	"github.com/spechtlabs/nba/pkg/manifest"
)

type applyClient struct {
	client client.Client
	tracer trace.Tracer
	opts   ClientOptions
}

func NewApplyClient(c client.Client, opts ClientOptions) ApplyClient {
	return &applyClient{
		client: c,
		tracer: otel.Tracer("nba_k8s_client"),
		opts:   opts,
	}
}

// NewClusterClient creates a controller-runtime client for restCfg that knows
// every kind in scheme, and routes controller-runtime logging through otelzap.
func NewClusterClient(restCfg *rest.Config, scheme *runtime.Scheme, opts ClientOptions) (ApplyClient, humane.Error) {
	ctrl.SetLogger(zapr.NewLogger(otelzap.L().Logger))

	c, err := client.New(restCfg, client.Options{Scheme: scheme})
	if err != nil {
		return nil, humane.Wrap(err, "failed to create Kubernetes client", "check your kubeconfig and that the cluster is reachable")
	}

	return NewApplyClient(c, opts), nil
}

func (a *applyClient) Apply(ctx context.Context, objects []client.Object) ([]ApplyResult, humane.Error) {
	ctx, span := a.tracer.Start(ctx, "ApplyClient.Apply")
	defer span.End()

	if len(objects) == 0 {
		return nil, ErrNoObjects
	}

	// Namespaces only simulated by a dry run do not exist on the server, so objects
	// placed in them are reported as created without asking the server.
	simulated := map[string]bool{}

	results := make([]ApplyResult, 0, len(objects))
	for _, obj := range objects {
		res, err := a.applyOne(ctx, obj, simulated)
		if err != nil {
			return results, err
		}
		results = append(results, res)

		if ns, ok := obj.(*corev1.Namespace); ok && a.opts.DryRun && res.Operation == controllerutil.OperationResultCreated {
			simulated[ns.Name] = true
		}
	}

	return results, nil
}

func (a *applyClient) applyOne(ctx context.Context, obj client.Object, simulated map[string]bool) (ApplyResult, humane.Error) {
	desired, ok := obj.DeepCopyObject().(client.Object)
	if !ok {
		return ApplyResult{}, humane.New(fmt.Sprintf("%T is not a Kubernetes object", obj))
	}

	// The API server drops the namespace of cluster scoped objects on create; do the same
	// so lookups by key find them again.
	namespaced, err := a.client.IsObjectNamespaced(desired)
	if err != nil {
		return ApplyResult{}, humane.Wrap(err, "failed to determine object scope",
			"ensure the cert-manager CRDs are installed in the cluster")
	}
	if !namespaced {
		desired.SetNamespace("")
	}

	ref := manifest.Ref(desired)
	ctx, span := a.tracer.Start(ctx, "ApplyClient.applyOne")
	defer span.End()
	span.SetAttributes(attribute.String("object.ref", ref), attribute.Bool("dry_run", a.opts.DryRun))

	if namespaced && simulated[desired.GetNamespace()] {
		otelzap.L().InfoContext(ctx, "Created object", zap.String("object", ref), zap.Bool("dry_run", a.opts.DryRun), zap.Bool("namespace_pending", true))
		return ApplyResult{Ref: ref, Operation: controllerutil.OperationResultCreated}, nil
	}

	existing, ok := desired.DeepCopyObject().(client.Object)
	if !ok {
		return ApplyResult{}, humane.New(fmt.Sprintf("%T is not a Kubernetes object", obj))
	}

	if err := a.client.Get(ctx, client.ObjectKeyFromObject(desired), existing); err != nil {
		if !k8serrors.IsNotFound(err) {
			return ApplyResult{}, humane.Wrap(err, fmt.Sprintf("Failed to load %s", ref))
		}

		if err := a.client.Create(ctx, desired, a.createOptions()...); err != nil {
			return ApplyResult{}, humane.Wrap(err, fmt.Sprintf("Failed to create %s", ref), "see underlying error for more details")
		}

		otelzap.L().InfoContext(ctx, "Created object", zap.String("object", ref), zap.Bool("dry_run", a.opts.DryRun))
		return ApplyResult{Ref: ref, Operation: controllerutil.OperationResultCreated}, nil
	}

	desired.SetResourceVersion(existing.GetResourceVersion())
	if err := a.client.Update(ctx, desired, a.updateOptions()...); err != nil {
		return ApplyResult{}, humane.Wrap(err, fmt.Sprintf("Failed to update %s", ref), "see underlying error for more details")
	}

	otelzap.L().InfoContext(ctx, "Updated object", zap.String("object", ref), zap.Bool("dry_run", a.opts.DryRun))
	return ApplyResult{Ref: ref, Operation: controllerutil.OperationResultUpdated}, nil
}

func (a *applyClient) createOptions() []client.CreateOption {
	opts := []client.CreateOption{client.FieldOwner(a.opts.FieldOwner)}
	if a.opts.DryRun {
		opts = append(opts, client.DryRunAll)
	}
	return opts
}

func (a *applyClient) updateOptions() []client.UpdateOption {
	opts := []client.UpdateOption{client.FieldOwner(a.opts.FieldOwner)}
	if a.opts.DryRun {
		opts = append(opts, client.DryRunAll)
	}
	return opts
}
