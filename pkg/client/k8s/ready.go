package k8s

import (
	"context"
	"fmt"

	certmanagerv1 "github.com/cert-manager/cert-manager/pkg/apis/certmanager/v1"
	cmmeta "github.com/cert-manager/cert-manager/pkg/apis/meta/v1"
	"github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/go-otel-utils/otelzap"
	"go.uber.org/zap"
	appsv1 "k8s.io/api/apps/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/spechtlabs/nba/pkg/manifest"
)

func (a *applyClient) Ready(ctx context.Context, objects []client.Object) (bool, humane.Error) {
	ctx, span := a.tracer.Start(ctx, "ApplyClient.Ready")
	defer span.End()

	for _, obj := range objects {
		ready, err := a.objectReady(ctx, obj)
		if err != nil {
			return false, err
		}
		if !ready {
			otelzap.L().DebugContext(ctx, "Object not ready yet", zap.String("object", manifest.Ref(obj)))
			return false, nil
		}
	}

	return true, nil
}

func (a *applyClient) objectReady(ctx context.Context, obj client.Object) (bool, humane.Error) {
	current, ok := obj.DeepCopyObject().(client.Object)
	if !ok {
		return false, humane.New(fmt.Sprintf("%T is not a Kubernetes object", obj))
	}

	namespaced, err := a.client.IsObjectNamespaced(current)
	if err != nil {
		return false, humane.Wrap(err, "failed to determine object scope",
			"ensure the cert-manager CRDs are installed in the cluster")
	}
	if !namespaced {
		current.SetNamespace("")
	}

	if err := a.client.Get(ctx, client.ObjectKeyFromObject(current), current); err != nil {
		if k8serrors.IsNotFound(err) {
			return false, nil
		}
		return false, humane.Wrap(err, fmt.Sprintf("Failed to load %s", manifest.Ref(obj)))
	}

	switch o := current.(type) {
	case *certmanagerv1.Certificate:
		return certificateReady(o), nil
	case *appsv1.Deployment:
		return deploymentAvailable(o), nil
	default:
		return true, nil
	}
}

func certificateReady(cert *certmanagerv1.Certificate) bool {
	for _, cond := range cert.Status.Conditions {
		if cond.Type == certmanagerv1.CertificateConditionReady {
			return cond.Status == cmmeta.ConditionTrue && cond.ObservedGeneration >= cert.Generation
		}
	}
	return false
}

func deploymentAvailable(d *appsv1.Deployment) bool {
	want := int32(1)
	if d.Spec.Replicas != nil {
		want = *d.Spec.Replicas
	}
	return d.Status.ObservedGeneration >= d.Generation && d.Status.AvailableReplicas >= want
}
