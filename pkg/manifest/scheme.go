package manifest

import (
	certmanagerv1 "github.com/cert-manager/cert-manager/pkg/apis/certmanager/v1"
	"github.com/sierrasoftworks/humane-errors-go"
	"k8s.io/apimachinery/pkg/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
)

// NewScheme returns a scheme knowing every kind the graph may contain: the
// built-in Kubernetes types and the cert-manager API.
func NewScheme() (*runtime.Scheme, humane.Error) {
	scheme := runtime.NewScheme()

	if err := clientgoscheme.AddToScheme(scheme); err != nil {
		return nil, humane.Wrap(err, "failed to add clientgoscheme to scheme")
	}

	if err := certmanagerv1.AddToScheme(scheme); err != nil {
		return nil, humane.Wrap(err, "failed to add cert-manager v1 to scheme")
	}

	return scheme, nil
}

// stampKind checks obj against the scheme and fills in apiVersion/kind when
// they are unset. A declared kind the scheme does not map to obj's Go type is
// a schema violation.
func stampKind(scheme *runtime.Scheme, obj runtime.Object) humane.Error {
	gvks, _, err := scheme.ObjectKinds(obj)
	if err != nil {
		return humane.Wrap(err, "object is not part of the target schema")
	}

	declared := obj.GetObjectKind().GroupVersionKind()
	if declared.Empty() {
		obj.GetObjectKind().SetGroupVersionKind(gvks[0])
		return nil
	}

	for _, gvk := range gvks {
		if gvk == declared {
			return nil
		}
	}

	return humane.New("object declares a kind the target schema does not know for it",
		"declared "+declared.String()+", expected "+gvks[0].String(),
	)
}
