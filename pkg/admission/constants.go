package admission

import (
	admissionregistrationv1 "k8s.io/api/admissionregistration/v1"
)

const (
	// MutatePath is the endpoint the annotator serves admission reviews on.
	MutatePath = "/mutate"

	// TimeoutSeconds bounds how long the API server waits before applying FailurePolicy.
	TimeoutSeconds = int32(5)

	// EnableLabelValue is the value a namespace's enable label must carry to opt in.
	EnableLabelValue = "true"

	// FailurePolicy never blocks pod admission when the annotator is unavailable.
	FailurePolicy = admissionregistrationv1.Ignore

	SideEffects = admissionregistrationv1.SideEffectClassNone
)

// AdmissionReviewVersions the annotator understands, preferred first.
func AdmissionReviewVersions() []string {
	return []string{"v1", "v1beta1"}
}
