// Package workload builds the annotator Deployment and the Service in front of it.
package workload

import (
	certmanagerv1 "github.com/cert-manager/cert-manager/pkg/apis/certmanager/v1"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/spechtlabs/nba/pkg/identity"
)

// NewDeployment creates the single replica annotator Deployment. TLS is
// terminated by the container itself, so the secret produced for cert is
// mounted at the identity's cert dir and the env vars point into it.
func NewDeployment(id identity.Identity, cert *certmanagerv1.Certificate) *appsv1.Deployment {
	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: appsv1.SchemeGroupVersion.String(),
			Kind:       "Deployment",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      id.Name(),
			Namespace: id.Namespace(),
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: ptr.To(Replicas),
			Selector: &metav1.LabelSelector{
				MatchLabels: id.Labels(),
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: id.Labels(),
				},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{
						buildContainer(id),
					},
					Volumes: []corev1.Volume{
						{
							Name: CertVolumeName,
							VolumeSource: corev1.VolumeSource{
								Secret: &corev1.SecretVolumeSource{
									SecretName: cert.Spec.SecretName,
								},
							},
						},
					},
				},
			},
		},
	}
}

func buildContainer(id identity.Identity) corev1.Container {
	return corev1.Container{
		Name:    id.Name(),
		Image:   id.Image(),
		Command: Command(),
		Ports: []corev1.ContainerPort{
			{
				Name:          PortName,
				ContainerPort: id.Port(),
			},
		},
		Env: []corev1.EnvVar{
			{Name: EnvAddr, Value: id.ListenAddr()},
			{Name: EnvTLSCertFile, Value: id.CertFile()},
			{Name: EnvTLSKeyFile, Value: id.KeyFile()},
		},
		VolumeMounts: []corev1.VolumeMount{
			{
				Name:      CertVolumeName,
				MountPath: id.CertDir(),
				ReadOnly:  true,
			},
		},
	}
}

// ContainerPort returns the named https port of the deployment's first
// container, or 0 if there is none.
func ContainerPort(deployment *appsv1.Deployment) int32 {
	for _, c := range deployment.Spec.Template.Spec.Containers {
		for _, p := range c.Ports {
			if p.Name == PortName {
				return p.ContainerPort
			}
		}
	}
	return 0
}
