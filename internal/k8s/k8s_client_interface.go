package k8s

import (
	v1 "k8s.io/api/core/v1"

	"secretcopy/internal/models"
)

// K8sClient defines the cluster operations used by the CLI commands so they
// can be mocked in tests. This interface isolates Kubernetes-specific logic
// inside the k8s package, so the commands never manipulate raw Kubernetes
// clients directly
type K8sClient interface {
	GetSecret(namespace, name string) (*models.ExportedSecret, error)
	ApplySecret(secret *v1.Secret) error
	NamespaceExists(name string) (bool, error)
}
