package k8s

import (
	"fmt"

	v1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"secretcopy/internal/models"
)

// GetSecret retrieves a Kubernetes secret with its raw byte values
func (c *Client) GetSecret(namespace, name string) (*models.ExportedSecret, error) {
	secret, err := c.ClientSet.CoreV1().Secrets(namespace).Get(c.Context, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get secret %q in namespace %q: %w", name, namespace, err)
	}

	data := make(map[string][]byte, len(secret.Data))
	for k, v := range secret.Data {
		data[k] = v
	}

	return &models.ExportedSecret{
		Name:      secret.Name,
		Namespace: secret.Namespace,
		Data:      data,
	}, nil
}

// ApplySecret creates the secret in its target namespace, or replaces the
// data of an existing secret with the same name
func (c *Client) ApplySecret(secret *v1.Secret) error {
	_, err := c.ClientSet.CoreV1().Secrets(secret.Namespace).Create(c.Context, secret, metav1.CreateOptions{})
	if err == nil {
		return nil
	}
	if !apierrors.IsAlreadyExists(err) {
		return fmt.Errorf("failed to create secret %q in namespace %q: %w", secret.Name, secret.Namespace, err)
	}

	existing, err := c.ClientSet.CoreV1().Secrets(secret.Namespace).Get(c.Context, secret.Name, metav1.GetOptions{})
	if err != nil {
		return fmt.Errorf("failed to get secret %q for update: %w", secret.Name, err)
	}

	existing.Type = secret.Type
	existing.Data = secret.Data
	existing.StringData = nil

	_, err = c.ClientSet.CoreV1().Secrets(secret.Namespace).Update(c.Context, existing, metav1.UpdateOptions{})
	if err != nil {
		return fmt.Errorf("failed to update secret %q in namespace %q: %w", secret.Name, secret.Namespace, err)
	}

	return nil
}

// NamespaceExists reports whether the namespace is present in the cluster
func (c *Client) NamespaceExists(name string) (bool, error) {
	_, err := c.ClientSet.CoreV1().Namespaces().Get(c.Context, name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check namespace %q: %w", name, err)
	}
	return true, nil
}
