package secretfile

import (
	"fmt"

	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"
)

// Manifest builds an Opaque v1.Secret for the target name and namespace from
// a parsed field map. Values are raw bytes; base64 encoding happens during
// serialization.
func Manifest(name, namespace string, fields map[string][]byte) *v1.Secret {
	return &v1.Secret{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Secret",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Type: v1.SecretTypeOpaque,
		Data: fields,
	}
}

// MarshalManifest serializes a Secret to YAML suitable for kubectl apply.
func MarshalManifest(secret *v1.Secret) ([]byte, error) {
	out, err := yaml.Marshal(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal secret manifest: %w", err)
	}
	return out, nil
}
