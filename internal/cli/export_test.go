package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"secretcopy/internal/config"
	"secretcopy/internal/k8s"
)

// newFakeClient returns a K8sClient backed by the fake clientset
func newFakeClient(t *testing.T) *k8s.Client {
	t.Helper()
	return &k8s.Client{
		ClientSet: fake.NewSimpleClientset(),
		Context:   context.Background(),
	}
}

func runCommand(t *testing.T, client k8s.K8sClient, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(cfg, client)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestExportCommand(t *testing.T) {
	client := newFakeClient(t)
	_, err := client.ClientSet.CoreV1().Secrets("production").Create(client.Context,
		&v1.Secret{
			ObjectMeta: metav1.ObjectMeta{Name: "app-secrets", Namespace: "production"},
			Data: map[string][]byte{
				"API_KEY": []byte("abc123"),
				"CERT":    []byte("line1\nline2"),
			},
		}, metav1.CreateOptions{})
	require.NoError(t, err)

	outPath := filepath.Join(t.TempDir(), "app-secrets.txt")
	cfg := &config.Config{TestNamespace: "test", OutputDir: "."}

	out, err := runCommand(t, client, cfg, "export", "production", "app-secrets", "-o", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported secret")

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, `# Decoded secret "app-secrets" from namespace "production"`)
	assert.Contains(t, text, "API_KEY: abc123\n")
	assert.Contains(t, text, "CERT: |\n  line1\n  line2\n")
}

func TestExportCommandDefaultsToOutputDir(t *testing.T) {
	client := newFakeClient(t)
	_, err := client.ClientSet.CoreV1().Secrets("production").Create(client.Context,
		&v1.Secret{
			ObjectMeta: metav1.ObjectMeta{Name: "db-creds", Namespace: "production"},
			Data:       map[string][]byte{"USER": []byte("admin")},
		}, metav1.CreateOptions{})
	require.NoError(t, err)

	dir := t.TempDir()
	cfg := &config.Config{TestNamespace: "test", OutputDir: dir}

	_, err = runCommand(t, client, cfg, "export", "production", "db-creds")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "db-creds.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "USER: admin")
}

func TestExportCommandMissingSecret(t *testing.T) {
	client := newFakeClient(t)
	cfg := &config.Config{TestNamespace: "test", OutputDir: t.TempDir()}

	_, err := runCommand(t, client, cfg, "export", "production", "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get secret")
}
