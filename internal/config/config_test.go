package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", "/home/operator")

	cfg := Load()

	assert.Equal(t, filepath.Join("/home/operator", ".kube", "config"), cfg.Kubeconfig)
	assert.Equal(t, "test", cfg.TestNamespace)
	assert.Equal(t, ".", cfg.OutputDir)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SECRETCOPY_KUBECONFIG", "/etc/kube/config")
	t.Setenv("SECRETCOPY_TEST_NAMESPACE", "qa")
	t.Setenv("SECRETCOPY_OUTPUT_DIR", "/tmp/exports")

	cfg := Load()

	assert.Equal(t, "/etc/kube/config", cfg.Kubeconfig)
	assert.Equal(t, "qa", cfg.TestNamespace)
	assert.Equal(t, "/tmp/exports", cfg.OutputDir)
}
