package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the settings shared by all commands. Every value has a
// default and can be overridden through SECRETCOPY_* environment variables.
type Config struct {
	// Kubeconfig is the path used when no in-cluster config is available.
	Kubeconfig string
	// TestNamespace is the namespace test secrets are created in.
	TestNamespace string
	// OutputDir is where exported secret files are written.
	OutputDir string
}

// Load reads configuration from the environment with defaults applied.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("SECRETCOPY")
	v.AutomaticEnv()

	v.SetDefault("kubeconfig", filepath.Join(os.Getenv("HOME"), ".kube", "config"))
	v.SetDefault("test_namespace", "test")
	v.SetDefault("output_dir", ".")

	return &Config{
		Kubeconfig:    v.GetString("kubeconfig"),
		TestNamespace: v.GetString("test_namespace"),
		OutputDir:     v.GetString("output_dir"),
	}
}
