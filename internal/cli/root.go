package cli

import (
	"github.com/spf13/cobra"

	"secretcopy/internal/config"
	"secretcopy/internal/k8s"
)

// NewRootCmd builds the secretcopy command tree. A nil client means commands
// build a real cluster client on first use; tests pass a fake instead.
func NewRootCmd(cfg *config.Config, client k8s.K8sClient) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "secretcopy",
		Short: "Copy Kubernetes secrets between namespaces through an editable text file",
		Long: `secretcopy decodes a Kubernetes Secret into a plain-text file an operator
can read and edit, and re-encodes an edited file into a new Secret in a
target namespace (typically production -> test).

The text format is one "key: value" line per field; multi-line values use
"key: |" followed by two-space indented lines. Lines starting with '#' are
comments and blank lines separate fields.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newExportCmd(cfg, client))
	rootCmd.AddCommand(newCreateCmd(cfg, client))

	return rootCmd
}

// clientFor returns the injected client, or dials the cluster when none was
// supplied.
func clientFor(cmd *cobra.Command, cfg *config.Config, client k8s.K8sClient) (k8s.K8sClient, error) {
	if client != nil {
		return client, nil
	}
	return k8s.NewClient(cmd.Context(), cfg.Kubeconfig)
}
