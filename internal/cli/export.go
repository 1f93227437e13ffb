package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"secretcopy/internal/config"
	"secretcopy/internal/k8s"
	"secretcopy/internal/secretfile"
)

func newExportCmd(cfg *config.Config, client k8s.K8sClient) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <namespace> <secret-name>",
		Short: "Export a secret as an editable plain-text file",
		Long: `Export fetches a secret from the cluster, decodes its base64 values and
writes them to a plain-text file with sorted keys.

Examples:
  # Export app-secrets from the production namespace to ./app-secrets.txt
  secretcopy export production app-secrets

  # Export to an explicit path
  secretcopy export production app-secrets -o /tmp/app-secrets.txt

The file contains decoded secret material; delete it once it has been
re-imported.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			namespace, name := args[0], args[1]

			c, err := clientFor(cmd, cfg, client)
			if err != nil {
				return err
			}

			exported, err := c.GetSecret(namespace, name)
			if err != nil {
				return err
			}

			text := secretfile.Render(exported.Name, exported.Namespace, exported.Data)

			if output == "" {
				output = filepath.Join(cfg.OutputDir, name+".txt")
			}
			if dir := filepath.Dir(output); dir != "." {
				if err := os.MkdirAll(dir, 0o750); err != nil {
					return fmt.Errorf("failed to create output directory: %w", err)
				}
			}
			// Decoded secret material, keep it owner-only
			if err := os.WriteFile(output, []byte(text), 0o600); err != nil {
				return fmt.Errorf("failed to write %q: %w", output, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported secret %q from namespace %q to %s\n", name, namespace, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "path of the exported file (default <output-dir>/<secret-name>.txt)")

	return cmd
}
