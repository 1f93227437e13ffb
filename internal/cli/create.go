package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"secretcopy/internal/config"
	"secretcopy/internal/k8s"
	"secretcopy/internal/models"
	"secretcopy/internal/secretfile"
)

func newCreateCmd(cfg *config.Config, client k8s.K8sClient) *cobra.Command {
	var (
		name      string
		namespace string
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "create <secrets-file>",
		Short: "Re-encode a plain-text secrets file into the test namespace",
		Long: `Create parses a file previously written by "secretcopy export" (possibly
edited by hand), re-encodes the values and applies the resulting secret to
the target namespace. The namespace must already exist.

Examples:
  # Create app-secrets in the default test namespace from an exported file
  secretcopy create app-secrets.txt

  # Override target name and namespace
  secretcopy create app-secrets.txt --name app-secrets --namespace staging

  # Print the manifest instead of applying it
  secretcopy create app-secrets.txt --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read secrets file %q: %w", path, err)
			}

			fields, err := secretfile.Parse(string(raw))
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", path, err)
			}

			target := models.Target{Name: name, Namespace: namespace}
			if target.Namespace == "" {
				target.Namespace = cfg.TestNamespace
			}
			if target.Name == "" {
				base := filepath.Base(path)
				target.Name = strings.TrimSuffix(base, filepath.Ext(base))
			}

			secret := secretfile.Manifest(target.Name, target.Namespace, fields)

			if dryRun {
				out, err := secretfile.MarshalManifest(secret)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}

			c, err := clientFor(cmd, cfg, client)
			if err != nil {
				return err
			}

			exists, err := c.NamespaceExists(target.Namespace)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf("namespace %q does not exist, create it before importing secrets", target.Namespace)
			}

			if err := c.ApplySecret(secret); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created secret %q with %d keys in namespace %q\n", target.Name, len(fields), target.Namespace)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "target secret name (default derived from the file name)")
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "target namespace (default from configuration)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the secret manifest instead of applying it")

	return cmd
}
