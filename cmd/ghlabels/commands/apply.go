package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ghlabels/cmd/ghlabels/handlers"
	"github.com/imamik/ghlabels/internal/config"
)

// Apply returns the command that reconciles repository labels with a template.
//
// Targeting flags (exactly one mode):
//
//	--owner, -o with --repo, -r: a single repository
//	--owner, -o: every organization and user repository of an owner
//	--owners: every repository of several owners
//
// Environment variables:
//
//	GHLABELS_TOKEN or GITHUB_TOKEN: API token (required unless --token is set)
func Apply() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create, update and delete labels to match a template",
		Long: `Reconcile the labels of one or more GitHub repositories with a template.

Labels missing from a repository are created, labels whose color differs are
updated, and labels not in the template are deleted. Every repository and
label is processed concurrently; a failure is reported and never stops the
remaining work.

When running in a terminal without --dry-run or --yes, the planned changes
are shown and must be confirmed first.

Examples:
  # Preview changes for a single repository
  ghlabels apply -o octo -r hello --dry-run

  # Apply a template to every repository of an organization
  ghlabels apply -f labels.yml -o octo --yes

  # Add and recolor labels across several owners, never deleting
  ghlabels apply --owners octo,hubot --no-delete

  # Use a template kept in S3 against GitHub Enterprise
  ghlabels apply -f s3://team/labels.yml -e https://github.example.com -o platform`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			// Scope errors are usage errors; everything after is not.
			if err := handlers.ScopeFrom(s).Validate(); err != nil {
				return err
			}
			cmd.SilenceUsage = true

			return handlers.Apply(cmd.Context(), s, cmd.OutOrStdout())
		},
	}

	addTemplateFlags(cmd)
	cmd.Flags().StringP("token", "t", "", "GitHub API token")
	cmd.Flags().StringP("endpoint", "e", config.DefaultEndpoint, "GitHub API endpoint")
	cmd.Flags().StringP("owner", "o", "", "Repository owner (user or organization)")
	cmd.Flags().StringSlice("owners", nil, "Several owners, comma separated")
	cmd.Flags().StringP("repo", "r", "", "Single repository of --owner")
	cmd.Flags().BoolP("dry-run", "d", false, "Show the changes without applying them")
	cmd.Flags().Bool("no-create", false, "Do not create or update labels")
	cmd.Flags().Bool("no-delete", false, "Do not delete labels")
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().String("output", config.DefaultOutput, "Report format: text, json or yaml")
	cmd.Flags().String("metrics-file", "", "Write Prometheus metrics to this file")
	cmd.Flags().Duration("timeout", config.DefaultTimeout, "Per-request timeout")

	cmd.MarkFlagsMutuallyExclusive("owners", "owner")
	cmd.MarkFlagsMutuallyExclusive("owners", "repo")

	return cmd
}
