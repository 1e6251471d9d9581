package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ghlabels/cmd/ghlabels/handlers"
)

// Validate returns the command that checks a label template offline.
func Validate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a label template",
		Long: `Load a label template and check every entry has a name and a color.

No GitHub API calls are made.

Examples:
  ghlabels validate -f labels.yml
  ghlabels validate -f s3://team/labels.yml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			return handlers.Validate(cmd.Context(), s, cmd.OutOrStdout())
		},
	}

	addTemplateFlags(cmd)

	return cmd
}
