// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ghlabels/internal/config"
)

// Root returns the root command for the ghlabels CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ghlabels",
		Short:         "Keep GitHub labels in sync with a template",
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Config file path (default: "+config.DefaultPath()+")")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(Apply())
	cmd.AddCommand(Validate())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

// loadSettings layers the command's flags over environment variables and
// the config file.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	v := config.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	path, _ := cmd.Flags().GetString("config")
	if err := config.ReadFile(v, path); err != nil {
		return nil, err
	}

	return config.Load(v)
}

// addTemplateFlags registers the flags that locate a label template.
func addTemplateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", config.DefaultFile, "Label template (local path or s3://bucket/key)")
	cmd.Flags().String("s3-endpoint", "", "Custom S3 endpoint for s3:// templates")
	cmd.Flags().String("s3-region", "", "S3 region for s3:// templates")
}
