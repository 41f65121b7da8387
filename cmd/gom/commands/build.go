package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Vendor the packages listed in gom.config",
		Long: `Reads gom.config from the current directory, prepares the project's
vendor directory and copies every configured package into it.

A vendor directory that belongs to another project is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.Build(cmd.Context())
			return err
		},
	}
}
