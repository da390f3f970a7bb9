package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mrxiaozhuox/karaty/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize karaty configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site's content source and generates a karaty.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
