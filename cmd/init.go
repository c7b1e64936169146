package cmd

import (
	"github.com/spf13/cobra"

	"github.com/priyankdesai/smartshop/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize smartshop configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure smartshop and generates a .smartshop.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
