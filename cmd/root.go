package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "smartshop",
	Short: "Conversational shopping assistant with price intelligence",
	Long: `SmartShop extracts shopping requirements from plain conversation,
flags contradictory asks, and ranks catalog products against budget,
reviews, and stated priorities. It serves a REST and WebSocket API
and ships an interactive terminal chat.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".smartshop.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
