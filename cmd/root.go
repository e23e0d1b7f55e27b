package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/packsort/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "packsort",
	Short: "Terminal package sorting assistant",
	Long:  "Packsort — classifies parcels into STANDARD, SPECIAL, or REJECTED handling from their dimensions and mass.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(examplesCmd)
	rootCmd.AddCommand(versionCmd)
}
