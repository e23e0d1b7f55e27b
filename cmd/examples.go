package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/packsort/internal/catalog"
	"github.com/abhisek/packsort/internal/sorter"
)

var examplesCmd = &cobra.Command{
	Use:   "examples [id]",
	Short: "List or classify the built-in package archetypes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			ex, err := catalog.ByID(args[0])
			if err != nil {
				return err
			}
			res, err := sorter.ClassifyWithDetail(ex.Width, ex.Height, ex.Length, ex.Mass)
			if err != nil {
				return err
			}
			fmt.Println(renderResult(res))
			return nil
		}

		all, err := catalog.Load()
		if err != nil {
			return err
		}
		for _, ex := range all {
			fmt.Printf("%-16s %-14s %g × %g × %g cm, %g kg — %s\n",
				ex.ID, ex.Name, ex.Width, ex.Height, ex.Length, ex.Mass, ex.Description)
		}
		return nil
	},
}
