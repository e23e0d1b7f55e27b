package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/packsort/internal/sorter"
	"github.com/abhisek/packsort/internal/ui/theme"
)

var checkQuiet bool

var checkCmd = &cobra.Command{
	Use:   "check <width> <height> <length> <mass>",
	Short: "Classify a single package from the command line",
	Long: "Classifies one package from its width, height, length (cm) and mass (kg).\n" +
		"Prints the handling category with the facts behind the decision, or the\n" +
		"validation error for unusable measurements.",
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		vals := make([]float64, 4)
		names := []string{"width", "height", "length", "mass"}
		for i, arg := range args {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("invalid %s %q: expected a number", names[i], arg)
			}
			vals[i] = v
		}

		res, err := sorter.ClassifyWithDetail(vals[0], vals[1], vals[2], vals[3])
		if err != nil {
			return err
		}

		if checkQuiet {
			fmt.Println(res.Classification)
			return nil
		}

		fmt.Println(renderResult(res))
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "print only the classification token")
}

// renderResult renders a one-shot result card for non-interactive use.
func renderResult(res *sorter.Result) string {
	var badge string
	switch res.Classification {
	case sorter.Standard:
		badge = theme.StandardBadge.Render(" " + string(res.Classification) + " ")
	case sorter.Special:
		badge = theme.SpecialBadge.Render(" " + string(res.Classification) + " ")
	case sorter.Rejected:
		badge = theme.RejectedBadge.Render(" " + string(res.Classification) + " ")
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	lines := []string{
		badge,
		"",
		res.Reason,
		"",
		dim.Render(fmt.Sprintf("dimensions  %g × %g × %g cm", res.Width, res.Height, res.Length)),
		dim.Render(fmt.Sprintf("volume      %g cm³", res.Volume)),
		dim.Render(fmt.Sprintf("mass        %g kg", res.Mass)),
		dim.Render(fmt.Sprintf("bulky %-5v heavy %v", res.Bulky, res.Heavy)),
	}
	return strings.Join(lines, "\n")
}
