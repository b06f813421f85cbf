package commands

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"tvm-api/domain"
)

func compareCmd() *cobra.Command {
	var frequencies []int

	cmd := &cobra.Command{
		Use:   "compare [nominal rate]",
		Short: "Compare effective rates across compounding frequencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid nominal rate %q: %w", args[0], err)
			}

			result, err := analyzer.CompareCompounding(domain.CompoundingComparisonInput{
				NominalRate: rate,
				Frequencies: frequencies,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Nominal rate: %s\n\n", formatRate(rate))
			fmt.Printf("%-14s %12s %16s\n", "Compounding", "Periods/yr", "Effective rate")
			for _, row := range result.Rows {
				fmt.Printf("%-14s %12d %16s\n",
					frequencyLabel(row.PeriodsPerYear), row.PeriodsPerYear, formatRate(row.EffectiveRate))
			}

			// Referencia: límite de capitalización continua e^r - 1
			fmt.Printf("%-14s %12s %16s\n", "Continuous", "-", formatRate(math.Expm1(rate)))
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&frequencies, "frequencies", nil,
		"periods per year to compare (default 1,2,4,12,365)")
	return cmd
}
