package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tvm-api/domain"
)

func earCmd() *cobra.Command {
	var periods int

	cmd := &cobra.Command{
		Use:   "ear [nominal rate]",
		Short: "Convert a nominal annual rate to an effective annual rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid nominal rate %q: %w", args[0], err)
			}

			result, err := calculator.ConvertRate(domain.RateConversionInput{
				NominalRate:        rate,
				CompoundingPeriods: periods,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Effective Annual Rate: %s\n", formatRate(result.EffectiveAnnualRate))
			return nil
		},
	}

	cmd.Flags().IntVar(&periods, "periods", 12, "compounding periods per year")
	return cmd
}
