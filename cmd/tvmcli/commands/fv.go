package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tvm-api/domain"
)

func fvCmd() *cobra.Command {
	var rate float64
	var periods int

	cmd := &cobra.Command{
		Use:   "fv [principal]",
		Short: "Compound a principal forward over whole periods",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid principal %q: %w", args[0], err)
			}

			result, err := calculator.CalculateFutureValue(domain.FutureValueInput{
				Principal:    principal,
				InterestRate: rate,
				Periods:      periods,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Future Value:    %s\n", formatMoney(result.FutureValue))
			fmt.Printf("Total Growth:    %s\n", formatMoney(result.FutureValue-principal))
			if principal > 0 {
				fmt.Printf("Return Multiple: %.4fx\n", result.FutureValue/principal)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&rate, "rate", 0, "per-period interest rate, e.g. 0.05")
	cmd.Flags().IntVar(&periods, "periods", 1, "number of compounding periods")
	cmd.MarkFlagRequired("rate")
	return cmd
}
