package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tvm-api/domain"
)

func pvCmd() *cobra.Command {
	var rate float64

	cmd := &cobra.Command{
		Use:   "pv [cash flows...]",
		Short: "Discount a series of future cash flows to today",
		Long: `Discount one cash flow per period at a fixed rate. The first
flow occurs one period from now. Example:

  tvmcli pv --rate 0.05 100 100 100`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flows := make([]float64, len(args))
			for i, arg := range args {
				value, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid cash flow %q: %w", arg, err)
				}
				flows[i] = value
			}

			result, err := calculator.CalculatePresentValue(domain.PresentValueInput{
				DiscountRate: rate,
				CashFlows:    flows,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Present Value: %s\n", formatMoney(result.PresentValue))
			return nil
		},
	}

	cmd.Flags().Float64Var(&rate, "rate", 0, "per-period discount rate, e.g. 0.05")
	cmd.MarkFlagRequired("rate")
	return cmd
}
