package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tvm-api/domain"
)

func growthCmd() *cobra.Command {
	var rate float64
	var horizons []int

	cmd := &cobra.Command{
		Use:   "growth [principal]",
		Short: "Project the growth of a principal across horizons",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid principal %q: %w", args[0], err)
			}

			result, err := analyzer.ProjectGrowth(domain.GrowthProjectionInput{
				Principal:    principal,
				InterestRate: rate,
				Horizons:     horizons,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Principal %s at %s per period\n\n",
				formatMoney(principal), formatRate(rate))
			fmt.Printf("%8s %18s %10s\n", "Periods", "Future value", "Multiple")
			for _, point := range result.Points {
				fmt.Printf("%8d %18s %9.2fx\n",
					point.Periods, formatMoney(point.FutureValue), point.Multiple)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&rate, "rate", 0, "per-period interest rate, e.g. 0.08")
	cmd.Flags().IntSliceVar(&horizons, "horizons", nil,
		"periods to project (default 5,10,15,20,25,30)")
	cmd.MarkFlagRequired("rate")
	return cmd
}
