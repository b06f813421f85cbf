package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tvm-api/repository"
	"tvm-api/service"
)

var (
	calculator *service.CalculatorService
	analyzer   *service.AnalysisService
)

func Execute() error {
	root := &cobra.Command{
		Use:   "tvmcli",
		Short: "Time-value-of-money calculator",
		Long: `tvmcli evaluates the classic time-value-of-money quantities from
the command line: present value of a cash-flow series, future value of a
principal, effective annual rate, and comparison tables built on them.

Rates are decimal fractions, so 0.05 means 5%.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			calculator = service.NewCalculatorService(repository.NewMemoryCache(), time.Minute)
			analyzer = service.NewAnalysisService(calculator)
		},
	}

	root.AddCommand(pvCmd(), fvCmd(), earCmd(), compareCmd(), growthCmd())
	return root.Execute()
}
