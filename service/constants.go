package service

import "time"

const (
	MaxCashFlowEntries    = 10_000    // flujos por serie
	MaxFutureValuePeriods = 100_000   // períodos de capitalización
	MaxCompoundingPeriods = 1_000_000 // subperíodos por año
	MaxScenarioEntries    = 120       // frecuencias u horizontes por comparación

	// TTL de memoización cuando la configuración no define uno
	DefaultCacheTTL = 5 * time.Minute
)
