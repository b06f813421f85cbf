package domain

// CompoundingComparisonInput asks for the effective annual rate of one
// nominal rate under several compounding frequencies.
type CompoundingComparisonInput struct {
	NominalRate float64 `json:"nominal_rate"`
	Frequencies []int   `json:"frequencies,omitempty"` // vacío = anual, semestral, trimestral, mensual, diaria
}

type CompoundingRow struct {
	PeriodsPerYear int     `json:"periods_per_year"`
	EffectiveRate  float64 `json:"effective_rate"`
}

type CompoundingComparisonResult struct {
	NominalRate float64          `json:"nominal_rate"`
	Rows        []CompoundingRow `json:"rows"`
}

// GrowthProjectionInput asks how a principal compounds across several
// horizons at the same rate.
type GrowthProjectionInput struct {
	Principal    float64 `json:"principal"`
	InterestRate float64 `json:"interest_rate"`
	Horizons     []int   `json:"horizons,omitempty"` // vacío = 5, 10, 15, 20, 25, 30 períodos
}

type GrowthPoint struct {
	Periods     int     `json:"periods"`
	FutureValue float64 `json:"future_value"`
	Multiple    float64 `json:"multiple"` // FV / principal, 0 si el principal es 0
}

type GrowthProjectionResult struct {
	Principal    float64       `json:"principal"`
	InterestRate float64       `json:"interest_rate"`
	Points       []GrowthPoint `json:"points"`
}
