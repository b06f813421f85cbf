package domain

// PresentValueInput describes a series of future cash flows to discount.
// CashFlows are ordered by period; the first entry occurs one period from
// now, never today.
type PresentValueInput struct {
	DiscountRate float64   `json:"discount_rate"`
	CashFlows    []float64 `json:"cash_flows"`
}

type PresentValueResult struct {
	PresentValue float64 `json:"present_value"`
}

type FutureValueInput struct {
	Principal    float64 `json:"principal"`
	InterestRate float64 `json:"interest_rate"`
	Periods      int     `json:"periods"`
}

type FutureValueResult struct {
	FutureValue float64 `json:"future_value"`
}

type RateConversionInput struct {
	NominalRate        float64 `json:"nominal_rate"`
	CompoundingPeriods int     `json:"compounding_periods"`
}

type RateConversionResult struct {
	EffectiveAnnualRate float64 `json:"effective_annual_rate"`
}
