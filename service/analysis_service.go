package service

import (
	"fmt"

	"tvm-api/domain"
)

// Frecuencias por defecto: anual, semestral, trimestral, mensual y diaria
var defaultFrequencies = []int{1, 2, 4, 12, 365}

// Horizontes de proyección por defecto, en períodos
var defaultHorizons = []int{5, 10, 15, 20, 25, 30}

type AnalysisService struct {
	calculator *CalculatorService
}

func NewAnalysisService(calculator *CalculatorService) *AnalysisService {
	return &AnalysisService{calculator: calculator}
}

// CompareCompounding evalúa la tasa efectiva anual de una misma tasa
// nominal bajo cada frecuencia de capitalización solicitada.
func (s *AnalysisService) CompareCompounding(
	input domain.CompoundingComparisonInput,
) (domain.CompoundingComparisonResult, error) {

	frequencies := input.Frequencies
	if len(frequencies) == 0 {
		frequencies = defaultFrequencies
	}
	if len(frequencies) > MaxScenarioEntries {
		return domain.CompoundingComparisonResult{}, fmt.Errorf("el número de frecuencias excede el máximo de %d", MaxScenarioEntries)
	}

	rows := make([]domain.CompoundingRow, 0, len(frequencies))

	// Calcular cada escenario; una frecuencia inválida aborta la comparación
	for _, n := range frequencies {
		conversion, err := s.calculator.ConvertRate(domain.RateConversionInput{
			NominalRate:        input.NominalRate,
			CompoundingPeriods: n,
		})
		if err != nil {
			return domain.CompoundingComparisonResult{}, err
		}

		rows = append(rows, domain.CompoundingRow{
			PeriodsPerYear: n,
			EffectiveRate:  conversion.EffectiveAnnualRate,
		})
	}

	return domain.CompoundingComparisonResult{
		NominalRate: input.NominalRate,
		Rows:        rows,
	}, nil
}

// ProjectGrowth capitaliza el mismo principal sobre cada horizonte y
// reporta el múltiplo alcanzado.
func (s *AnalysisService) ProjectGrowth(
	input domain.GrowthProjectionInput,
) (domain.GrowthProjectionResult, error) {

	horizons := input.Horizons
	if len(horizons) == 0 {
		horizons = defaultHorizons
	}
	if len(horizons) > MaxScenarioEntries {
		return domain.GrowthProjectionResult{}, fmt.Errorf("el número de horizontes excede el máximo de %d", MaxScenarioEntries)
	}

	points := make([]domain.GrowthPoint, 0, len(horizons))

	for _, periods := range horizons {
		future, err := s.calculator.CalculateFutureValue(domain.FutureValueInput{
			Principal:    input.Principal,
			InterestRate: input.InterestRate,
			Periods:      periods,
		})
		if err != nil {
			return domain.GrowthProjectionResult{}, err
		}

		multiple := 0.0
		if input.Principal > 0 {
			multiple = future.FutureValue / input.Principal
		}

		points = append(points, domain.GrowthPoint{
			Periods:     periods,
			FutureValue: future.FutureValue,
			Multiple:    multiple,
		})
	}

	return domain.GrowthProjectionResult{
		Principal:    input.Principal,
		InterestRate: input.InterestRate,
		Points:       points,
	}, nil
}
