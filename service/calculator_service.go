package service

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"tvm-api/domain"
	"tvm-api/finmath"
	"tvm-api/repository"
)

// cacheKey derives a stable key from the operation name and the marshaled
// input. An empty key means the input is not cacheable (valores como NaN
// no sobreviven el marshaling) and the calculation runs uncached.
func cacheKey(operation string, input any) string {
	payload, err := json.Marshal(input)
	if err != nil {
		return ""
	}
	return operation + ":" + strconv.FormatUint(xxhash.Sum64(payload), 16)
}

type CalculatorService struct {
	cache    repository.CacheRepository
	cacheTTL time.Duration
}

// NewCalculatorService creates a new CalculatorService that memoizes
// results in the given cache.
func NewCalculatorService(cache repository.CacheRepository,
	cacheTTL time.Duration,
) *CalculatorService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &CalculatorService{cache: cache, cacheTTL: cacheTTL}
}

// CalculatePresentValue discounts the cash-flow series described by the
// input and returns its value today.
func (s *CalculatorService) CalculatePresentValue(
	input domain.PresentValueInput,
) (domain.PresentValueResult, error) {

	// Validar tamaño antes de delegar al núcleo
	if len(input.CashFlows) > MaxCashFlowEntries {
		return domain.PresentValueResult{}, fmt.Errorf("la serie excede el máximo de %d flujos", MaxCashFlowEntries)
	}

	key := cacheKey("pv", input)
	if key != "" {
		if cached, hit := s.cache.Get(key); hit {
			var result domain.PresentValueResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
		}
	}

	pv, err := finmath.PresentValue(input.DiscountRate, input.CashFlows)
	if err != nil {
		return domain.PresentValueResult{}, err
	}

	result := domain.PresentValueResult{PresentValue: pv}
	s.store(key, result)
	return result, nil
}

// CalculateFutureValue compounds the principal described by the input
// forward over its periods.
func (s *CalculatorService) CalculateFutureValue(
	input domain.FutureValueInput,
) (domain.FutureValueResult, error) {

	if input.Periods > MaxFutureValuePeriods {
		return domain.FutureValueResult{}, fmt.Errorf("el plazo excede el máximo de %d períodos", MaxFutureValuePeriods)
	}

	key := cacheKey("fv", input)
	if key != "" {
		if cached, hit := s.cache.Get(key); hit {
			var result domain.FutureValueResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
		}
	}

	fv, err := finmath.FutureValue(input.Principal, input.InterestRate, input.Periods)
	if err != nil {
		return domain.FutureValueResult{}, err
	}

	result := domain.FutureValueResult{FutureValue: fv}
	s.store(key, result)
	return result, nil
}

// ConvertRate turns the nominal rate described by the input into an
// effective annual rate.
func (s *CalculatorService) ConvertRate(
	input domain.RateConversionInput,
) (domain.RateConversionResult, error) {

	if input.CompoundingPeriods > MaxCompoundingPeriods {
		return domain.RateConversionResult{}, fmt.Errorf("la frecuencia excede el máximo de %d subperíodos", MaxCompoundingPeriods)
	}

	key := cacheKey("ear", input)
	if key != "" {
		if cached, hit := s.cache.Get(key); hit {
			var result domain.RateConversionResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
		}
	}

	ear, err := finmath.EffectiveAnnualRate(input.NominalRate, input.CompoundingPeriods)
	if err != nil {
		return domain.RateConversionResult{}, err
	}

	result := domain.RateConversionResult{EffectiveAnnualRate: ear}
	s.store(key, result)
	return result, nil
}

// store writes a result to the cache (no crítico si falla).
func (s *CalculatorService) store(key string, result any) {
	if key == "" {
		return
	}
	encoded, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(key, string(encoded), s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache calculation result: %v", err)
	}
}
