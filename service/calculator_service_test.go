package service

import (
	"errors"
	"math"
	"testing"
	"time"

	"tvm-api/domain"
	"tvm-api/finmath"
)

type MockCache struct {
	Data       map[string]string
	GetCalled  bool
	SetCalled  bool
	ForceError bool
}

func NewMockCache() *MockCache {
	return &MockCache{Data: map[string]string{}}
}

func (m *MockCache) Get(key string) (string, bool) {
	m.GetCalled = true
	value, ok := m.Data[key]
	return value, ok
}

func (m *MockCache) Set(key string, value string, ttl time.Duration) error {
	m.SetCalled = true
	if m.ForceError {
		return errors.New("set error")
	}
	m.Data[key] = value
	return nil
}

func TestCalculatePresentValue_LevelAnnuity(t *testing.T) {

	mockCache := NewMockCache()
	service := NewCalculatorService(mockCache, time.Minute)

	input := domain.PresentValueInput{
		DiscountRate: 0.05,
		CashFlows:    []float64{100, 100, 100},
	}

	result, err := service.CalculatePresentValue(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(result.PresentValue-272.32) > 0.01 {
		t.Errorf("expected ~272.32, got %f", result.PresentValue)
	}

	if !mockCache.SetCalled {
		t.Errorf("expected the result to be cached")
	}
}

func TestCalculatePresentValue_ServedFromCache(t *testing.T) {

	mockCache := NewMockCache()
	service := NewCalculatorService(mockCache, time.Minute)

	input := domain.PresentValueInput{
		DiscountRate: 0.05,
		CashFlows:    []float64{100, 100, 100},
	}

	if _, err := service.CalculatePresentValue(input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Sustituir el valor almacenado: si la segunda llamada lo devuelve,
	// vino de la caché y no del recálculo
	for key := range mockCache.Data {
		mockCache.Data[key] = `{"present_value":123.456}`
	}

	result, err := service.CalculatePresentValue(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.PresentValue != 123.456 {
		t.Errorf("expected the cached value 123.456, got %v", result.PresentValue)
	}
}

func TestCalculatePresentValue_CorruptCacheEntryRecalculates(t *testing.T) {

	mockCache := NewMockCache()
	service := NewCalculatorService(mockCache, time.Minute)

	input := domain.PresentValueInput{
		DiscountRate: 0.05,
		CashFlows:    []float64{100, 100, 100},
	}

	if _, err := service.CalculatePresentValue(input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for key := range mockCache.Data {
		mockCache.Data[key] = "not json"
	}

	result, err := service.CalculatePresentValue(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(result.PresentValue-272.32) > 0.01 {
		t.Errorf("expected a recalculated ~272.32, got %f", result.PresentValue)
	}
}

func TestCalculatePresentValue_CacheErrorNotFatal(t *testing.T) {

	mockCache := NewMockCache()
	mockCache.ForceError = true
	service := NewCalculatorService(mockCache, time.Minute)

	input := domain.PresentValueInput{
		DiscountRate: 0.06,
		CashFlows:    []float64{50, 50, 1050},
	}

	result, err := service.CalculatePresentValue(input)

	if err != nil {
		t.Fatalf("a cache failure must not fail the calculation: %v", err)
	}

	if math.Abs(result.PresentValue-973.27) > 0.01 {
		t.Errorf("expected ~973.27, got %f", result.PresentValue)
	}
}

func TestCalculatePresentValue_InvalidInputPropagated(t *testing.T) {

	mockCache := NewMockCache()
	service := NewCalculatorService(mockCache, time.Minute)

	input := domain.PresentValueInput{
		DiscountRate: 0.05,
		CashFlows:    []float64{},
	}

	_, err := service.CalculatePresentValue(input)

	if !errors.Is(err, finmath.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	if mockCache.SetCalled {
		t.Errorf("a failed calculation must not be cached")
	}
}

func TestCalculatePresentValue_TooManyCashFlows(t *testing.T) {

	mockCache := NewMockCache()
	service := NewCalculatorService(mockCache, time.Minute)

	input := domain.PresentValueInput{
		DiscountRate: 0.05,
		CashFlows:    make([]float64, MaxCashFlowEntries+1),
	}

	_, err := service.CalculatePresentValue(input)

	if err == nil {
		t.Errorf("expected error for an oversized series")
	}

	if mockCache.GetCalled {
		t.Errorf("the cache should not be consulted for rejected input")
	}
}

func TestCalculateFutureValue_TenYearGrowth(t *testing.T) {

	mockCache := NewMockCache()
	service := NewCalculatorService(mockCache, time.Minute)

	input := domain.FutureValueInput{
		Principal:    1000,
		InterestRate: 0.05,
		Periods:      10,
	}

	result, err := service.CalculateFutureValue(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(result.FutureValue-1628.89) > 0.01 {
		t.Errorf("expected ~1628.89, got %f", result.FutureValue)
	}
}

func TestCalculateFutureValue_NegativePrincipal(t *testing.T) {

	mockCache := NewMockCache()
	service := NewCalculatorService(mockCache, time.Minute)

	input := domain.FutureValueInput{
		Principal:    -1000,
		InterestRate: 0.05,
		Periods:      10,
	}

	_, err := service.CalculateFutureValue(input)

	if !errors.Is(err, finmath.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCalculateFutureValue_TooManyPeriods(t *testing.T) {

	mockCache := NewMockCache()
	service := NewCalculatorService(mockCache, time.Minute)

	input := domain.FutureValueInput{
		Principal:    1000,
		InterestRate: 0.05,
		Periods:      MaxFutureValuePeriods + 1,
	}

	_, err := service.CalculateFutureValue(input)

	if err == nil {
		t.Errorf("expected error for an oversized term")
	}
}

func TestConvertRate_AnnualIsIdentity(t *testing.T) {

	mockCache := NewMockCache()
	service := NewCalculatorService(mockCache, time.Minute)

	input := domain.RateConversionInput{
		NominalRate:        0.0375,
		CompoundingPeriods: 1,
	}

	result, err := service.ConvertRate(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.EffectiveAnnualRate != 0.0375 {
		t.Errorf("expected the nominal rate unchanged, got %v", result.EffectiveAnnualRate)
	}
}

func TestConvertRate_MonthlyCompounding(t *testing.T) {

	mockCache := NewMockCache()
	service := NewCalculatorService(mockCache, time.Minute)

	input := domain.RateConversionInput{
		NominalRate:        0.12,
		CompoundingPeriods: 12,
	}

	result, err := service.ConvertRate(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(result.EffectiveAnnualRate-0.1268) > 0.0001 {
		t.Errorf("expected ~0.1268, got %f", result.EffectiveAnnualRate)
	}
}

func TestConvertRate_ZeroPeriods(t *testing.T) {

	mockCache := NewMockCache()
	service := NewCalculatorService(mockCache, time.Minute)

	input := domain.RateConversionInput{
		NominalRate:        0.10,
		CompoundingPeriods: 0,
	}

	_, err := service.ConvertRate(input)

	if !errors.Is(err, finmath.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestConvertRate_TooManyPeriods(t *testing.T) {

	mockCache := NewMockCache()
	service := NewCalculatorService(mockCache, time.Minute)

	input := domain.RateConversionInput{
		NominalRate:        0.10,
		CompoundingPeriods: MaxCompoundingPeriods + 1,
	}

	_, err := service.ConvertRate(input)

	if err == nil {
		t.Errorf("expected error for an oversized frequency")
	}
}
