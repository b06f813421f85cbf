package http

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tvm-api/domain"
	"tvm-api/repository"
	"tvm-api/service"
)

func newCalculatorHandler() *CalculatorHandler {
	cache := repository.NewMemoryCache()
	calculator := service.NewCalculatorService(cache, time.Minute)
	return NewCalculatorHandler(calculator)
}

func TestPresentValueHandler_OK(t *testing.T) {

	handler := newCalculatorHandler()

	body := []byte(`{
		"discount_rate": 0.05,
		"cash_flows": [100, 100, 100]
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/tvm/present-value",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()

	handler.PresentValue(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result domain.PresentValueResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if math.Abs(result.PresentValue-272.32) > 0.01 {
		t.Errorf("expected ~272.32, got %f", result.PresentValue)
	}
}

func TestPresentValueHandler_MethodNotAllowed(t *testing.T) {

	handler := newCalculatorHandler()

	req := httptest.NewRequest(http.MethodGet, "/tvm/present-value", nil)
	w := httptest.NewRecorder()

	handler.PresentValue(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestPresentValueHandler_BadRequest(t *testing.T) {

	handler := newCalculatorHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/tvm/present-value",
		bytes.NewBuffer([]byte(`{invalid-json}`)),
	)

	w := httptest.NewRecorder()
	handler.PresentValue(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestPresentValueHandler_EmptySeries(t *testing.T) {

	handler := newCalculatorHandler()

	body := []byte(`{
		"discount_rate": 0.05,
		"cash_flows": []
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/tvm/present-value",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()
	handler.PresentValue(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an empty series, got %d", w.Code)
	}
}

func TestFutureValueHandler_OK(t *testing.T) {

	handler := newCalculatorHandler()

	body := []byte(`{
		"principal": 1000,
		"interest_rate": 0.05,
		"periods": 10
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/tvm/future-value",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()

	handler.FutureValue(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result domain.FutureValueResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if math.Abs(result.FutureValue-1628.89) > 0.01 {
		t.Errorf("expected ~1628.89, got %f", result.FutureValue)
	}
}

func TestFutureValueHandler_NegativePrincipal(t *testing.T) {

	handler := newCalculatorHandler()

	body := []byte(`{
		"principal": -1000,
		"interest_rate": 0.05,
		"periods": 10
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/tvm/future-value",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()
	handler.FutureValue(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestEffectiveRateHandler_OK(t *testing.T) {

	handler := newCalculatorHandler()

	body := []byte(`{
		"nominal_rate": 0.12,
		"compounding_periods": 12
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/tvm/effective-rate",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()

	handler.EffectiveRate(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result domain.RateConversionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if math.Abs(result.EffectiveAnnualRate-0.1268) > 0.0001 {
		t.Errorf("expected ~0.1268, got %f", result.EffectiveAnnualRate)
	}
}

func TestEffectiveRateHandler_ZeroPeriods(t *testing.T) {

	handler := newCalculatorHandler()

	body := []byte(`{
		"nominal_rate": 0.10,
		"compounding_periods": 0
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/tvm/effective-rate",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()
	handler.EffectiveRate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
