// Package finmath implements the core time-value-of-money formulas:
// present value of a cash-flow series, future value of a principal, and
// conversion of a nominal rate to an effective annual rate.
//
// All rates are decimal fractions, so 0.05 means 5%. Every function
// validates its arguments before touching any arithmetic and reports a
// violated precondition as an error wrapping ErrInvalidInput. Functions
// hold no state and are safe for concurrent use.
package finmath

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is the single failure kind reported by this package.
// Every validation error wraps it, so callers can match with errors.Is
// and read the violated precondition from the message.
var ErrInvalidInput = errors.New("invalid input")

// PresentValue discounts a series of future cash flows at a fixed
// per-period rate and returns their combined value today:
//
//	PV = Σ cashFlows[i] / (1+rate)^(i+1)
//
// The first cash flow occurs one period from now; there is no time-zero
// entry. Individual flows may be negative or zero. The rate is checked
// before the series, so a call violating both preconditions reports the
// rate.
func PresentValue(discountRate float64, cashFlows []float64) (float64, error) {
	if discountRate <= -1 {
		return 0, fmt.Errorf("%w: discount rate must be > -1, got %v", ErrInvalidInput, discountRate)
	}
	if len(cashFlows) == 0 {
		return 0, fmt.Errorf("%w: cash flows must not be empty", ErrInvalidInput)
	}

	base := 1 + discountRate
	pv := 0.0
	for i, cf := range cashFlows {
		pv += cf / math.Pow(base, float64(i+1))
	}
	return pv, nil
}

// FutureValue compounds a principal forward over a whole number of
// periods:
//
//	FV = principal * (1+rate)^periods
//
// Zero periods returns the principal unchanged.
func FutureValue(principal, interestRate float64, periods int) (float64, error) {
	if principal < 0 {
		return 0, fmt.Errorf("%w: principal must be >= 0, got %v", ErrInvalidInput, principal)
	}
	if interestRate <= -1 {
		return 0, fmt.Errorf("%w: interest rate must be > -1, got %v", ErrInvalidInput, interestRate)
	}
	if periods < 0 {
		return 0, fmt.Errorf("%w: periods must be >= 0, got %d", ErrInvalidInput, periods)
	}

	return principal * math.Pow(1+interestRate, float64(periods)), nil
}

// EffectiveAnnualRate converts a nominal annual rate compounded n times
// per year into the rate actually earned over one year:
//
//	EAR = (1 + rate/n)^n - 1
//
// Annual compounding (n == 1) returns the nominal rate unchanged instead
// of routing it through the power formula, so the identity EAR(r, 1) == r
// holds exactly.
func EffectiveAnnualRate(nominalRate float64, compoundingPeriods int) (float64, error) {
	if nominalRate <= -1 {
		return 0, fmt.Errorf("%w: nominal rate must be > -1, got %v", ErrInvalidInput, nominalRate)
	}
	if compoundingPeriods <= 0 {
		return 0, fmt.Errorf("%w: compounding periods must be > 0, got %d", ErrInvalidInput, compoundingPeriods)
	}

	if compoundingPeriods == 1 {
		return nominalRate, nil
	}

	n := float64(compoundingPeriods)
	return math.Pow(1+nominalRate/n, n) - 1, nil
}
