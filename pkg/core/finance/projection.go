// Package finance computes the quote's financial projections: payback,
// ROI, NPV/IRR and the annual savings model feeding them. Every output
// derives from one atomically assembled cost-and-savings snapshot;
// no other code path in the repository computes these figures.
package finance

import (
	"encoding/json"
	"fmt"
	"math"
)

// savingsEpsilon guards the payback division. Savings at or below it
// report the "never" sentinel instead of a negative or absurd payback.
const savingsEpsilon = 1e-9

// YearCashFlow is one row of the multi-year projection.
type YearCashFlow struct {
	Year          int     `json:"year"`
	Net           float64 `json:"net"`
	Cumulative    float64 `json:"cumulative"`
	Discounted    float64 `json:"discounted"`
	CumulativeNPV float64 `json:"cumulativeNPV"`
}

// FinancialResult is a read-only snapshot, regenerated wholesale on
// every recompute and never patched field by field.
type FinancialResult struct {
	TotalCapex    float64 `json:"totalCapex"`
	AnnualSavings float64 `json:"annualSavings"`
	HorizonYears  int     `json:"horizonYears"`
	DiscountRate  float64 `json:"discountRate"`

	// PaybackYears is +Inf when savings are non-positive; JSON
	// marshaling renders that as null with PaybackText "never".
	PaybackYears float64 `json:"-"`
	PaybackText  string  `json:"paybackText"`

	ROIPercent float64 `json:"roiPercent"`
	NPV        float64 `json:"npv"`

	IRRPercent float64 `json:"irrPercent"`
	HasIRR     bool    `json:"hasIRR"`

	// NonPositiveSavings flags the degenerate state loudly instead of
	// letting a misleading number propagate into a customer quote.
	NonPositiveSavings bool `json:"nonPositiveSavings"`

	CashFlows []YearCashFlow `json:"cashFlows"`
}

// MarshalJSON renders the infinite-payback sentinel as null; +Inf is
// not representable in JSON and must never reach a client as a number.
func (r FinancialResult) MarshalJSON() ([]byte, error) {
	type alias FinancialResult
	out := struct {
		alias
		PaybackYears *float64 `json:"paybackYears"`
	}{alias: alias(r)}
	if !math.IsInf(r.PaybackYears, 0) && !math.IsNaN(r.PaybackYears) {
		v := r.PaybackYears
		out.PaybackYears = &v
	}
	return json.Marshal(out)
}

// Project computes the full projection for a capex/savings snapshot.
//
//	payback = capex / savings                (sentinel when savings <= 0)
//	roi%    = (savings*horizon - capex) / capex * 100
//	npv     = -capex + sum_{y=1..H} savings / (1+rate)^y
func Project(totalCapex, annualSavings float64, horizonYears int, discountRate float64) FinancialResult {
	res := FinancialResult{
		TotalCapex:    totalCapex,
		AnnualSavings: annualSavings,
		HorizonYears:  horizonYears,
		DiscountRate:  discountRate,
	}

	if annualSavings > savingsEpsilon && totalCapex > 0 {
		res.PaybackYears = totalCapex / annualSavings
		res.PaybackText = formatYears(res.PaybackYears)
	} else {
		res.PaybackYears = math.Inf(1)
		res.PaybackText = "never"
		res.NonPositiveSavings = annualSavings <= savingsEpsilon
	}

	if totalCapex > 0 {
		res.ROIPercent = ((annualSavings * float64(horizonYears)) - totalCapex) / totalCapex * 100
	}

	res.CashFlows = make([]YearCashFlow, 0, horizonYears+1)
	cumulative := -totalCapex
	npv := -totalCapex
	res.CashFlows = append(res.CashFlows, YearCashFlow{
		Year: 0, Net: -totalCapex, Cumulative: cumulative,
		Discounted: -totalCapex, CumulativeNPV: npv,
	})
	for y := 1; y <= horizonYears; y++ {
		discounted := annualSavings / math.Pow(1+discountRate, float64(y))
		cumulative += annualSavings
		npv += discounted
		res.CashFlows = append(res.CashFlows, YearCashFlow{
			Year: y, Net: annualSavings, Cumulative: cumulative,
			Discounted: discounted, CumulativeNPV: npv,
		})
	}
	res.NPV = npv

	if irr, ok := internalRateOfReturn(totalCapex, annualSavings, horizonYears); ok {
		res.IRRPercent = irr * 100
		res.HasIRR = true
	}
	return res
}

func formatYears(y float64) string {
	return fmt.Sprintf("%.1f years", y)
}

// internalRateOfReturn solves NPV(r) = 0 for a level annuity by
// bisection. No solution exists when the undiscounted flows never turn
// positive, in which case ok is false and the caller omits IRR.
func internalRateOfReturn(capex, savings float64, years int) (float64, bool) {
	if capex <= 0 || savings <= savingsEpsilon || years <= 0 {
		return 0, false
	}
	npvAt := func(r float64) float64 {
		v := -capex
		for y := 1; y <= years; y++ {
			v += savings / math.Pow(1+r, float64(y))
		}
		return v
	}

	lo, hi := -0.95, 10.0
	if npvAt(lo) <= 0 {
		// Even a deeply negative rate cannot zero the NPV; the flows
		// never recover the capex.
		return 0, false
	}
	if npvAt(hi) >= 0 {
		// IRR beyond 1000%: cap at the bracket edge.
		return hi, true
	}
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2
		if npvAt(mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, true
}
