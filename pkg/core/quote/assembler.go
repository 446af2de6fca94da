// Package quote composes baseline sizing, grid gap analysis, pricing
// and financial projection into one immutable quote snapshot. The
// assembler is the single calculation path: the API, the CLI and the
// advisor all obtain their numbers here and nowhere else.
package quote

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bess_quoting/pkg/core/baseline"
	"bess_quoting/pkg/core/finance"
	"bess_quoting/pkg/core/gridgap"
	"bess_quoting/pkg/core/pricing"
)

// SizedSystem is the final, user/AI-adjusted configuration.
type SizedSystem struct {
	BatteryMW          float64 `json:"batteryMW"`
	BatteryDurationHrs float64 `json:"batteryDurationHrs"`
	SolarMW            float64 `json:"solarMW"`
	WindMW             float64 `json:"windMW"`
	GeneratorMW        float64 `json:"generatorMW"`
}

// Generation extracts the generation mix for the gap analyzer.
func (s SizedSystem) Generation() gridgap.Generation {
	return gridgap.Generation{SolarMW: s.SolarMW, WindMW: s.WindMW, GeneratorMW: s.GeneratorMW}
}

// Request describes one quote computation.
type Request struct {
	IndustryKey string              `json:"industry"`
	Answers     baseline.AnswerSet  `json:"answers"`
	Region      string              `json:"region"`
	Adjustments *SizedSystem        `json:"adjustments,omitempty"` // nil: size from baseline
	Rates       *finance.RateContext `json:"rates,omitempty"`
	Horizon     int                 `json:"horizonYears,omitempty"`
	Discount    float64             `json:"discountRate,omitempty"`
	Final       bool                `json:"final,omitempty"` // enforce answer completeness
}

// Quote is an immutable result snapshot. Every recompute produces a
// fresh Quote with a new ID; nothing is patched in place.
type Quote struct {
	ID         string                   `json:"id"`
	CreatedAt  time.Time                `json:"createdAt"`
	IndustryID string                   `json:"industryId"`
	Baseline   *baseline.Baseline       `json:"baseline"`
	GridGap    gridgap.Result           `json:"gridGap"`
	System     SizedSystem              `json:"system"`
	Costs      *pricing.CostBreakdown   `json:"costs"`
	Savings    finance.SavingsBreakdown `json:"savings"`
	Financials finance.FinancialResult  `json:"financials"`
	Trace      string                   `json:"trace"`
}

// Assembler builds quotes. Defaults apply when a request leaves the
// horizon, discount rate, region or tariffs unset.
type Assembler struct {
	pricer          pricing.Resolver
	defaultRegion   string
	defaultHorizon  int
	defaultDiscount float64
	log             *logrus.Entry
}

// NewAssembler wires the assembler. pricer must not be nil.
func NewAssembler(pricer pricing.Resolver, defaultRegion string, horizonYears int, discountRate float64, log *logrus.Logger) *Assembler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Assembler{
		pricer:          pricer,
		defaultRegion:   defaultRegion,
		defaultHorizon:  horizonYears,
		defaultDiscount: discountRate,
		log:             log.WithField("component", "assembler"),
	}
}

// Build runs the full pipeline: baseline -> gap -> pricing ->
// savings -> projection. The session may be nil (no configuration
// store). The one fatal failure is an unresolvable industry; answer
// completeness only fails when the request demands a final quote.
func (a *Assembler) Build(ctx context.Context, sess *Session, req Request) (*Quote, error) {
	override := sess.Override(ctx, req.IndustryKey)

	resolve := baseline.Resolve
	if req.Final {
		resolve = baseline.ResolveFinal
	}
	base, err := resolve(req.IndustryKey, req.Answers, override)
	if err != nil {
		return nil, err
	}

	system := a.sizeSystem(base, req.Adjustments)

	reliability, gridCap := gridFactors(base)
	gap := gridgap.Analyze(gridgap.Input{
		PeakDemandMW:   base.PeakDemandMW,
		GridCapacityMW: gridCap,
		Reliability:    reliability,
		Generation:     system.Generation(),
	})

	region := req.Region
	if region == "" {
		region = a.defaultRegion
	}
	costs, err := a.pricer.PriceSystem(ctx, pricing.SystemSize{
		BatteryMWh:  system.BatteryMW * system.BatteryDurationHrs,
		SolarMW:     system.SolarMW,
		WindMW:      system.WindMW,
		GeneratorMW: system.GeneratorMW,
	}, region)
	if err != nil {
		return nil, err
	}

	rates := finance.DefaultRates()
	if req.Rates != nil {
		rates = *req.Rates
	}
	savings := finance.EstimateAnnualSavings(finance.SavingsInput{
		BatteryMW:          system.BatteryMW,
		BatteryDurationHrs: system.BatteryDurationHrs,
		SolarMW:            system.SolarMW,
		WindMW:             system.WindMW,
		PeakDemandMW:       base.PeakDemandMW,
		GridReliable:       reliability == gridgap.ReliabilityReliable,
	}, rates)

	horizon := req.Horizon
	if horizon <= 0 {
		horizon = a.defaultHorizon
	}
	discount := req.Discount
	if discount <= 0 {
		discount = a.defaultDiscount
	}
	// The projection consumes the cost and savings figures assembled
	// above in this same call, never values from another code path.
	fin := finance.Project(costs.TotalCost.InexactFloat64(), savings.TotalUSD, horizon, discount)

	q := &Quote{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		IndustryID: base.IndustryID,
		Baseline:   base,
		GridGap:    gap,
		System:     system,
		Costs:      costs,
		Savings:    savings,
		Financials: fin,
		Trace:      base.TraceText(),
	}
	a.log.WithFields(logrus.Fields{
		"industry": q.IndustryID,
		"powerMW":  base.PowerMW,
		"capex":    costs.TotalCost,
		"payback":  fin.PaybackText,
	}).Debug("quote assembled")
	return q, nil
}

// sizeSystem merges the baseline with user/AI adjustments. Unset
// battery figures inherit the baseline; generation is whatever the
// adjustments say (zero when none were made).
func (a *Assembler) sizeSystem(base *baseline.Baseline, adj *SizedSystem) SizedSystem {
	sys := SizedSystem{
		BatteryMW:          base.PowerMW,
		BatteryDurationHrs: base.DurationHrs,
	}
	if adj == nil {
		return sys
	}
	if adj.BatteryMW > 0 {
		sys.BatteryMW = adj.BatteryMW
	}
	if adj.BatteryDurationHrs > 0 {
		sys.BatteryDurationHrs = adj.BatteryDurationHrs
	}
	sys.SolarMW = adj.SolarMW
	sys.WindMW = adj.WindMW
	sys.GeneratorMW = adj.GeneratorMW
	return sys
}

// gridFactors pulls the grid questionnaire answers out of the
// baseline's factor stash. A gridCapacity of 0 means unspecified.
func gridFactors(base *baseline.Baseline) (gridgap.Reliability, *float64) {
	reliability := gridgap.ReliabilityUnknown
	if v, ok := base.Factors["gridConnection"].(string); ok {
		reliability = gridgap.ParseReliability(v)
	}

	var gridCap *float64
	switch v := base.Factors["gridCapacity"].(type) {
	case float64:
		if v > 0 {
			gridCap = &v
		}
	case int:
		if v > 0 {
			f := float64(v)
			gridCap = &f
		}
	}
	return reliability, gridCap
}
