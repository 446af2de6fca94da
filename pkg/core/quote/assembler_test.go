package quote

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bess_quoting/pkg/core/baseline"
	"bess_quoting/pkg/core/gridgap"
	"bess_quoting/pkg/core/pricing"
)

func newTestAssembler(t *testing.T) *Assembler {
	t.Helper()
	pricer, err := pricing.NewStaticResolver(pricing.DefaultTables(), pricing.DefaultRegion, nil)
	require.NoError(t, err)
	return NewAssembler(pricer, pricing.DefaultRegion, 15, 0.08, nil)
}

func TestBuildHotelQuote(t *testing.T) {
	a := newTestAssembler(t)
	q, err := a.Build(context.Background(), nil, Request{
		IndustryKey: "hotel",
		Answers: baseline.AnswerSet{
			"rooms":          150.0,
			"gridConnection": "reliable",
			"gridCapacity":   1.0,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "hotel", q.IndustryID)
	assert.Equal(t, 0.44, q.Baseline.PowerMW)
	assert.Equal(t, 0.44, q.System.BatteryMW)
	assert.Equal(t, 4.0, q.System.BatteryDurationHrs)

	// Reliable 1.0 MW grid covers the 0.44 MW peak: no gap.
	assert.Equal(t, 0.0, q.GridGap.EffectiveRequirementMW)
	assert.Equal(t, 0.0, q.GridGap.GenerationGapMW)
	assert.Equal(t, gridgap.ConfidenceHigh, q.GridGap.Confidence)

	assert.True(t, q.Costs.TotalCost.IsPositive())
	assert.Equal(t, q.Costs.TotalCost.InexactFloat64(), q.Financials.TotalCapex,
		"projection must consume the same cost snapshot the quote carries")
	assert.Equal(t, q.Savings.TotalUSD, q.Financials.AnnualSavings,
		"projection must consume the same savings snapshot the quote carries")
	assert.False(t, math.IsInf(q.Financials.PaybackYears, 0))
	assert.NotEmpty(t, q.Trace)
	assert.NotEmpty(t, q.ID)
}

func TestBuildOffGridEVStation(t *testing.T) {
	a := newTestAssembler(t)
	q, err := a.Build(context.Background(), nil, Request{
		IndustryKey: "ev_charging", // alias, underscore form
		Answers: baseline.AnswerSet{
			"level2Chargers": 100.0,
			"dcFastChargers": 50.0,
			"gridConnection": "off_grid",
		},
		Adjustments: &SizedSystem{SolarMW: 4.0, GeneratorMW: 2.0},
	})
	require.NoError(t, err)

	assert.Equal(t, "ev-charging", q.IndustryID)
	assert.InDelta(t, 9.42, q.Baseline.PeakDemandMW, 1e-9)
	// off-grid: full peak, minus the 6 MW of configured generation
	assert.InDelta(t, 9.42, q.GridGap.EffectiveRequirementMW, 1e-9)
	assert.InDelta(t, 3.42, q.GridGap.GenerationGapMW, 1e-9)

	// adjustments kept the baseline battery but added generation
	assert.Equal(t, 9.42, q.System.BatteryMW)
	assert.Equal(t, 4.0, q.System.SolarMW)
	assert.True(t, q.Costs.SolarCost.IsPositive())
	assert.True(t, q.Costs.GeneratorCost.IsPositive())
}

func TestBuildUnknownIndustryFails(t *testing.T) {
	a := newTestAssembler(t)
	_, err := a.Build(context.Background(), nil, Request{IndustryKey: "bogus-key"})
	var unknown *baseline.UnknownIndustryError
	require.True(t, errors.As(err, &unknown), "expected UnknownIndustryError, got %v", err)
}

func TestBuildFinalRequiresCompleteAnswers(t *testing.T) {
	a := newTestAssembler(t)
	_, err := a.Build(context.Background(), nil, Request{
		IndustryKey: "hotel",
		Answers:     baseline.AnswerSet{"rooms": 150.0},
		Final:       true,
	})
	var invalid *baseline.InvalidAnswerError
	require.True(t, errors.As(err, &invalid), "expected InvalidAnswerError, got %v", err)
}

func TestBuildUsesSessionOverride(t *testing.T) {
	a := newTestAssembler(t)
	lookup := &fakeLookup{value: &baseline.ConfigOverride{
		IndustryID: "hotel", TypicalLoadKW: 900, PreferredDurationHrs: 6,
	}}
	sess := NewSession(lookup, nil)

	// No scale answers yet: the stored typical load produces an
	// immediate provisional figure.
	q, err := a.Build(context.Background(), sess, Request{
		IndustryKey: "hotel",
		Answers:     baseline.AnswerSet{"gridConnection": "reliable"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.9, q.Baseline.PowerMW)
	assert.Equal(t, 6.0, q.Baseline.DurationHrs)
	assert.True(t, q.Baseline.Provisional)
}

func TestBuildRegionFallback(t *testing.T) {
	a := newTestAssembler(t)
	q, err := a.Build(context.Background(), nil, Request{
		IndustryKey: "hotel",
		Answers:     baseline.AnswerSet{"rooms": 150.0},
		Region:      "mars",
	})
	require.NoError(t, err)
	assert.Equal(t, "us", q.Costs.Region, "unknown region must degrade to the default region")
}
