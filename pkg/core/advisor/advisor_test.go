package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bess_quoting/pkg/core/baseline"
	"bess_quoting/pkg/core/gridgap"
	"bess_quoting/pkg/core/quote"
)

type scriptedProvider struct {
	response string
	err      error
}

func (p *scriptedProvider) GenerateResponse(_ context.Context, _, _ string, _ bool) (string, error) {
	return p.response, p.err
}

func gapQuote(gapMW float64) *quote.Quote {
	return &quote.Quote{
		IndustryID: "ev-charging",
		Baseline: &baseline.Baseline{
			IndustryID:   "ev-charging",
			PeakDemandMW: gapMW,
			Factors:      map[string]interface{}{"operatingHours": 24.0},
		},
		GridGap: gridgap.Result{
			EffectiveRequirementMW: gapMW,
			GenerationGapMW:        gapMW,
			Confidence:             gridgap.ConfidenceMedium,
		},
	}
}

func TestHeuristicClosesGap(t *testing.T) {
	a := New(nil, nil)
	s, err := a.SuggestMix(context.Background(), gapQuote(3.42))
	require.NoError(t, err)
	assert.Equal(t, "heuristic", s.Source)
	assert.GreaterOrEqual(t, s.TotalMW(), 3.42, "suggestion must close the gap")
	assert.NotEmpty(t, s.Rationale)
}

func TestNoGapNoAdditions(t *testing.T) {
	a := New(nil, nil)
	s, err := a.SuggestMix(context.Background(), gapQuote(0))
	require.NoError(t, err)
	assert.Zero(t, s.TotalMW())
}

func TestModelProposalAccepted(t *testing.T) {
	p := &scriptedProvider{response: "```json\n{'solarMW': 2.0, 'windMW': 1.0, 'generatorMW': 1.0, 'rationale': 'Mostly **solar** for a daytime charging profile.'}\n```"}
	a := New(p, nil)
	s, err := a.SuggestMix(context.Background(), gapQuote(3.42))
	require.NoError(t, err)
	assert.Equal(t, "model", s.Source)
	assert.Equal(t, 2.0, s.SolarMW)
	assert.Equal(t, 4.0, s.TotalMW())
}

func TestModelFailureFallsBackToHeuristic(t *testing.T) {
	cases := []*scriptedProvider{
		{err: errors.New("rate limited")},
		{response: "I am unable to size generation equipment."},
		{response: `{"solarMW": -5, "windMW": 0, "generatorMW": 10, "rationale": "bad"}`},
		{response: `{"solarMW": 0.1, "windMW": 0, "generatorMW": 0, "rationale": "too small"}`},
	}
	for i, p := range cases {
		a := New(p, nil)
		s, err := a.SuggestMix(context.Background(), gapQuote(3.42))
		require.NoError(t, err, "case %d", i)
		assert.Equal(t, "heuristic", s.Source, "case %d", i)
		assert.GreaterOrEqual(t, s.TotalMW(), 3.42, "case %d", i)
	}
}

func TestNilQuoteRejected(t *testing.T) {
	a := New(nil, nil)
	_, err := a.SuggestMix(context.Background(), nil)
	assert.Error(t, err)
}
