package advisor

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"bess_quoting/pkg/core/quote"
	"bess_quoting/pkg/core/utils"
)

// Suggestion is a proposed generation mix for closing a gap. Source
// records whether a model or the heuristic produced it.
type Suggestion struct {
	SolarMW     float64 `json:"solarMW"`
	WindMW      float64 `json:"windMW"`
	GeneratorMW float64 `json:"generatorMW"`
	Rationale   string  `json:"rationale"`
	Source      string  `json:"source"` // "model" or "heuristic"
}

// TotalMW sums the proposed additions.
func (s *Suggestion) TotalMW() float64 {
	return s.SolarMW + s.WindMW + s.GeneratorMW
}

// Advisor proposes generation mixes. A nil provider runs heuristic-only.
type Advisor struct {
	provider Provider
	log      *logrus.Entry
}

func New(provider Provider, log *logrus.Logger) *Advisor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Advisor{
		provider: provider,
		log:      log.WithField("component", "advisor"),
	}
}

const systemPrompt = `You are a battery energy storage sizing assistant.
Given a facility's generation gap, propose how to split new generation
between solar, wind and a gas generator. Respond with a single JSON
object: {"solarMW": n, "windMW": n, "generatorMW": n, "rationale": "markdown"}.
The three capacities must sum to at least the gap. Prefer solar for
daytime-heavy loads, and include enough generator capacity to firm the
supply for off-grid or unreliable-grid sites.`

// SuggestMix proposes additional generation to close the quote's gap.
// Model failures degrade to the heuristic; the error return is only
// for broken inputs (nil quote).
func (a *Advisor) SuggestMix(ctx context.Context, q *quote.Quote) (*Suggestion, error) {
	if q == nil {
		return nil, fmt.Errorf("advisor: nil quote")
	}

	gap := q.GridGap.GenerationGapMW
	if gap <= 0 {
		return &Suggestion{
			Rationale: "No generation gap: the grid and configured generation already cover the facility peak.",
			Source:    "heuristic",
		}, nil
	}

	if a.provider != nil {
		if s, err := a.askModel(ctx, q, gap); err == nil {
			return s, nil
		} else {
			a.log.WithField("error", err).Warn("model suggestion failed, using heuristic")
		}
	}
	return heuristicMix(q, gap), nil
}

func (a *Advisor) askModel(ctx context.Context, q *quote.Quote, gap float64) (*Suggestion, error) {
	prompt := fmt.Sprintf(
		"Facility: %s. Peak demand: %.2f MW. Generation gap: %.2f MW. "+
			"Grid confidence: %s. Current mix: %.2f MW solar, %.2f MW wind, %.2f MW generator. "+
			"Operating hours/day: %v.",
		q.IndustryID, q.Baseline.PeakDemandMW, gap, q.GridGap.Confidence,
		q.System.SolarMW, q.System.WindMW, q.System.GeneratorMW,
		q.Baseline.Factors["operatingHours"],
	)

	raw, err := a.provider.GenerateResponse(ctx, prompt, systemPrompt, true)
	if err != nil {
		return nil, err
	}

	var s Suggestion
	if err := utils.DecodeLenientJSON(utils.StripMarkdownFence(raw), &s); err != nil {
		return nil, fmt.Errorf("unparseable model response: %w", err)
	}
	if s.SolarMW < 0 || s.WindMW < 0 || s.GeneratorMW < 0 {
		return nil, fmt.Errorf("model proposed negative capacity: %+v", s)
	}
	if s.TotalMW() < gap {
		return nil, fmt.Errorf("model proposal %.2f MW does not close the %.2f MW gap", s.TotalMW(), gap)
	}
	if !utils.ValidMarkdown(s.Rationale) {
		return nil, fmt.Errorf("model rationale is not renderable markdown")
	}
	s.Source = "model"
	return &s, nil
}

// heuristicMix is the deterministic fallback: half solar, a fifth
// wind, and the rest as firm generator capacity, each rounded up to
// 0.01 MW so the gap always closes.
func heuristicMix(q *quote.Quote, gap float64) *Suggestion {
	roundUp := func(mw float64) float64 {
		return math.Ceil(mw*100) / 100
	}
	solar := roundUp(gap * 0.5)
	wind := roundUp(gap * 0.2)
	gen := roundUp(gap - solar - wind)
	if gen < 0 {
		gen = 0
	}
	return &Suggestion{
		SolarMW:     solar,
		WindMW:      wind,
		GeneratorMW: gen,
		Rationale: fmt.Sprintf(
			"Split the %.2f MW gap into %.2f MW solar, %.2f MW wind and %.2f MW generator. "+
				"Solar carries the daytime load, wind diversifies, and the generator firms "+
				"capacity for a %s-confidence grid assessment.",
			gap, solar, wind, gen, q.GridGap.Confidence),
		Source: "heuristic",
	}
}
