// Package gridgap reconciles a facility's peak demand against its grid
// connection to report how much on-site generation is still needed.
// The analysis is advisory and side-effect-free: it is recomputed
// wholesale on every input change and is never the source of truth for
// battery sizing.
package gridgap

import "strings"

// Reliability classifies the grid connection, mirroring the
// questionnaire's gridConnection options.
type Reliability string

const (
	ReliabilityUnknown    Reliability = ""
	ReliabilityReliable   Reliability = "reliable"
	ReliabilityUnreliable Reliability = "unreliable"
	ReliabilityLimited    Reliability = "limited"
	ReliabilityOffGrid    Reliability = "off_grid"
	ReliabilityMicrogrid  Reliability = "microgrid"
)

// ParseReliability accepts the questionnaire values plus historical
// spellings ("off-grid", "offgrid"). Unrecognized input maps to
// ReliabilityUnknown, which the analyzer treats conservatively.
func ParseReliability(s string) Reliability {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "reliable":
		return ReliabilityReliable
	case "unreliable":
		return ReliabilityUnreliable
	case "limited":
		return ReliabilityLimited
	case "off_grid", "offgrid":
		return ReliabilityOffGrid
	case "microgrid":
		return ReliabilityMicrogrid
	}
	return ReliabilityUnknown
}

// Confidence grades how well-specified the grid inputs were.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Generation is the currently configured on-site generation mix.
type Generation struct {
	SolarMW     float64 `json:"solarMW"`
	WindMW      float64 `json:"windMW"`
	GeneratorMW float64 `json:"generatorMW"`
}

// TotalMW sums the configured generation.
func (g Generation) TotalMW() float64 {
	return g.SolarMW + g.WindMW + g.GeneratorMW
}

// Input carries everything the analysis reads. GridCapacityMW is nil
// when the user has not specified a capacity.
type Input struct {
	PeakDemandMW   float64
	GridCapacityMW *float64
	Reliability    Reliability
	Generation     Generation
}

// Result is the full gap report. At most one of GenerationGapMW and
// GenerationSurplusMW is non-zero.
type Result struct {
	EffectiveRequirementMW float64    `json:"effectiveRequirementMW"`
	TotalGenerationMW      float64    `json:"totalGenerationMW"`
	GenerationGapMW        float64    `json:"generationGapMW"`
	GenerationSurplusMW    float64    `json:"generationSurplusMW"`
	Confidence             Confidence `json:"confidence"`
}

// Analyze computes the generation requirement left after the grid
// covers what it can.
//
// A reliable or limited grid with a known capacity covers up to that
// capacity. Everything else (unreliable, off-grid, microgrid, an
// unknown reliability, or an unspecified capacity) cannot be relied
// on, so the full peak must be generable on site.
func Analyze(in Input) Result {
	var effective float64
	switch {
	case in.PeakDemandMW <= 0:
		effective = 0
	case in.GridCapacityMW != nil &&
		(in.Reliability == ReliabilityReliable || in.Reliability == ReliabilityLimited):
		effective = in.PeakDemandMW - *in.GridCapacityMW
		if effective < 0 {
			effective = 0
		}
	default:
		effective = in.PeakDemandMW
	}

	total := in.Generation.TotalMW()
	gap := effective - total
	surplus := total - effective
	if gap < 0 {
		gap = 0
	}
	if surplus < 0 {
		surplus = 0
	}

	return Result{
		EffectiveRequirementMW: effective,
		TotalGenerationMW:      total,
		GenerationGapMW:        gap,
		GenerationSurplusMW:    surplus,
		Confidence:             confidence(in),
	}
}

func confidence(in Input) Confidence {
	answered := 0
	if in.GridCapacityMW != nil {
		answered++
	}
	if in.Reliability != ReliabilityUnknown {
		answered++
	}
	switch answered {
	case 2:
		return ConfidenceHigh
	case 1:
		return ConfidenceMedium
	}
	return ConfidenceLow
}
