// Package baseline converts heterogeneous industry questionnaire
// answers into a canonical power/energy sizing. It is the single
// calculation path for facility sizing: every surface that needs a
// number calls Resolve (or ResolveFinal), never a private formula.
package baseline

import (
	"fmt"
	"math"
	"strings"

	"bess_quoting/pkg/core/catalog"
)

const (
	// MinPowerMW is the sane minimum system size, applied after rounding.
	MinPowerMW = 0.2

	// FallbackDurationHrs applies when neither a config override nor the
	// template declares a discharge duration.
	FallbackDurationHrs = 4
)

// ConfigOverride is an admin-editable record that takes precedence
// over template coefficients while the primary scale answers are still
// empty. Owned by the external configuration store; absence is normal.
type ConfigOverride struct {
	IndustryID           string
	TypicalLoadKW        float64
	PreferredDurationHrs float64
}

// TraceEntry records one contribution to the power figure.
type TraceEntry struct {
	Field          string
	ContributionMW float64
	RunningMW      float64
	Note           string
}

// Baseline is the resolver output: an immutable power/energy sizing
// with a full calculation trace. A new Baseline is computed whenever
// the answer set changes; it is never patched in place.
type Baseline struct {
	IndustryID   string
	PowerMW      float64 // recommended battery/inverter rating
	DurationHrs  float64
	EnergyMWh    float64 // always PowerMW * DurationHrs
	PeakDemandMW float64 // facility coincident peak, pre-floor
	Provisional  bool    // true when required answers are still missing
	Factors      map[string]interface{}
	Trace        []TraceEntry
}

// TraceText renders the calculation trace for display ("why did we
// recommend this size") and for quote audit logs.
func (b *Baseline) TraceText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s sizing:\n", b.IndustryID)
	for _, e := range b.Trace {
		if e.Note != "" {
			fmt.Fprintf(&sb, "  %-24s %+.4f MW -> %.4f MW (%s)\n", e.Field, e.ContributionMW, e.RunningMW, e.Note)
		} else {
			fmt.Fprintf(&sb, "  %-24s %+.4f MW -> %.4f MW\n", e.Field, e.ContributionMW, e.RunningMW)
		}
	}
	fmt.Fprintf(&sb, "  => %.2f MW x %.1f h = %.2f MWh", b.PowerMW, b.DurationHrs, b.EnergyMWh)
	return sb.String()
}

// round2 rounds to 0.01 MW (10 kW) granularity. One-decimal rounding
// is forbidden here: it once collapsed a 0.44 MW hotel to 0.4 MW.
func round2(p float64) float64 {
	return math.Round(p*100) / 100
}

// Resolve computes a best-effort baseline from a possibly partial
// answer set. Unanswered scale fields contribute zero; the result is
// marked Provisional when required answers are missing. The only hard
// failure is an unresolvable industry key.
func Resolve(industryKey string, answers AnswerSet, override *ConfigOverride) (*Baseline, error) {
	tmpl, ok := catalog.Lookup(industryKey)
	if !ok {
		return nil, &UnknownIndustryError{Key: industryKey}
	}

	b := &Baseline{
		IndustryID: tmpl.ID,
		Factors:    make(map[string]interface{}),
	}

	// Stash factor answers regardless of how power is determined; the
	// gap analyzer and validation read them.
	for _, f := range tmpl.Fields {
		if f.Impact != catalog.ImpactFactor {
			continue
		}
		if v, present := answers[f.Key]; present {
			b.Factors[f.Key] = v
		}
	}

	rawMW, trace := accumulatePower(tmpl, answers, override)
	b.Trace = trace

	b.DurationHrs = duration(tmpl, override)
	b.PeakDemandMW = round2(rawMW)
	b.PowerMW = round2(rawMW)
	if b.PowerMW < MinPowerMW {
		b.PowerMW = MinPowerMW
		b.Trace = append(b.Trace, TraceEntry{
			Field:          "minimum",
			ContributionMW: MinPowerMW - b.PeakDemandMW,
			RunningMW:      MinPowerMW,
			Note:           fmt.Sprintf("floor at %.1f MW", MinPowerMW),
		})
	}
	// Energy is derived last and never stored independently of its inputs.
	b.EnergyMWh = b.PowerMW * b.DurationHrs

	b.Provisional = len(missingRequired(tmpl, answers)) > 0
	return b, nil
}

// ResolveFinal is Resolve with completeness enforcement: a final
// (quotable) baseline requires every required field answered and no
// answer keys outside the template. Answer keys that miss the template
// were historically the silent-zero-contribution bug; here they fail.
func ResolveFinal(industryKey string, answers AnswerSet, override *ConfigOverride) (*Baseline, error) {
	tmpl, ok := catalog.Lookup(industryKey)
	if !ok {
		return nil, &UnknownIndustryError{Key: industryKey}
	}

	invalid := &InvalidAnswerError{Industry: tmpl.ID}
	invalid.Missing = missingRequired(tmpl, answers)
	for key := range answers {
		if _, declared := tmpl.Field(key); !declared {
			invalid.UnknownKeys = append(invalid.UnknownKeys, key)
		}
	}
	if len(invalid.Missing) > 0 || len(invalid.UnknownKeys) > 0 {
		return nil, invalid
	}

	b, err := Resolve(industryKey, answers, override)
	if err != nil {
		return nil, err
	}
	b.Provisional = false
	return b, nil
}

// accumulatePower walks the template fields in declaration order and
// returns the raw (unrounded) power figure plus its trace.
func accumulatePower(tmpl *catalog.IndustryTemplate, answers AnswerSet, override *ConfigOverride) (float64, []TraceEntry) {
	// A non-zero impact-none answer is user-declared ground truth and
	// overrides the entire computation, config override included.
	if f, ok := tmpl.OverrideField(); ok {
		if v, answered := answers.Number(f.Key); answered && v > 0 {
			return v, []TraceEntry{{
				Field:          f.Key,
				ContributionMW: v,
				RunningMW:      v,
				Note:           "user-declared peak, overrides calculation",
			}}
		}
	}

	// Config override short-circuit: while no scale answer has arrived
	// yet, a stored typical load gives the user an immediate non-zero
	// figure instead of an empty screen.
	if override != nil && override.TypicalLoadKW > 0 && !hasScaleAnswer(tmpl, answers) {
		mw := override.TypicalLoadKW / 1000
		return mw, []TraceEntry{{
			Field:          "configOverride",
			ContributionMW: mw,
			RunningMW:      mw,
			Note:           fmt.Sprintf("typical load %.0f kW from configuration store", override.TypicalLoadKW),
		}}
	}

	var (
		total float64
		trace []TraceEntry
	)
	for _, f := range tmpl.Fields {
		if !f.Contributes() {
			continue
		}
		v, answered := answers.Number(f.Key)
		if !answered || v == 0 {
			continue
		}
		var contribution float64
		switch f.Impact {
		case catalog.ImpactMultiplier:
			contribution = v * f.Coefficient // coefficient in MW/unit
		case catalog.ImpactPowerAdd:
			contribution = v * f.Coefficient / 1000 // coefficient in kW/unit
		}
		total += contribution
		trace = append(trace, TraceEntry{
			Field:          f.Key,
			ContributionMW: contribution,
			RunningMW:      total,
			Note:           fmt.Sprintf("%v %s x %v", v, f.Unit, f.Coefficient),
		})
	}
	if len(trace) == 0 {
		// The trace is never empty, even before any answer arrives.
		trace = append(trace, TraceEntry{Field: "none", Note: "no scale answers yet"})
	}
	return total, trace
}

func hasScaleAnswer(tmpl *catalog.IndustryTemplate, answers AnswerSet) bool {
	for _, f := range tmpl.ScaleFields() {
		if v, ok := answers.Number(f.Key); ok && v > 0 {
			return true
		}
	}
	return false
}

func missingRequired(tmpl *catalog.IndustryTemplate, answers AnswerSet) []string {
	var missing []string
	for _, f := range tmpl.Fields {
		if !f.Required {
			continue
		}
		if _, ok := answers[f.Key]; !ok {
			missing = append(missing, f.Key)
		}
	}
	return missing
}

func duration(tmpl *catalog.IndustryTemplate, override *ConfigOverride) float64 {
	if override != nil && override.PreferredDurationHrs > 0 {
		return override.PreferredDurationHrs
	}
	if tmpl.DefaultDurationHrs > 0 {
		return tmpl.DefaultDurationHrs
	}
	return FallbackDurationHrs
}
