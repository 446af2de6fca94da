// Package catalog holds the static industry template definitions that
// drive the sizing questionnaire. Templates are pure data: lookup and
// validation only, no calculation logic (that lives in pkg/core/baseline).
package catalog

// ImpactType declares how a questionnaire answer contributes to the
// facility power baseline.
type ImpactType string

const (
	// ImpactMultiplier contributes value * Coefficient, where the
	// coefficient is expressed in MW per input unit (e.g. MW per room).
	ImpactMultiplier ImpactType = "multiplier"

	// ImpactPowerAdd contributes value * Coefficient / 1000, where the
	// coefficient is expressed in kW per input unit (e.g. kW per charger).
	ImpactPowerAdd ImpactType = "power_add"

	// ImpactFactor never contributes to the power total. Factor answers
	// inform downstream classification (grid reliability, operating
	// profile) and validation only.
	ImpactFactor ImpactType = "factor"

	// ImpactNone marks a direct user override of the final answer
	// ("I already know my peak load"). A non-zero value short-circuits
	// the coefficient-based computation entirely.
	ImpactNone ImpactType = "none"
)

// Option is one choice of a select-type question.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldSpec describes a single questionnaire input for an industry.
type FieldSpec struct {
	Key         string     `json:"key"`
	Question    string     `json:"question"`
	Impact      ImpactType `json:"impact"`
	Coefficient float64    `json:"coefficient"`           // multiplier: MW/unit, power_add: kW/unit, else 0
	Unit        string     `json:"unit,omitempty"`
	Required    bool       `json:"required"`
	Default     float64    `json:"default,omitempty"`     // numeric default (0 = unanswered)
	DefaultText string     `json:"defaultText,omitempty"` // default for select questions
	Options     []Option   `json:"options,omitempty"`     // non-nil for select questions
	HelpText    string     `json:"helpText,omitempty"`
}

// Contributes reports whether answers to this field feed the numeric
// power accumulation.
func (f FieldSpec) Contributes() bool {
	return f.Impact == ImpactMultiplier || f.Impact == ImpactPowerAdd
}

// IndustryTemplate is one of the supported facility categories.
type IndustryTemplate struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Aliases            []string    `json:"aliases,omitempty"`
	BaseLoadKW         float64     `json:"baseLoadKW"` // informational floor, never summed
	DefaultDurationHrs float64     `json:"defaultDurationHours"`
	Fields             []FieldSpec `json:"fields"`
}

// ScaleFields returns the fields that drive facility power
// (multiplier and power_add). A template may have several independent
// scale drivers; callers must sum all of them, never pick one.
func (t *IndustryTemplate) ScaleFields() []FieldSpec {
	var out []FieldSpec
	for _, f := range t.Fields {
		if f.Contributes() {
			out = append(out, f)
		}
	}
	return out
}

// Field returns the spec for a key, or false when the template does
// not declare it. Answer keys that miss the template are rejected by
// the resolver rather than silently contributing zero.
func (t *IndustryTemplate) Field(key string) (FieldSpec, bool) {
	for _, f := range t.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// OverrideField returns the template's impact-none field (the direct
// peak-load override), if it declares one.
func (t *IndustryTemplate) OverrideField() (FieldSpec, bool) {
	for _, f := range t.Fields {
		if f.Impact == ImpactNone {
			return f, true
		}
	}
	return FieldSpec{}, false
}
