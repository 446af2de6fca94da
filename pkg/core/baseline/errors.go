package baseline

import (
	"fmt"
	"strings"
)

// UnknownIndustryError is fatal to the current operation: an industry
// key (canonical or alias) that resolves to nothing must surface to
// the caller. The legacy behavior of falling through to a generic
// 2.0 MW template produced wildly wrong quotes for whole facility
// categories, so there is deliberately no default path here.
type UnknownIndustryError struct {
	Key string
}

func (e *UnknownIndustryError) Error() string {
	return fmt.Sprintf("unknown industry %q: no template or alias matches", e.Key)
}

// InvalidAnswerError reports an answer set that cannot produce a final
// baseline: required fields missing, or answer keys the template does
// not declare. Recoverable: the caller should re-prompt, not crash.
type InvalidAnswerError struct {
	Industry    string
	Missing     []string // required fields with no answer
	UnknownKeys []string // answer keys the template does not declare
}

func (e *InvalidAnswerError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required: "+strings.Join(e.Missing, ", "))
	}
	if len(e.UnknownKeys) > 0 {
		parts = append(parts, "unknown keys: "+strings.Join(e.UnknownKeys, ", "))
	}
	return fmt.Sprintf("invalid answers for %s (%s)", e.Industry, strings.Join(parts, "; "))
}
