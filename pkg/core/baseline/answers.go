package baseline

// AnswerSet maps questionnaire field keys to user-supplied values
// (numbers, strings, or booleans). One answer set exists per
// quote-in-progress; the resolver reads it and never mutates it.
type AnswerSet map[string]interface{}

// Number returns the answer as a float64. JSON decoding and YAML
// decoding hand numeric answers over as different concrete types, so
// all of them are accepted here.
func (a AnswerSet) Number(key string) (float64, bool) {
	v, ok := a[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Text returns the answer as a string.
func (a AnswerSet) Text(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// Bool returns the answer as a bool.
func (a AnswerSet) Bool(key string) (bool, bool) {
	b, ok := a[key].(bool)
	return b, ok
}

// Clone returns a shallow copy. Callers that snapshot an in-progress
// answer set before a recompute use this to keep the resolver input
// immutable.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
