// Package utils holds small parsing helpers for model output: lenient
// JSON decoding and markdown cleanup for advisor rationales.
package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

// DecodeLenientJSON decodes model output into schema, trying
// progressively more forgiving strategies: strict JSON, then automated
// repair (unquoted keys, trailing commas, code fences), then Hjson.
func DecodeLenientJSON(input string, schema interface{}) error {
	if err := json.Unmarshal([]byte(input), schema); err == nil {
		return nil
	}

	if repaired, err := jsonrepair.RepairJSON(input); err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return nil
		}
	}

	if err := hjson.Unmarshal([]byte(input), schema); err == nil {
		return nil
	}

	return fmt.Errorf("lenient decode: no strategy produced valid JSON")
}

// StripMarkdownFence removes a wrapping ``` code fence, with or
// without a language tag, and trims whitespace.
func StripMarkdownFence(input string) string {
	cleaned := strings.TrimSpace(input)
	if !strings.HasPrefix(cleaned, "```") || !strings.HasSuffix(cleaned, "```") {
		return cleaned
	}
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimPrefix(cleaned, "```")
	// drop a language tag on the opening fence
	if idx := strings.IndexByte(cleaned, '\n'); idx >= 0 {
		first := strings.TrimSpace(cleaned[:idx])
		if len(first) > 0 && !strings.ContainsAny(first, " \t{[") {
			cleaned = cleaned[idx+1:]
		}
	}
	return strings.TrimSpace(cleaned)
}

// ValidMarkdown reports whether the input parses as markdown. Goldmark
// is very permissive, so this only guards against empty or binary-ish
// content reaching a customer-facing rationale.
func ValidMarkdown(input string) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}
	parser := goldmark.DefaultParser()
	doc := parser.Parse(text.NewReader([]byte(input)))
	return doc != nil
}
