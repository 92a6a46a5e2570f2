package orders

import (
	"encoding/json"
	"strings"

	"dtech-os/internal/models"
)

// The annotation column has gone through three storage eras: a JSON object,
// a stringified object-literal from the previous system ("{marca=X, ...}"),
// and plain emptiness. Decoding is an ordered attempt chain; every stage
// returns nil on mismatch and nothing in here ever fails loudly, because the
// sheet holds years of records in every one of these shapes.

// parseJSONAnnotation attempts the strict JSON variant. Anything that is not
// a JSON object yields nil.
func parseJSONAnnotation(value string) map[string]any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(value), &parsed); err != nil {
		return nil
	}
	return parsed
}

// parseLegacyAnnotation attempts the bracket/assignment variant: a string
// shaped "{key=value, key=value}". Values may themselves contain '=' and
// ','; a new pair only starts at ",<spaces>word=" outside of any nested
// bracket, so embedded groups like the checklistSelected list survive as a
// single value.
func parseLegacyAnnotation(value string) map[string]string {
	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(trimmed, "{") || !strings.Contains(trimmed, "=") {
		return nil
	}
	inner := strings.TrimPrefix(trimmed, "{")
	inner = strings.TrimSuffix(inner, "}")

	result := map[string]string{}
	for _, pair := range splitLegacyPairs(inner) {
		eq := strings.Index(pair, "=")
		if eq <= 0 {
			continue
		}
		key := strings.TrimSpace(pair[:eq])
		if !isWord(key) {
			continue
		}
		result[key] = strings.TrimSpace(pair[eq+1:])
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// splitLegacyPairs cuts "key=value, key=value" at commas that introduce a
// new key at nesting depth zero.
func splitLegacyPairs(s string) []string {
	var pairs []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{', '[':
			depth++
		case '}', ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 && startsNewPair(s[i+1:]) {
				pairs = append(pairs, s[start:i])
				start = i + 1
			}
		}
	}
	pairs = append(pairs, s[start:])
	return pairs
}

// startsNewPair reports whether the text after a comma begins with a
// "word=" key.
func startsNewPair(rest string) bool {
	rest = strings.TrimLeft(rest, " \t")
	eq := strings.Index(rest, "=")
	if eq <= 0 {
		return false
	}
	return isWord(rest[:eq])
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}

// parseLegacyChecklistSelected decodes the repeated "{label=..., status=...,
// note=...}" groups the old system packed into the checklistSelected
// attribute. Entries come back in stored order; labels ride along for the
// sheet but only status and note feed the canonical checklist.
func parseLegacyChecklistSelected(value string) []models.ChecklistSheetItem {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var items []models.ChecklistSheetItem
	rest := value
	for {
		open := strings.Index(rest, "{")
		if open < 0 {
			break
		}
		closing := strings.Index(rest[open:], "}")
		if closing < 0 {
			break
		}
		group := rest[open+1 : open+closing]
		rest = rest[open+closing+1:]

		fields := map[string]string{}
		for _, part := range strings.Split(group, ",") {
			eq := strings.Index(part, "=")
			if eq <= 0 {
				continue
			}
			fields[strings.TrimSpace(part[:eq])] = strings.TrimSpace(part[eq+1:])
		}
		label := fields["label"]
		status := fields["status"]
		if label == "" || status == "" {
			continue
		}
		items = append(items, models.ChecklistSheetItem{
			Label:  label,
			Status: status,
			Note:   fields["note"],
		})
	}
	return items
}
