package orders

import (
	"encoding/json"
	"strconv"
	"strings"

	"dtech-os/internal/models"
)

// ParsePattern converges every stored encoding of the unlock pattern to an
// ordered []int: an array already, a JSON-array string ("[1,5,9]"), or a
// hyphen/comma-delimited string ("1-5-9"). Anything else decodes to empty.
func ParsePattern(value any) []int {
	switch v := value.(type) {
	case nil:
		return nil
	case []int:
		return v
	case []any:
		return intSlice(v)
	case string:
		return parsePatternString(v)
	case json.Number:
		if n, err := strconv.Atoi(v.String()); err == nil {
			return []int{n}
		}
		return nil
	case float64:
		return []int{int(v)}
	default:
		return nil
	}
}

func parsePatternString(value string) []int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var arr []any
		if err := json.Unmarshal([]byte(trimmed), &arr); err != nil {
			return nil
		}
		return intSlice(arr)
	}
	var seq []int
	for _, part := range strings.FieldsFunc(trimmed, func(r rune) bool { return r == '-' || r == ',' }) {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		seq = append(seq, n)
	}
	return seq
}

func intSlice(arr []any) []int {
	var seq []int
	for _, item := range arr {
		switch n := item.(type) {
		case float64:
			seq = append(seq, int(n))
		case int:
			seq = append(seq, n)
		case string:
			if v, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
				seq = append(seq, v)
			}
		}
	}
	return seq
}

// ParseChecklist converges a stored checklist to an ordered entry sequence:
// an array already, or a JSON-array string. The result keeps the stored
// length; NormalizeChecklist fixes it to the configured item count.
func ParseChecklist(value any) []models.ChecklistEntry {
	switch v := value.(type) {
	case nil:
		return nil
	case []models.ChecklistEntry:
		return v
	case []any:
		return checklistFromSlice(v)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		var arr []any
		if err := json.Unmarshal([]byte(trimmed), &arr); err != nil {
			return nil
		}
		return checklistFromSlice(arr)
	default:
		return nil
	}
}

func checklistFromSlice(arr []any) []models.ChecklistEntry {
	entries := make([]models.ChecklistEntry, 0, len(arr))
	for _, item := range arr {
		entries = append(entries, normalizeChecklistItem(item))
	}
	return entries
}

// normalizeChecklistItem decodes one entry from any supported legacy shape:
// nil, a bare status word, a free-text note, or an object under either the
// current {status,note} keys or the older {value,extra} aliases.
func normalizeChecklistItem(value any) models.ChecklistEntry {
	switch v := value.(type) {
	case nil:
		return models.ChecklistEntry{}
	case string:
		switch strings.ToLower(v) {
		case "":
			return models.ChecklistEntry{}
		case "sim", "ok":
			return models.ChecklistEntry{Status: "ok"}
		case "nao":
			return models.ChecklistEntry{Status: "nao"}
		case "alerta", "atencao":
			return models.ChecklistEntry{Status: "alerta"}
		default:
			return models.ChecklistEntry{Note: v}
		}
	case models.ChecklistEntry:
		return v
	case models.ChecklistSheetItem:
		return models.ChecklistEntry{Status: normalizeStatusWord(v.Status), Note: v.Note}
	case map[string]any:
		status, _ := v["status"].(string)
		if status == "" {
			status, _ = v["value"].(string)
		}
		note, _ := v["note"].(string)
		if note == "" {
			note, _ = v["extra"].(string)
		}
		return models.ChecklistEntry{Status: normalizeStatusWord(status), Note: note}
	default:
		return models.ChecklistEntry{}
	}
}

// normalizeStatusWord maps any stored status word onto the canonical set,
// folding the older spellings; unknown words degrade to blank.
func normalizeStatusWord(status string) string {
	switch strings.ToLower(status) {
	case "ok", "sim":
		return "ok"
	case "nao":
		return "nao"
	case "alerta", "atencao":
		return "alerta"
	default:
		return ""
	}
}

// EmptyChecklist returns a canonical all-blank checklist, one entry per
// configured item.
func EmptyChecklist() []models.ChecklistEntry {
	return make([]models.ChecklistEntry, models.ChecklistLen())
}

// NormalizeChecklist forces any stored checklist into canonical shape:
// exactly one entry per configured item, missing positions blank, surplus
// positions dropped.
func NormalizeChecklist(list []models.ChecklistEntry) []models.ChecklistEntry {
	out := EmptyChecklist()
	for i := range out {
		if i < len(list) {
			out[i] = list[i]
		}
	}
	return out
}
