// Package orders is the normalization and serialization core: it turns the
// heterogeneous records the remote sheet accumulated over three storage
// eras into one canonical Order, converts between Order and the editable
// Form, and rebuilds the wire payload the sheet expects back. Every decoder
// in here is total; malformed input degrades to absent data, never to an
// error, because no stored record may ever be rejected.
package orders

import (
	"fmt"
	"strconv"
	"strings"

	"dtech-os/internal/models"
)

// RawOrder is one record exactly as the remote API returns it: arbitrary
// key casing, values of whatever type the sheet column held.
type RawOrder map[string]any

// attribute keys that live inside the annotation blob rather than in their
// own sheet column on older records.
var extraKeys = []string{"marca", "modelo", "recado", "pagamento", "dataTermino", "senha"}

// rawString reads a raw field checking the capitalized column name first,
// then the lower-case one.
func rawString(item RawOrder, keys ...string) string {
	for _, key := range keys {
		if v, ok := item[key]; ok {
			if s := anyToString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

func rawValue(item RawOrder, keys ...string) any {
	for _, key := range keys {
		if v, ok := item[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

// anyToString renders a raw cell value as a string. Sheet columns sometimes
// come back as numbers; those render without an exponent.
func anyToString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

func columnKeys(key string) []string {
	return []string{strings.ToUpper(key[:1]) + key[1:], key}
}

// setIfPresent is the extras merge rule: empty values never land in the
// mapping and never clobber a previously recovered one.
func setIfPresent(extras models.Extras, key string, value any) {
	switch v := value.(type) {
	case nil:
		return
	case string:
		if v == "" {
			return
		}
	case []int:
		if len(v) == 0 {
			return
		}
	case []models.ChecklistEntry:
		if len(v) == 0 {
			return
		}
	}
	extras[key] = value
}

func parsedString(parsed map[string]any, key string) string {
	if parsed == nil {
		return ""
	}
	return anyToString(parsed[key])
}

// NormalizeOrder turns one raw persisted record into the canonical Order.
// Precedence per field: dedicated column when non-empty, then the value
// recovered from the annotation blob (JSON era first, legacy text era as
// fallback), then absence.
func NormalizeOrder(item RawOrder) models.Order {
	obsRaw := rawString(item, "Obs", "obs")
	parsed := parseJSONAnnotation(obsRaw)
	var legacy map[string]string
	if parsed == nil {
		legacy = parseLegacyAnnotation(obsRaw)
	}

	extras := models.Extras{}
	for key, value := range parsed {
		switch key {
		case "padrao":
			setIfPresent(extras, key, ParsePattern(value))
		case "checklist":
			setIfPresent(extras, key, ParseChecklist(value))
		case "checklistSelected":
			// derived projection for the sheet; the checklist key is canonical
		default:
			setIfPresent(extras, key, anyToString(value))
		}
	}

	if legacy != nil {
		for _, key := range extraKeys {
			setIfPresent(extras, key, legacy[key])
		}
		setIfPresent(extras, "padrao", ParsePattern(legacy["padrao"]))
		setIfPresent(extras, "checklist", sheetItemsToEntries(parseLegacyChecklistSelected(legacy["checklistSelected"])))
		setIfPresent(extras, "notes", legacy["notes"])
	}

	// Columnar values win over blob-derived ones when non-empty.
	for _, key := range extraKeys {
		column := rawString(item, columnKeys(key)...)
		setIfPresent(extras, key, firstNonEmpty(column, parsedString(parsed, key)))
	}
	padraoColumn := ParsePattern(rawValue(item, "Padrao", "padrao"))
	if len(padraoColumn) == 0 && parsed != nil {
		padraoColumn = ParsePattern(parsed["padrao"])
	}
	setIfPresent(extras, "padrao", padraoColumn)
	checklistColumn := ParseChecklist(rawValue(item, "Checklist", "checklist"))
	if len(checklistColumn) == 0 && parsed != nil {
		checklistColumn = ParseChecklist(parsed["checklist"])
	}
	setIfPresent(extras, "checklist", checklistColumn)

	marca, _ := extras["marca"].(string)
	modelo, _ := extras["modelo"].(string)
	aparelho := rawString(item, "Aparelho", "aparelho")
	if aparelho == "" {
		aparelho = joinNonEmpty(" ", marca, modelo)
	}

	obs := parsedString(parsed, "notes")
	if parsed == nil && legacy != nil {
		obs = legacy["notes"]
	}

	status := rawString(item, "Status", "status")
	if status == "" {
		status = models.StatusAberta
	}

	return models.Order{
		ID:       rawString(item, "ID", "id"),
		Data:     rawString(item, "Data", "data"),
		Cliente:  rawString(item, "Cliente", "cliente"),
		Contato:  rawString(item, "Contato", "contato"),
		Aparelho: aparelho,
		Defeito:  rawString(item, "Defeito", "defeito"),
		Servico:  rawString(item, "Servico", "servico"),
		Valor:    rawString(item, "Valor", "valor"),
		Status:   status,
		Obs:      obs,
		Extras:   extras,
	}
}

func sheetItemsToEntries(items []models.ChecklistSheetItem) []models.ChecklistEntry {
	if len(items) == 0 {
		return nil
	}
	entries := make([]models.ChecklistEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, normalizeChecklistItem(item))
	}
	return entries
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func joinNonEmpty(sep string, values ...string) string {
	var parts []string
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}
