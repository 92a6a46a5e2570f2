package orders

import (
	"strconv"
	"strings"

	"dtech-os/internal/format"
	"dtech-os/internal/models"
)

// Edit-time transitions are pure reducers so the print-time derivation and
// the edit handler can never disagree about the same checklist state.

// RecomputeTotal rewrites the total as the sum of the part and labor costs.
// A zero sum blanks the total rather than printing R$ 0,00.
func RecomputeTotal(form models.Form) models.Form {
	total := format.ParseAmount(form.ValorPeca) + format.ParseAmount(form.ValorMaoDeObra)
	if total > 0 {
		form.Valor = "R$ " + strings.Replace(strconv.FormatFloat(total, 'f', 2, 64), ".", ",", 1)
	} else {
		form.Valor = ""
	}
	return form
}

// ApplyChecklistStatus sets the status of one slot and returns a new
// checklist. Notes are kept only on "alerta" entries and on the last slot,
// which is the free-form accessory field. Marking the gate slot "nao"
// cascades "nao" over every later slot: the device cannot reach its system,
// so the remaining checks are moot.
func ApplyChecklistStatus(checklist []models.ChecklistEntry, index int, status string) []models.ChecklistEntry {
	next := NormalizeChecklist(checklist)
	if index < 0 || index >= len(next) {
		return next
	}
	note := next[index].Note
	if status != "alerta" && index != len(next)-1 {
		note = ""
	}
	next[index] = models.ChecklistEntry{Status: status, Note: note}

	if index == models.ChecklistGateIndex && status == "nao" {
		for i := index + 1; i < len(next); i++ {
			next[i] = models.ChecklistEntry{Status: "nao"}
		}
	}
	return next
}

// SetChecklistNote replaces the note of one slot, leaving its status alone.
func SetChecklistNote(checklist []models.ChecklistEntry, index int, note string) []models.ChecklistEntry {
	next := NormalizeChecklist(checklist)
	if index < 0 || index >= len(next) {
		return next
	}
	next[index].Note = note
	return next
}
