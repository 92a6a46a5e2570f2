// Package export flattens canonical orders into the semicolon-delimited
// CSV the shop opens in a spreadsheet.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"dtech-os/internal/models"
)

// Headers is the fixed column set, covering every order field and every
// known extras key.
var Headers = []string{
	"ID", "Data", "Cliente", "Contato", "Aparelho", "Marca", "Modelo",
	"Defeito", "Servico", "Valor", "Status", "Recado", "Pagamento",
	"DataTermino", "Senha", "Padrao", "Obs",
}

// Filename names the download after the export instant in unix
// milliseconds.
func Filename(now time.Time) string {
	return fmt.Sprintf("ordens-servico-%d.csv", now.UnixMilli())
}

// CleanNotes drops note values that still look like an unrendered
// annotation blob, so internal encodings never leak into the export.
func CleanNotes(value string) string {
	text := strings.TrimSpace(value)
	if text == "" {
		return ""
	}
	if strings.HasPrefix(text, "{") && (strings.Contains(text, "=") || strings.Contains(text, ":")) {
		return ""
	}
	if strings.Contains(text, "marca=") || strings.Contains(text, "modelo=") || strings.Contains(text, "checklist=") {
		return ""
	}
	return text
}

// CSV renders the orders as semicolon-delimited text: every cell quoted,
// internal quotes doubled, rows joined by newline. The unlock pattern
// serializes as hyphen-joined digits.
func CSV(list []models.Order) string {
	rows := make([][]string, 0, len(list)+1)
	rows = append(rows, Headers)

	for _, order := range list {
		padrao := joinPattern(order.ExtraPattern())
		notes := order.ExtraString("notes")
		if notes == "" {
			notes = order.Obs
		}
		rows = append(rows, []string{
			order.ID,
			order.Data,
			order.Cliente,
			order.Contato,
			order.Aparelho,
			order.ExtraString("marca"),
			order.ExtraString("modelo"),
			order.Defeito,
			order.Servico,
			order.Valor,
			order.Status,
			order.ExtraString("recado"),
			order.ExtraString("pagamento"),
			order.ExtraString("dataTermino"),
			order.ExtraString("senha"),
			padrao,
			CleanNotes(notes),
		})
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, `"`+strings.ReplaceAll(cell, `"`, `""`)+`"`)
		}
		lines = append(lines, strings.Join(cells, ";"))
	}
	return strings.Join(lines, "\n")
}

func joinPattern(pattern []int) string {
	if len(pattern) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pattern))
	for _, n := range pattern {
		parts = append(parts, strconv.Itoa(n))
	}
	return strings.Join(parts, "-")
}
