package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dtech-os/internal/export"
	"dtech-os/internal/models"
)

func TestFilename(t *testing.T) {
	now := time.UnixMilli(1710500000000)
	require.Equal(t, "ordens-servico-1710500000000.csv", export.Filename(now))
}

func TestCleanNotes(t *testing.T) {
	require.Equal(t, "tela trincada", export.CleanNotes("  tela trincada "))
	require.Equal(t, "", export.CleanNotes(""))
	require.Equal(t, "", export.CleanNotes("{marca=Samsung, modelo=A10}"))
	require.Equal(t, "", export.CleanNotes(`{"marca":"Samsung"}`))
	require.Equal(t, "", export.CleanNotes("sobrou marca=X no texto"))
}

func TestCSV_HeaderAndRow(t *testing.T) {
	list := []models.Order{
		{
			ID:       "20240315-001",
			Data:     "2024-03-15",
			Cliente:  `Maria "Mara" Silva`,
			Contato:  "12345678900",
			Aparelho: "Samsung A10",
			Defeito:  "nao liga",
			Servico:  "troca de tela; limpeza",
			Valor:    "R$ 150,00",
			Status:   "Aberta",
			Obs:      "cliente retorna sexta",
			Extras: models.Extras{
				"marca":  "Samsung",
				"modelo": "A10",
				"padrao": []int{1, 5, 9},
			},
		},
	}

	csv := export.CSV(list)
	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 2)

	require.Equal(t, `"ID";"Data";"Cliente"`, lines[0][:len(`"ID";"Data";"Cliente"`)])

	row := lines[1]
	require.Contains(t, row, `"Maria ""Mara"" Silva"`)
	require.Contains(t, row, `"troca de tela; limpeza"`)
	require.Contains(t, row, `"1-5-9"`)
	require.Contains(t, row, `"cliente retorna sexta"`)
}

func TestCSV_BlobNotesScrubbed(t *testing.T) {
	list := []models.Order{
		{ID: "20240315-001", Obs: "{marca=Samsung, modelo=A10}"},
	}

	csv := export.CSV(list)
	row := strings.Split(csv, "\n")[1]
	require.True(t, strings.HasSuffix(row, `;""`), "blob must not leak: %s", row)
}

func TestCSV_EmptyListStillHasHeader(t *testing.T) {
	csv := export.CSV(nil)
	require.Contains(t, csv, `"Padrao";"Obs"`)
	require.NotContains(t, csv, "\n")
}
