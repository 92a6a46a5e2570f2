package orders_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dtech-os/internal/models"
	"dtech-os/internal/orders"
)

func TestParsePattern_Encodings(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  []int
	}{
		{"nil", nil, nil},
		{"already ints", []int{1, 5, 9}, []int{1, 5, 9}},
		{"json numbers", []any{float64(1), float64(5), float64(9)}, []int{1, 5, 9}},
		{"json array string", "[1,5,9]", []int{1, 5, 9}},
		{"hyphen string", "1-5-9", []int{1, 5, 9}},
		{"comma string", "1,5,9", []int{1, 5, 9}},
		{"padded", " 1 - 5 - 9 ", []int{1, 5, 9}},
		{"garbage", "abc", nil},
		{"empty string", "", nil},
		{"broken json array", "[1,5,", nil},
		{"mixed garbage segments", "1-x-9", []int{1, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, orders.ParsePattern(tt.value))
		})
	}
}

func TestParseChecklist_Shapes(t *testing.T) {
	got := orders.ParseChecklist([]any{
		"ok",
		"sim",
		"nao",
		"atencao",
		nil,
		"",
		"anotacao solta",
		map[string]any{"status": "alerta", "note": "risco"},
		map[string]any{"value": "sim", "extra": "ok na frente"},
		map[string]any{"status": "qualquer"},
	})

	require.Len(t, got, 10)
	require.Equal(t, models.ChecklistEntry{Status: "ok"}, got[0])
	require.Equal(t, models.ChecklistEntry{Status: "ok"}, got[1])
	require.Equal(t, models.ChecklistEntry{Status: "nao"}, got[2])
	require.Equal(t, models.ChecklistEntry{Status: "alerta"}, got[3])
	require.Equal(t, models.ChecklistEntry{}, got[4])
	require.Equal(t, models.ChecklistEntry{}, got[5])
	require.Equal(t, models.ChecklistEntry{Note: "anotacao solta"}, got[6])
	require.Equal(t, models.ChecklistEntry{Status: "alerta", Note: "risco"}, got[7])
	require.Equal(t, models.ChecklistEntry{Status: "ok", Note: "ok na frente"}, got[8])
	require.Equal(t, models.ChecklistEntry{}, got[9])
}

func TestParseChecklist_JSONString(t *testing.T) {
	got := orders.ParseChecklist(`["ok",null,{"status":"nao","note":"sem bateria"}]`)

	require.Len(t, got, 3)
	require.Equal(t, "ok", got[0].Status)
	require.Equal(t, "", got[1].Status)
	require.Equal(t, "nao", got[2].Status)
	require.Equal(t, "sem bateria", got[2].Note)
}

func TestParseChecklist_Garbage(t *testing.T) {
	require.Nil(t, orders.ParseChecklist(nil))
	require.Nil(t, orders.ParseChecklist(""))
	require.Nil(t, orders.ParseChecklist("not json"))
	require.Nil(t, orders.ParseChecklist(42))
}

func TestNormalizeChecklist_PadsAndTruncates(t *testing.T) {
	short := orders.NormalizeChecklist([]models.ChecklistEntry{{Status: "ok"}})
	require.Len(t, short, models.ChecklistLen())
	require.Equal(t, "ok", short[0].Status)
	require.Equal(t, "", short[1].Status)

	long := make([]models.ChecklistEntry, models.ChecklistLen()+5)
	for i := range long {
		long[i] = models.ChecklistEntry{Status: "nao"}
	}
	got := orders.NormalizeChecklist(long)
	require.Len(t, got, models.ChecklistLen())
}

func TestEmptyChecklist_AllBlank(t *testing.T) {
	list := orders.EmptyChecklist()
	require.Len(t, list, models.ChecklistLen())
	for _, entry := range list {
		require.Equal(t, models.ChecklistEntry{}, entry)
	}
}
