package models

// ChecklistEntry is one inspection slot. Status is one of "", "ok",
// "alerta", "nao". The note survives only for "alerta" entries and for the
// last slot, which doubles as the accessory description field.
type ChecklistEntry struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// ChecklistSheetItem is the denormalized projection written into the
// annotation blob for spreadsheet display: the configured label text plus
// the entry state, emitted only for entries with a non-empty status.
type ChecklistSheetItem struct {
	Label  string `json:"label"`
	Status string `json:"status"`
	Note   string `json:"note"`
}

// ChecklistGateIndex is the slot whose "nao" answer means the device cannot
// reach its system; every later slot is then moot.
const ChecklistGateIndex = 3

// ChecklistItems are the configured inspection labels. Checklists are always
// exactly this long, one entry per label, in this order.
var ChecklistItems = []string{
	"Aparelho liga",
	"Carcaca sem trincas ou amassados",
	"Parafusos completos",
	"Aparelho da acesso ao sistema",
	"Tela touch funcionando",
	"Display sem manchas ou riscos",
	"Biometria / Face ID",
	"Botao power",
	"Botoes de volume",
	"Chip e bandeja do chip",
	"Cartao de memoria",
	"Sinal de rede / operadora",
	"Wi-Fi",
	"Bluetooth",
	"Camera frontal",
	"Camera traseira",
	"Flash",
	"Alto-falante",
	"Fone auricular",
	"Microfone",
	"Vibracao",
	"Sensor de proximidade",
	"Conector de carga",
	"Carcaca sem sinais de umidade",
	"Acessorios entregues",
}

// ChecklistLen is the canonical checklist length.
func ChecklistLen() int { return len(ChecklistItems) }

// ChecklistLabel resolves the configured label for a slot, with a generic
// fallback for out-of-range indexes recovered from legacy data.
func ChecklistLabel(index int) string {
	if index >= 0 && index < len(ChecklistItems) {
		return ChecklistItems[index]
	}
	return ""
}
