package models

import "strings"

// DefaultPayment is the payment method preselected on new forms.
const DefaultPayment = "Pix"

// Status labels used by the shop. The status column stores free text, so
// these are defaults rather than an enforced enum.
const (
	StatusAberta     = "Aberta"
	StatusAndamento  = "Em andamento"
	StatusFinalizada = "Finalizada"
	StatusCancelada  = "Cancelada"
)

// StatusOptions lists the selectable statuses in display order.
var StatusOptions = []string{StatusAberta, StatusAndamento, StatusFinalizada, StatusCancelada}

// Form is the flat write-side representation of an order under edit. It is
// the only place where the part and labor costs exist as separate fields;
// Valor is their derived sum.
type Form struct {
	ID             string           `json:"id"`
	Data           string           `json:"data"`
	DataTermino    string           `json:"dataTermino"`
	Cliente        string           `json:"cliente"`
	Contato        string           `json:"contato"`
	Recado         string           `json:"recado"`
	Marca          string           `json:"marca"`
	Modelo         string           `json:"modelo"`
	Senha          string           `json:"senha"`
	Padrao         []int            `json:"padrao"`
	Defeito        string           `json:"defeito"`
	Servico        string           `json:"servico"`
	ValorPeca      string           `json:"valorPeca"`
	ValorMaoDeObra string           `json:"valorMaoDeObra"`
	Valor          string           `json:"valor"`
	Pagamento      string           `json:"pagamento"`
	Status         string           `json:"status"`
	Obs            string           `json:"obs"`
	Checklist      []ChecklistEntry `json:"checklist"`
}

// StatusClass buckets a free-text status into one of the four display
// classes by substring, tolerating casing and legacy variants.
func StatusClass(status string) string {
	normalized := strings.ToLower(status)
	switch {
	case strings.Contains(normalized, "cancel"):
		return "status-cancelada"
	case strings.Contains(normalized, "andamento"):
		return "status-andamento"
	case strings.Contains(normalized, "finalizada"):
		return "status-finalizada"
	default:
		return "status-aberta"
	}
}
