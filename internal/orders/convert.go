package orders

import (
	"strconv"
	"strings"
	"time"

	"dtech-os/internal/format"
	"dtech-os/internal/models"
)

// ObsPayload is the attribute set packed into the annotation column on
// save. The server stores it opaquely; NormalizeOrder recovers it on the
// way back.
type ObsPayload struct {
	Notes          string                  `json:"notes"`
	Marca          string                  `json:"marca"`
	Modelo         string                  `json:"modelo"`
	Recado         string                  `json:"recado"`
	Pagamento      string                  `json:"pagamento"`
	DataTermino    string                  `json:"dataTermino"`
	Senha          string                  `json:"senha"`
	ValorPeca      string                  `json:"valorPeca"`
	ValorMaoDeObra string                  `json:"valorMaoDeObra"`
	CPF            string                  `json:"cpf"`
	Padrao         []int                   `json:"padrao"`
	Checklist      []models.ChecklistEntry `json:"checklist"`
}

// PayloadObs is ObsPayload plus the denormalized checklist projection the
// spreadsheet displays.
type PayloadObs struct {
	ObsPayload
	ChecklistSelected []models.ChecklistSheetItem `json:"checklistSelected"`
}

// Payload is the wire shape the persistence API accepts on save. Saving an
// existing id replaces the record wholesale.
type Payload struct {
	ID       string     `json:"id" validate:"omitempty,len=12"`
	Data     string     `json:"data" validate:"required"`
	Cliente  string     `json:"cliente"`
	Contato  string     `json:"contato"`
	Aparelho string     `json:"aparelho"`
	Defeito  string     `json:"defeito"`
	Servico  string     `json:"servico"`
	Valor    string     `json:"valor"`
	Status   string     `json:"status" validate:"required"`
	Obs      PayloadObs `json:"obs" validate:"dive"`
}

// EmptyForm returns a blank form dated today with the default payment and
// status and a canonical blank checklist.
func EmptyForm() models.Form {
	return models.Form{
		Data:      time.Now().Format("2006-01-02"),
		Padrao:    []int{},
		Pagamento: models.DefaultPayment,
		Status:    models.StatusAberta,
		Checklist: EmptyChecklist(),
	}
}

// FormFromOrder projects a canonical Order into the flat editable form.
// Dates are re-rendered as YYYY-MM-DD when parseable.
func FormFromOrder(order models.Order) models.Form {
	pagamento := order.ExtraString("pagamento")
	if pagamento == "" {
		pagamento = models.DefaultPayment
	}
	status := order.Status
	if status == "" {
		status = models.StatusAberta
	}
	data := order.Data
	if data == "" {
		data = time.Now().Format("2006-01-02")
	}
	padrao := order.ExtraPattern()
	if padrao == nil {
		padrao = []int{}
	}
	return models.Form{
		ID:             order.ID,
		Data:           format.NormalizeDateInput(data),
		DataTermino:    normalizeOptionalDate(order.ExtraString("dataTermino")),
		Cliente:        order.Cliente,
		Contato:        order.Contato,
		Recado:         order.ExtraString("recado"),
		Marca:          order.ExtraString("marca"),
		Modelo:         order.ExtraString("modelo"),
		Senha:          order.ExtraString("senha"),
		Padrao:         padrao,
		Defeito:        order.Defeito,
		Servico:        order.Servico,
		ValorPeca:      order.ExtraString("valorPeca"),
		ValorMaoDeObra: order.ExtraString("valorMaoDeObra"),
		Valor:          order.Valor,
		Pagamento:      pagamento,
		Status:         status,
		Obs:            order.Obs,
		Checklist:      NormalizeChecklist(order.ExtraChecklist()),
	}
}

func normalizeOptionalDate(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return format.NormalizeDateInput(value)
}

func buildObsPayload(form models.Form) ObsPayload {
	pagamento := form.Pagamento
	if pagamento == "" {
		pagamento = models.DefaultPayment
	}
	padrao := form.Padrao
	if padrao == nil {
		padrao = []int{}
	}
	return ObsPayload{
		Notes:          form.Obs,
		Marca:          form.Marca,
		Modelo:         form.Modelo,
		Recado:         form.Recado,
		Pagamento:      pagamento,
		DataTermino:    form.DataTermino,
		Senha:          form.Senha,
		ValorPeca:      form.ValorPeca,
		ValorMaoDeObra: form.ValorMaoDeObra,
		CPF:            form.Contato, // the contact doubles as the CPF search key
		Padrao:         padrao,
		Checklist:      NormalizeChecklist(form.Checklist),
	}
}

// ChecklistForSheet re-expresses the checklist as labeled rows for the
// spreadsheet, keeping only entries with a chosen status.
func ChecklistForSheet(form models.Form) []models.ChecklistSheetItem {
	items := []models.ChecklistSheetItem{}
	for i, entry := range form.Checklist {
		if entry.Status == "" {
			continue
		}
		label := models.ChecklistLabel(i)
		if label == "" {
			label = "Item " + strconv.Itoa(i+1)
		}
		items = append(items, models.ChecklistSheetItem{
			Label:  label,
			Status: entry.Status,
			Note:   entry.Note,
		})
	}
	return items
}

// BuildPayload serializes an edited form back into the wire shape. The
// device display string is recomposed from brand and model, and the whole
// extension attribute set travels inside the annotation object.
func BuildPayload(form models.Form) Payload {
	data := form.Data
	if data == "" {
		data = time.Now().Format("2006-01-02")
	}
	status := form.Status
	if status == "" {
		status = models.StatusAberta
	}
	return Payload{
		ID:       strings.TrimSpace(form.ID),
		Data:     data,
		Cliente:  form.Cliente,
		Contato:  form.Contato,
		Aparelho: joinNonEmpty(" ", form.Marca, form.Modelo),
		Defeito:  form.Defeito,
		Servico:  form.Servico,
		Valor:    form.Valor,
		Status:   status,
		Obs: PayloadObs{
			ObsPayload:        buildObsPayload(form),
			ChecklistSelected: ChecklistForSheet(form),
		},
	}
}

// BuildOrderForPrint projects an unsaved form into order shape for the
// print generator: same fields as the wire payload, but the customer note
// stays plain text and the extension attributes surface under Extras.
func BuildOrderForPrint(form models.Form) models.Order {
	payload := BuildPayload(form)
	obs := buildObsPayload(form)

	extras := models.Extras{}
	setIfPresent(extras, "notes", obs.Notes)
	setIfPresent(extras, "marca", obs.Marca)
	setIfPresent(extras, "modelo", obs.Modelo)
	setIfPresent(extras, "recado", obs.Recado)
	setIfPresent(extras, "pagamento", obs.Pagamento)
	setIfPresent(extras, "dataTermino", obs.DataTermino)
	setIfPresent(extras, "senha", obs.Senha)
	setIfPresent(extras, "valorPeca", obs.ValorPeca)
	setIfPresent(extras, "valorMaoDeObra", obs.ValorMaoDeObra)
	setIfPresent(extras, "cpf", obs.CPF)
	setIfPresent(extras, "padrao", obs.Padrao)
	setIfPresent(extras, "checklist", obs.Checklist)

	return models.Order{
		ID:       payload.ID,
		Data:     payload.Data,
		Cliente:  payload.Cliente,
		Contato:  payload.Contato,
		Aparelho: payload.Aparelho,
		Defeito:  payload.Defeito,
		Servico:  payload.Servico,
		Valor:    payload.Valor,
		Status:   payload.Status,
		Obs:      form.Obs,
		Extras:   extras,
	}
}
