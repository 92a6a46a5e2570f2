package printdoc

import (
	"fmt"
	"html/template"
	"strings"

	"dtech-os/internal/format"
	"dtech-os/internal/models"
	"dtech-os/internal/orders"
)

// gateAdvisory is appended to compact receipts when the gate item is "nao":
// the device never reached its system, so the warranty covers only the
// service performed.
const gateAdvisory = "O check-list nao pode ser efetuado devido a limitacoes do aparelho, " +
	"impossibilitando o acesso ao sistema, portanto a garantia sera unica e " +
	"exclusivamente sobre o servico prestado."

// GateTriggered re-derives the gate rule from checklist state. Callers must
// not trust the edit-time cascade: a print can come from an unsaved form
// whose side effect has not re-run.
func GateTriggered(checklist []models.ChecklistEntry) bool {
	return models.ChecklistGateIndex < len(checklist) &&
		checklist[models.ChecklistGateIndex].Status == "nao"
}

func statusWord(status string) string {
	switch status {
	case "ok":
		return "OK"
	case "alerta":
		return "ATENCAO"
	case "nao":
		return "NAO"
	default:
		return "-"
	}
}

// checklistRows renders the checklist block. Full layouts list every item;
// compact layouts keep only the problems-found subset (alerta and nao).
// Numbering restarts over the rendered subset.
func checklistRows(checklist []models.ChecklistEntry, onlyIssues bool) template.HTML {
	var b strings.Builder
	row := 0
	for i, entry := range checklist {
		if onlyIssues && entry.Status != "alerta" && entry.Status != "nao" {
			continue
		}
		row++
		note := ""
		if entry.Note != "" {
			note = " - " + template.HTMLEscapeString(entry.Note)
		}
		fmt.Fprintf(&b, `<div class="check-item">%d. %s: <strong>%s</strong>%s</div>`,
			row, template.HTMLEscapeString(models.ChecklistLabel(i)), statusWord(entry.Status), note)
	}
	return template.HTML(b.String())
}

// thermalIssueRows renders the 58mm problems list with a glyph per entry
// ("!" alerta, "X" nao). When the gate fired, the slots after it are
// suppressed; the advisory sentence replaces them.
func thermalIssueRows(checklist []models.ChecklistEntry, gateFired bool) template.HTML {
	var b strings.Builder
	for i, entry := range checklist {
		if gateFired && i > models.ChecklistGateIndex {
			continue
		}
		if entry.Status != "alerta" && entry.Status != "nao" {
			continue
		}
		text := models.ChecklistLabel(i)
		if entry.Status == "nao" {
			text += ": Nao"
		}
		if entry.Note != "" {
			text += ": " + entry.Note
		}
		icon := "!"
		if entry.Status == "nao" {
			icon = "X"
		}
		fmt.Fprintf(&b, `<div style="font-size:11px;margin-bottom:3px;">%s %s</div>`,
			icon, template.HTMLEscapeString(text))
	}
	if b.Len() == 0 {
		return template.HTML(`<div style="font-size:11px;margin-bottom:3px;">-</div>`)
	}
	return template.HTML(b.String())
}

type osDocData struct {
	Shop         Shop
	ID           string
	Cliente      string
	Contato      string
	Recado       string
	Aparelho     string
	Defeito      string
	Servico      string
	Valor        string
	Pagamento    string
	Senha        string
	Status       string
	DataAbertura string
	DataTermino  string
	Notes        string
	StatusClass  string
	Checklist    template.HTML
	ChecklistA4  bool
	Pattern      template.HTML
	Advisory     string
}

// BuildOSHTML renders a canonical order as a printable document in the
// requested mode. Unknown modes fall back to the full-page layout with the
// compact checklist, matching the legacy "thermal" alias.
func BuildOSHTML(order models.Order, mode string, shop Shop) string {
	checklist := orders.NormalizeChecklist(order.ExtraChecklist())
	notes := order.Obs
	if notes == "" {
		notes = order.ExtraString("notes")
	}
	aparelho := order.Aparelho
	if aparelho == "" {
		aparelho = strings.TrimSpace(order.ExtraString("marca") + " " + order.ExtraString("modelo"))
	}

	data := osDocData{
		Shop:         shop,
		ID:           order.ID,
		Cliente:      order.Cliente,
		Contato:      order.Contato,
		Recado:       order.ExtraString("recado"),
		Aparelho:     aparelho,
		Defeito:      order.Defeito,
		Servico:      order.Servico,
		Valor:        format.Currency(order.Valor),
		Pagamento:    order.ExtraString("pagamento"),
		Senha:        order.ExtraString("senha"),
		Status:       order.Status,
		DataAbertura: format.Date(order.Data),
		DataTermino:  format.Date(order.ExtraString("dataTermino")),
		Notes:        notes,
		StatusClass:  models.StatusClass(order.Status),
	}

	if mode == ModeThermal58 {
		gateFired := GateTriggered(checklist)
		data.Checklist = thermalIssueRows(checklist, gateFired)
		if gateFired {
			data.Advisory = gateAdvisory
		}
		var b strings.Builder
		if err := thermal58Tmpl.Execute(&b, data); err != nil {
			return ""
		}
		return b.String()
	}

	data.ChecklistA4 = mode == ModeA4
	data.Checklist = checklistRows(checklist, mode != ModeA4)
	data.Pattern = patternSVG(order.ExtraPattern(), mode)
	var b strings.Builder
	if err := osPageTmpl.Execute(&b, data); err != nil {
		return ""
	}
	return b.String()
}

var thermal58Tmpl = template.Must(template.New("thermal58").Parse(`<!doctype html>
<html lang="pt-BR">
  <head>
    <meta charset="UTF-8" />
    <title>Cupom 58mm</title>
  </head>
  <body>
    <div style="font-family:Arial,sans-serif;font-size:12px;padding:5px;width:55mm;">
      <div style="text-align:center;font-weight:bold;font-size:14px;margin-bottom:5px;">{{.Shop.Name}}</div>
      <div style="text-align:center;font-size:11px;margin-bottom:8px;">
        {{.Shop.Address}}<br>
        WhatsApp: {{.Shop.WhatsApp}}
      </div>
      <hr style="border-top:1px dashed #000;">
      <div style="font-size:11px;margin-bottom:4px;"><b>OS No:</b> {{if .ID}}{{.ID}}{{else}}-{{end}}</div>
      <div style="font-size:11px;margin-bottom:4px;"><b>Cliente:</b> {{if .Cliente}}{{.Cliente}}{{else}}-{{end}}</div>
      <div style="font-size:11px;margin-bottom:4px;"><b>CPF:</b> {{if .Contato}}{{.Contato}}{{else}}-{{end}}</div>
      {{if .Recado}}<div style="font-size:11px;margin-bottom:4px;"><b>Recado:</b> {{.Recado}}</div>{{end}}
      <div style="font-size:11px;margin-bottom:4px;"><b>Equipamento:</b> {{if .Aparelho}}{{.Aparelho}}{{else}}-{{end}}</div>
      <div style="font-size:11px;margin-bottom:4px;"><b>Servico:</b> {{if .Servico}}{{.Servico}}{{else}}-{{end}}</div>
      {{if .DataAbertura}}<div style="font-size:11px;margin-bottom:4px;"><b>Data Abertura:</b> {{.DataAbertura}}</div>{{end}}
      {{if .DataTermino}}<div style="font-size:11px;margin-bottom:4px;"><b>Data Termino:</b> {{.DataTermino}}</div>{{end}}
      <div style="font-size:11px;margin-bottom:4px;"><b>Valor:</b> {{if .Valor}}{{.Valor}}{{else}}-{{end}}</div>
      {{if .Pagamento}}<div style="font-size:11px;margin-bottom:4px;"><b>Pagamento:</b> {{.Pagamento}}</div>{{end}}
      <hr style="border-top:1px dashed #000;">
      <div style="font-weight:bold;margin-bottom:4px;">Atencao, problemas detectados no check-list:</div>
      {{.Checklist}}
      {{if .Advisory}}<div style="margin-top:6px;font-size:11px;color:red;font-weight:bold;">{{.Advisory}}</div>{{end}}
      {{if .Notes}}<div style="margin-top:6px;font-size:11px;">Observacoes: {{.Notes}}</div>{{end}}
      <hr style="border-top:1px dashed #000;margin-top:5px;">
      <div style="text-align:center;font-size:10px;"><b>Apresente este cupom para retirar o aparelho. Retirar em ate 7 dias, sujeito a multa diaria por atraso. Obrigado por escolher a {{.Shop.Name}}!</b></div>
    </div>
  </body>
</html>
`))

var osPageTmpl = template.Must(template.New("ospage").Parse(`<!doctype html>
<html lang="pt-BR">
  <head>
    <meta charset="UTF-8" />
    <title>Impressao OS</title>
    <style>
      body { font-family: Arial, sans-serif; color: #111; }
      h1, h2 { margin: 0 0 8px; }
      .print-body { margin: 0 auto; width: 210mm; }
      .divider { border-bottom: 1px dashed #999; margin: 8px 0; }
      .line { display: flex; justify-content: space-between; font-size: 13px; }
      .block { margin-bottom: 8px; }
      .check-item { font-size: 12px; margin-bottom: 4px; }
      .status-aberta { color: #2a6fb0; }
      .status-andamento { color: #b07d2a; }
      .status-finalizada { color: #2a7d2a; }
      .status-cancelada { color: #b02a2a; }
      @media print {
        @page { size: A4; margin: 6mm; }
        body { margin: 0; }
      }
    </style>
  </head>
  <body>
    <div class="print-body">
      <h1>Ordem de Servico</h1>
      <div class="line"><span>OS:</span><span>{{if .ID}}{{.ID}}{{else}}-{{end}}</span></div>
      <div class="line"><span>Data:</span><span>{{if .DataAbertura}}{{.DataAbertura}}{{else}}-{{end}}</span></div>
      {{if .DataTermino}}<div class="line"><span>Data Termino:</span><span>{{.DataTermino}}</span></div>{{end}}
      <div class="divider"></div>
      <div class="block">
        <div class="line"><span>Cliente:</span><span>{{if .Cliente}}{{.Cliente}}{{else}}-{{end}}</span></div>
        <div class="line"><span>CPF:</span><span>{{if .Contato}}{{.Contato}}{{else}}-{{end}}</span></div>
        {{if .Recado}}<div class="line"><span>Recado:</span><span>{{.Recado}}</span></div>{{end}}
        <div class="line"><span>Aparelho:</span><span>{{if .Aparelho}}{{.Aparelho}}{{else}}-{{end}}</span></div>
        <div class="line"><span>Defeito:</span><span>{{if .Defeito}}{{.Defeito}}{{else}}-{{end}}</span></div>
        <div class="line"><span>Servico:</span><span>{{if .Servico}}{{.Servico}}{{else}}-{{end}}</span></div>
        <div class="line"><span>Valor:</span><span>{{if .Valor}}{{.Valor}}{{else}}-{{end}}</span></div>
        {{if .Pagamento}}<div class="line"><span>Pagamento:</span><span>{{.Pagamento}}</span></div>{{end}}
        {{if .Senha}}<div class="line"><span>Senha/PIN:</span><span>{{.Senha}}</span></div>{{end}}
        <div class="line"><span>Status:</span><span class="{{.StatusClass}}">{{if .Status}}{{.Status}}{{else}}-{{end}}</span></div>
      </div>
      <div class="divider"></div>
      {{if .ChecklistA4}}<h2>Check List Inicial</h2>
      <div class="block">{{.Checklist}}</div>
      {{else}}<strong>Checklist - Itens em atencao</strong>
      <div class="block">{{if .Checklist}}{{.Checklist}}{{else}}<div>-</div>{{end}}</div>
      {{end}}
      {{if .Pattern}}<div class="divider"></div>
      <strong>Padrao de Desbloqueio</strong>
      {{.Pattern}}
      {{end}}
      <div class="divider"></div>
      <div class="block">
        <strong>Observacoes</strong>
        <div>{{if .Notes}}{{.Notes}}{{else}}-{{end}}</div>
      </div>
    </div>
  </body>
</html>
`))
