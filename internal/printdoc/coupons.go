package printdoc

import (
	"fmt"
	"html/template"
	"strings"

	"dtech-os/internal/format"
)

// ServiceItem is one description/value row on the estimate and close-order
// coupons.
type ServiceItem struct {
	Desc  string `json:"desc"`
	Value string `json:"value"`
}

// SumServices totals the service rows with the tolerant amount parser.
func SumServices(items []ServiceItem) float64 {
	var total float64
	for _, item := range items {
		total += format.ParseAmount(item.Value)
	}
	return total
}

func serviceRows(items []ServiceItem) template.HTML {
	var b strings.Builder
	for _, item := range items {
		if item.Desc == "" && item.Value == "" {
			continue
		}
		desc := item.Desc
		if desc == "" {
			desc = "-"
		}
		fmt.Fprintf(&b, `<div>%s - %s</div>`,
			template.HTMLEscapeString(desc), format.CurrencyFloat(format.ParseAmount(item.Value)))
	}
	if b.Len() == 0 {
		return "-"
	}
	return template.HTML(b.String())
}

// Estimate is the input to the 58mm estimate coupon.
type Estimate struct {
	Cliente  string        `json:"cliente"`
	Contato  string        `json:"contato"`
	Servicos []ServiceItem `json:"servicos"`
}

// CloseOrder is the input to the 58mm completion coupon.
type CloseOrder struct {
	OS        string        `json:"os"`
	Data      string        `json:"data"`
	Cliente   string        `json:"cliente"`
	CPF       string        `json:"cpf"`
	Pagamento string        `json:"pagamento"`
	Servicos  []ServiceItem `json:"servicos"`
}

// Warranty is the input to the 58mm product warranty coupon.
type Warranty struct {
	Data         string `json:"data"`
	Nome         string `json:"nome"`
	CPF          string `json:"cpf"`
	Produto      string `json:"produto"`
	Situacao     string `json:"situacao"`
	ValorProduto string `json:"valorProduto"`
	Desconto     string `json:"desconto"`
	IMEI         string `json:"imei"`
	Garantia     string `json:"garantia"`
	Observacao   string `json:"observacao"`
	Pagamento    string `json:"pagamento"`
}

type couponData struct {
	Shop     Shop
	Title    string
	Rows     []couponRow
	Services template.HTML
	Totals   []couponRow
	Footer   string
}

type couponRow struct {
	Label string
	Value string
}

// BuildEstimateHTML renders the itemized estimate coupon with its 7-day
// validity note.
func BuildEstimateHTML(e Estimate, shop Shop) string {
	data := couponData{
		Shop:  shop,
		Title: "Orcamento",
		Rows: []couponRow{
			{"Cliente", orDash(e.Cliente)},
			{"Celular", orDash(e.Contato)},
		},
		Services: serviceRows(e.Servicos),
		Totals: []couponRow{
			{"Total", format.CurrencyFloat(SumServices(e.Servicos))},
		},
		Footer: "Orcamento valido por 7 dias. Valores sujeitos a alteracao conforme diagnostico.",
	}
	return renderCoupon(data, "Servicos:")
}

// BuildCloseOrderHTML renders the completion coupon with its 90-day service
// warranty footer.
func BuildCloseOrderHTML(c CloseOrder, shop Shop) string {
	data := couponData{
		Shop:  shop,
		Title: "Cupom OS",
		Rows: []couponRow{
			{"OS", orDash(c.OS)},
			{"Data", orDash(format.Date(c.Data))},
			{"Cliente", orDash(c.Cliente)},
			{"CPF", orDash(c.CPF)},
		},
		Services: serviceRows(c.Servicos),
		Totals: []couponRow{
			{"Total", format.CurrencyFloat(SumServices(c.Servicos))},
			{"Pagamento", c.Pagamento},
		},
		Footer: "Este servico possui garantia de 90 dias a partir da conclusao, valida apenas para o servico prestado. " +
			"A garantia e anulada em casos de mau uso, quedas, oxidacao ou violacao do aparelho por terceiros.",
	}
	return renderCoupon(data, "Servicos realizados:")
}

// BuildWarrantyHTML renders the product warranty coupon. The final value is
// the product value minus the discount.
func BuildWarrantyHTML(w Warranty, shop Shop) string {
	final := format.ParseAmount(w.ValorProduto) - format.ParseAmount(w.Desconto)
	data := couponData{
		Shop:  shop,
		Title: "Garantia",
		Rows: []couponRow{
			{"Data", orDash(format.Date(w.Data))},
			{"Cliente", orDash(w.Nome)},
			{"CPF", orDash(w.CPF)},
			{"Produto", orDash(w.Produto)},
			{"Situacao", w.Situacao},
			{"Valor", format.CurrencyFloat(format.ParseAmount(w.ValorProduto))},
			{"Desconto", format.CurrencyFloat(format.ParseAmount(w.Desconto))},
			{"IMEI/Serie", orDash(w.IMEI)},
			{"Garantia", w.Garantia},
			{"Pagamento", w.Pagamento},
			{"Valor final", format.CurrencyFloat(final)},
		},
		Footer: "Garantia limitada. Pode ser invalidada por mau uso, instalacao inadequada ou danos externos. " +
			"Obrigado por escolher a " + shop.Name + ".",
	}
	return renderCoupon(data, "")
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

type couponTmplData struct {
	couponData
	ServicesHeading string
}

func renderCoupon(data couponData, servicesHeading string) string {
	var b strings.Builder
	if err := couponTmpl.Execute(&b, couponTmplData{couponData: data, ServicesHeading: servicesHeading}); err != nil {
		return ""
	}
	return b.String()
}

var couponTmpl = template.Must(template.New("coupon").Parse(`<!doctype html>
<html lang="pt-BR">
  <head>
    <meta charset="UTF-8" />
    <title>{{.Title}}</title>
    <style>
      body { font-family: Arial, sans-serif; font-size: 11px; }
      .cupom { width: 58mm; margin: 0 auto; }
      .center { text-align: center; }
      .line { border-top: 1px dashed #333; margin: 6px 0; }
      .bold { font-weight: bold; }
      table { width: 100%; }
      footer { font-size: 10px; text-align: justify; }
    </style>
  </head>
  <body>
    <div class="cupom">
      <div class="center bold">{{.Shop.Name}}</div>
      <div class="center">{{.Shop.Address}}</div>
      <div class="center">CNPJ: {{.Shop.CNPJ}}</div>
      <div class="line"></div>
      {{range .Rows}}<div><strong>{{.Label}}:</strong> {{.Value}}</div>
      {{end}}{{if .ServicesHeading}}<div class="line"></div>
      <div><strong>{{.ServicesHeading}}</strong></div>
      <div>{{.Services}}</div>
      {{end}}{{if .Totals}}<div class="line"></div>
      <table>
        {{range .Totals}}<tr>
          <td><strong>{{.Label}}:</strong></td>
          <td style="text-align:right;">{{.Value}}</td>
        </tr>
        {{end}}
      </table>
      {{end}}<div class="line"></div>
      <footer>{{.Footer}}</footer>
    </div>
  </body>
</html>
`))
