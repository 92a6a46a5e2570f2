package printdoc

import (
	"html/template"
	"strings"
	"time"
)

// Purchase is the input to the device-purchase term: the seller's data, the
// device identification and a responsibility declaration with a signature
// line. Photos arrive as data URIs captured by the caller.
type Purchase struct {
	VendedorNome     string `json:"vendedorNome"`
	VendedorEndereco string `json:"vendedorEndereco"`
	VendedorCPF      string `json:"vendedorCpf"`
	VendedorRG       string `json:"vendedorRg"`
	VendedorContato  string `json:"vendedorContato"`
	Marca            string `json:"marca"`
	Modelo           string `json:"modelo"`
	Cor              string `json:"cor"`
	IMEI1            string `json:"imei1"`
	IMEI2            string `json:"imei2"`
	Detalhes         string `json:"detalhes"`
	Valor            string `json:"valor"`
	FotoRGFrente     string `json:"fotoRgFrente"`
	FotoRGVerso      string `json:"fotoRgVerso"`
	FotoIMEI         string `json:"fotoImei"`
}

type purchaseData struct {
	Purchase
	Shop     Shop
	DataHora string
	Compact  bool

	// photo data URIs, marked safe so the template engine keeps them
	RGFrenteSrc template.URL
	RGVersoSrc  template.URL
	IMEISrc     template.URL
}

// BuildPurchaseHTML renders the purchase term. ModeA4 is the full document
// with the photo grid; ModeThermal38 is the 38mm receipt variant without
// photos. Other modes fall back to A4.
func BuildPurchaseHTML(p Purchase, mode string, shop Shop, now time.Time) string {
	data := purchaseData{
		Purchase:    p,
		Shop:        shop,
		DataHora:    now.Format("02/01/2006 15:04:05"),
		Compact:     mode == ModeThermal38,
		RGFrenteSrc: template.URL(p.FotoRGFrente),
		RGVersoSrc:  template.URL(p.FotoRGVerso),
		IMEISrc:     template.URL(p.FotoIMEI),
	}
	tmpl := purchaseA4Tmpl
	if data.Compact {
		tmpl = purchase38Tmpl
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return ""
	}
	return b.String()
}

var purchaseFuncs = template.FuncMap{
	"dash": orDash,
}

var purchaseA4Tmpl = template.Must(template.New("purchaseA4").Funcs(purchaseFuncs).Parse(`<!doctype html>
<html lang="pt-BR">
  <head>
    <meta charset="UTF-8" />
    <title>Termo de Compra</title>
    <style>
      @page { size: A4 portrait; margin: 10mm; }
      body { font-family: Arial, sans-serif; font-size: 12px; color: #1a1a1a; margin: 0; }
      header { background: linear-gradient(90deg, #001f4d, #004aad); color: #fff; padding: 12px 16px; }
      header h1 { margin: 0; font-size: 18px; }
      header p { margin: 3px 0; font-size: 11px; }
      .section { margin: 14px 0; padding: 12px; border: 1px solid #e1e8f2; border-radius: 6px; background: #f8faff; }
      .section-title { color: #001f4d; font-weight: bold; border-bottom: 1px solid #ccd6e8; margin-bottom: 8px; font-size: 13px; }
      .grid { display: grid; grid-template-columns: 1fr 1fr; gap: 8px 15px; }
      .imagens { display: grid; grid-template-columns: 1fr 1fr 1fr; gap: 20px; margin-top: 12px; }
      .foto { width: 100%; max-width: 230px; height: 144px; object-fit: cover; border: 2px solid #ccc; border-radius: 8px; }
      footer { text-align: center; font-size: 9px; color: #555; margin-top: 25px; border-top: 1px solid #ccc; padding-top: 10px; }
    </style>
  </head>
  <body>
    <header>
      <h1>{{.Shop.Name}}</h1>
      <p>CNPJ: {{.Shop.CNPJ}}</p>
      <p>{{.Shop.Address}}</p>
      <div style="text-align:right;font-size:10px;">Emitido em: {{.DataHora}}</div>
    </header>

    <div class="section">
      <div class="section-title">Dados do Vendedor</div>
      <div class="grid">
        <div><b>Nome:</b> {{dash .VendedorNome}}</div>
        <div><b>Contato:</b> {{dash .VendedorContato}}</div>
        <div><b>CPF:</b> {{dash .VendedorCPF}}</div>
        <div><b>RG:</b> {{dash .VendedorRG}}</div>
        <div style="grid-column: span 2"><b>Endereco:</b> {{dash .VendedorEndereco}}</div>
      </div>
    </div>

    <div class="section">
      <div class="section-title">Dados do Aparelho</div>
      <div class="grid">
        <div><b>Marca:</b> {{dash .Marca}}</div>
        <div><b>Modelo:</b> {{dash .Modelo}}</div>
        <div><b>Cor:</b> {{dash .Cor}}</div>
        <div><b>IMEI 1:</b> {{dash .IMEI1}}</div>
        <div><b>IMEI 2:</b> {{dash .IMEI2}}</div>
        <div style="grid-column: span 2"><b>Detalhes:</b> {{dash .Detalhes}}</div>
        <div style="grid-column: span 2"><b>Valor:</b> {{dash .Valor}}</div>
      </div>
    </div>

    <div class="section">
      <div class="section-title">Fotos do Documento e IMEI</div>
      <div class="imagens">
        <div style="text-align:center;font-size:10px;"><img class="foto" src="{{.RGFrenteSrc}}" /><div>RG Frente</div></div>
        <div style="text-align:center;font-size:10px;"><img class="foto" src="{{.RGVersoSrc}}" /><div>RG Verso</div></div>
        <div style="text-align:center;font-size:10px;"><img class="foto" src="{{.IMEISrc}}" /><div>IMEI</div></div>
      </div>
    </div>

    <div class="section">
      <div class="section-title">Termo de Responsabilidade</div>
      <div style="font-size:11px; line-height:1.5;">
        Declaro que o aparelho descrito e de minha propriedade e possui origem licita.
        Assumo responsabilidade pela veracidade das informacoes prestadas.
      </div>
    </div>

    <div style="text-align:center; margin-top:50px;">
      <div style="height:80px; border-bottom:2px solid #000; width:320px; margin:0 auto;"></div>
      <br><b>Assinatura do Vendedor</b>
    </div>

    <footer>Documento gerado automaticamente pelo Sistema Interno {{.Shop.Name}}</footer>
  </body>
</html>
`))

var purchase38Tmpl = template.Must(template.New("purchase38").Funcs(purchaseFuncs).Parse(`<!doctype html>
<html lang="pt-BR">
  <head>
    <meta charset="UTF-8" />
    <title>Termo de Compra</title>
    <style>
      body { font-family: Arial, sans-serif; font-size: 9px; }
      .cupom { width: 36mm; margin: 0 auto; }
      .center { text-align: center; }
      .line { border-top: 1px dashed #333; margin: 4px 0; }
      .bold { font-weight: bold; }
      footer { font-size: 8px; text-align: justify; }
    </style>
  </head>
  <body>
    <div class="cupom">
      <div class="center bold">{{.Shop.Name}}</div>
      <div class="center">CNPJ: {{.Shop.CNPJ}}</div>
      <div class="center">Emitido em: {{.DataHora}}</div>
      <div class="line"></div>
      <div><b>Vendedor:</b> {{dash .VendedorNome}}</div>
      <div><b>CPF:</b> {{dash .VendedorCPF}}</div>
      <div><b>RG:</b> {{dash .VendedorRG}}</div>
      <div><b>Contato:</b> {{dash .VendedorContato}}</div>
      <div class="line"></div>
      <div><b>Aparelho:</b> {{dash .Marca}} {{.Modelo}}</div>
      <div><b>Cor:</b> {{dash .Cor}}</div>
      <div><b>IMEI 1:</b> {{dash .IMEI1}}</div>
      <div><b>IMEI 2:</b> {{dash .IMEI2}}</div>
      <div><b>Valor:</b> {{dash .Valor}}</div>
      <div class="line"></div>
      <footer>
        Declaro que o aparelho descrito e de minha propriedade e possui origem licita.
        Assumo responsabilidade pela veracidade das informacoes prestadas.
      </footer>
      <div style="margin-top:24px;border-bottom:1px solid #000;"></div>
      <div class="center"><b>Assinatura do Vendedor</b></div>
    </div>
  </body>
</html>
`))
