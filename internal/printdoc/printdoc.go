// Package printdoc renders canonical orders (or unsaved forms projected
// into order shape) as self-contained printable HTML documents. It is pure
// string building: no network, no storage, and business rules such as the
// checklist gate are re-derived here from the checklist itself, never
// trusted from edit-time side effects.
package printdoc

// Mode selects page dimensions, font scale and which sections render.
const (
	ModeA4        = "a4"
	ModeThermal58 = "thermal58"
	ModeThermal38 = "thermal38"
	ModeThermal   = "thermal" // legacy alias: full layout, issues-only checklist
)

// Shop is the identity block printed on every document header.
type Shop struct {
	Name     string
	Address  string
	CNPJ     string
	WhatsApp string
}
