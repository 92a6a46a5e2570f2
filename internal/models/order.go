package models

// Extras is the open attribute mapping recovered from (and re-embedded into)
// the annotation column of the remote sheet. Keys are present only when the
// value is non-empty; round-tripping an absent key must not materialize it.
type Extras map[string]any

// Order is the canonical read-side record. The remote store keeps most of
// these as free-form text columns plus one annotation blob; normalization
// collapses every historical storage shape into this struct.
type Order struct {
	ID       string `json:"id"`
	Data     string `json:"data"`
	Cliente  string `json:"cliente"`
	Contato  string `json:"contato"`
	Aparelho string `json:"aparelho"`
	Defeito  string `json:"defeito"`
	Servico  string `json:"servico"`
	Valor    string `json:"valor"`
	Status   string `json:"status"`
	Obs      string `json:"obs"`
	Extras   Extras `json:"extras"`
}

// ExtraString returns the extras value under key when it holds a string.
func (o Order) ExtraString(key string) string {
	if o.Extras == nil {
		return ""
	}
	s, _ := o.Extras[key].(string)
	return s
}

// ExtraPattern returns the unlock-pattern sequence stored in extras, if any.
func (o Order) ExtraPattern() []int {
	if o.Extras == nil {
		return nil
	}
	p, _ := o.Extras["padrao"].([]int)
	return p
}

// ExtraChecklist returns the checklist stored in extras, if any. The slice
// is not guaranteed to be canonical; callers normalize before rendering.
func (o Order) ExtraChecklist() []ChecklistEntry {
	if o.Extras == nil {
		return nil
	}
	c, _ := o.Extras["checklist"].([]ChecklistEntry)
	return c
}
