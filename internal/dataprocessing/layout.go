package dataprocessing

import "strings"

// DefaultHeaderWindow is how many leading rows are scanned for a header.
const DefaultHeaderWindow = 10

// headerMinKeywordHits is the score a candidate row needs to be selected.
const headerMinKeywordHits = 2

// ColumnSpec binds one semantic field to an ordered keyword list plus the
// positional fallback of the known standard export layout.
type ColumnSpec struct {
	Field    string
	Keywords []string
	Fallback int
}

// Layout describes one record type's header keyword set and column specs.
// Layouts are immutable package data injected into the pipeline; nothing
// mutates them at runtime.
type Layout struct {
	Kind           string
	HeaderKeywords []string
	Columns        []ColumnSpec
}

// salesLayout matches the sell-through export: header keywords in Brazilian
// Portuguese, fallbacks from the standard column order of the source ERP.
var salesLayout = Layout{
	Kind: "sales",
	HeaderKeywords: []string{
		"data", "loja", "cod", "produto", "descri", "cor",
		"tam", "quantidade", "qtde", "valor", "cole",
	},
	Columns: []ColumnSpec{
		{Field: "date", Keywords: []string{"data", "emiss"}, Fallback: 0},
		{Field: "store", Keywords: []string{"loja", "filial", "cliente"}, Fallback: 1},
		{Field: "code", Keywords: []string{"código", "codigo", "cód", "cod", "referência", "referencia", "ref"}, Fallback: 2},
		{Field: "product", Keywords: []string{"descrição", "descricao", "produto", "desc"}, Fallback: 3},
		{Field: "color", Keywords: []string{"cor"}, Fallback: 4},
		{Field: "size", Keywords: []string{"tamanho", "tam"}, Fallback: 5},
		{Field: "collection", Keywords: []string{"coleção", "colecao"}, Fallback: 6},
		{Field: "category", Keywords: []string{"categoria", "grupo"}, Fallback: 7},
		{Field: "model", Keywords: []string{"modelo", "mod"}, Fallback: 8},
		{Field: "subcategory", Keywords: []string{"subcategoria", "subgrupo", "linha"}, Fallback: 9},
		{Field: "quantity", Keywords: []string{"quantidade", "qtde", "qtd"}, Fallback: 10},
		{Field: "stock", Keywords: []string{"estoque", "saldo"}, Fallback: 12},
		{Field: "value", Keywords: []string{"valor total", "valor", "total"}, Fallback: 14},
	},
}

// cutLayout matches the production-cut export.
var cutLayout = Layout{
	Kind: "cuts",
	HeaderKeywords: []string{
		"cod", "referência", "referencia", "cor", "tam",
		"quantidade", "qtde", "corte",
	},
	Columns: []ColumnSpec{
		{Field: "code", Keywords: []string{"código", "codigo", "cód", "cod", "referência", "referencia", "ref"}, Fallback: 0},
		{Field: "color", Keywords: []string{"cor"}, Fallback: 2},
		{Field: "size", Keywords: []string{"tamanho", "tam"}, Fallback: 3},
		{Field: "quantity", Keywords: []string{"quantidade", "qtde", "qtd", "corte", "cortada"}, Fallback: 4},
	},
}

// LocateHeader scans the first window rows for the header row. Each
// candidate row's cells are concatenated (case-folded) and the row is
// selected when at least two distinct keywords occur as substrings. Returns
// -1 when no row qualifies, in which case every row is data.
func LocateHeader(m RowMatrix, keywords []string, window int) int {
	if window <= 0 {
		window = DefaultHeaderWindow
	}
	for i, row := range m {
		if i >= window {
			break
		}
		var sb strings.Builder
		for _, cell := range row {
			sb.WriteString(strings.ToLower(strings.TrimSpace(cell.String())))
			sb.WriteByte(' ')
		}
		text := sb.String()

		hits := 0
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				hits++
				if hits >= headerMinKeywordHits {
					return i
				}
			}
		}
	}
	return -1
}

// ResolveColumns maps each semantic field to a column index. A field
// resolves to the first header cell (left to right) containing any of its
// keywords; without a keyword hit it falls back to the standard-layout
// position. Overlaps between a keyword hit and another field's fallback are
// accepted. With a nil header every field uses its fallback.
func ResolveColumns(header Row, specs []ColumnSpec) map[string]int {
	cols := make(map[string]int, len(specs))
	lowered := make([]string, len(header))
	for j, cell := range header {
		lowered[j] = strings.ToLower(strings.TrimSpace(cell.String()))
	}

	for _, spec := range specs {
		idx := spec.Fallback
		for j, text := range lowered {
			if text == "" {
				continue
			}
			if containsAny(text, spec.Keywords) {
				idx = j
				break
			}
		}
		cols[spec.Field] = idx
	}
	return cols
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
