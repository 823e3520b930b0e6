// Package excel lê e escreve planilhas XLSX do almoxarifado via excelize.
package excel

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jportela/almoxarifado-api/internal/application/almox"
	"github.com/jportela/almoxarifado-api/internal/domain/entity"
)

var _ almox.SpreadsheetParser = (*Importer)(nil)

// Importer lê a planilha de inventário e extrai o catálogo de itens.
type Importer struct{}

// NewImporter constrói o parser.
func NewImporter() *Importer {
	return &Importer{}
}

// foldAccents remove marcas de acentuação (NFD, descarta Mn, NFC).
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// normalizeHeader cabeçalho sem acento, espaços colapsados, maiúsculas.
func normalizeHeader(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(foldAccents(s)), " "))
}

// parseNumber converte valores no formato brasileiro ("1.234,56") ou já
// numéricos em decimal. Valor ilegível conta como zero, não como erro.
func parseNumber(raw string) decimal.Decimal {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return decimal.Zero
	}
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// pickSheet escolhe a aba de inventário:
//  1. nome contendo "inventario"
//  2. nome contendo "planilha", "estoque" ou "almox"
//  3. a primeira aba
func pickSheet(names []string) string {
	for _, name := range names {
		if strings.Contains(strings.ToLower(foldAccents(name)), "inventario") {
			return name
		}
	}
	for _, name := range names {
		n := strings.ToLower(foldAccents(name))
		if strings.Contains(n, "planilha") || strings.Contains(n, "estoque") || strings.Contains(n, "almox") {
			return name
		}
	}
	return names[0]
}

// Colunas reconhecidas (após normalização do cabeçalho). A quantidade atual
// tem prioridade sobre a quantidade antes do inventário (planilha antiga).
const (
	colClassification = "CLASSIFICACAO"
	colDescription    = "DESCRICAO"
	colQtyCurrent     = "QUANTIDADE ATUAL"
	colQtyBefore      = "QUANTIDADE ANTES DO INVENTARIO"
	colPrice          = "PRECO"
)

// ParseItems lê o XLSX e devolve os itens do catálogo. Linhas sem descrição
// (em branco, totais) são puladas e contadas em skipped. O ID de cada item é
// a chave natural classificação+descrição; linhas repetidas com a mesma chave
// colapsam na última ocorrência.
func (p *Importer) ParseItems(r io.Reader) ([]entity.Item, int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("abrir planilha: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, 0, fmt.Errorf("planilha sem abas")
	}
	sheet := pickSheet(sheets)

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, 0, fmt.Errorf("ler aba %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, 0, nil
	}

	colIndex := make(map[string]int)
	for i, h := range rows[0] {
		colIndex[normalizeHeader(h)] = i
	}

	cell := func(row []string, header string) string {
		idx, ok := colIndex[header]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	byID := make(map[string]int)
	var items []entity.Item
	skipped := 0

	for _, row := range rows[1:] {
		description := strings.TrimSpace(cell(row, colDescription))
		if description == "" {
			skipped++
			continue
		}
		classification := strings.TrimSpace(cell(row, colClassification))

		qtyRaw := cell(row, colQtyCurrent)
		if strings.TrimSpace(qtyRaw) == "" {
			qtyRaw = cell(row, colQtyBefore)
		}

		it := entity.Item{
			ID:             entity.ComputeItemID(classification, description),
			Classification: classification,
			Description:    description,
			InitialQty:     parseNumber(qtyRaw),
			UnitPrice:      parseNumber(cell(row, colPrice)),
		}

		if pos, ok := byID[it.ID]; ok {
			items[pos] = it
			continue
		}
		byID[it.ID] = len(items)
		items = append(items, it)
	}

	return items, skipped, nil
}
