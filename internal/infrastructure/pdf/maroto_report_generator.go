// Package pdf gera o relatório de movimentações do almoxarifado em PDF.
//
// Layout da página A4 (paisagem):
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Relatório de Movimentações de Almoxarifado          │
//	│  Subtítulo: Gerado em dd/mm/aaaa hh:mm                       │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABELA: Data | Item | Class. | Tipo | Entr | Saída | Saldos │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TOTAIS: entradas / saídas                                   │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotoconfig "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jportela/almoxarifado-api/internal/application/report"
	"github.com/jportela/almoxarifado-api/internal/domain/entity"
	"github.com/jportela/almoxarifado-api/internal/domain/ledger"
)

var (
	colorPrimary = &props.Color{Red: 79, Green: 70, Blue: 229}
	colorGray    = &props.Color{Red: 107, Green: 114, Blue: 128}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ report.Generator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.Generator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Generate gera o PDF e devolve seus bytes.
func (g *MarotoReportGenerator) Generate(rows []ledger.Row, generatedAt time.Time) ([]byte, error) {
	cfg := marotoconfig.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Relatório de Movimentações de Almoxarifado", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRows(generatedAt)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDataRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// titleRows: título + "Gerado em".
func titleRows(generatedAt time.Time) []core.Row {
	return []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("Relatório de Movimentações de Almoxarifado", props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center,
				Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New("Gerado em "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Style: fontstyle.Italic, Size: 8, Align: align.Center,
				Color: colorGray,
			}),
		)),
	}
}

// tableHeaderRow: cabeçalho da tabela de movimentações.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	}
	return row.New(8).Add(
		h("Data", 1, align.Center),
		h("Item", 3, align.Left),
		h("Classificação", 2, align.Left),
		h("Tipo", 1, align.Center),
		h("Entrada", 1, align.Right),
		h("Saída", 1, align.Right),
		h("Saldo Ant.", 1, align.Right),
		h("Saldo Após", 1, align.Right),
		h("Documento", 1, align.Right),
	)
}

// tableDataRows: uma linha por movimentação, com saldo antes/depois.
func tableDataRows(rows []ledger.Row) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		tipo := "Entrada"
		if r.Movement.Type == entity.MovementSaida {
			tipo = "Saída"
		}
		doc := r.Movement.Document
		if doc == "" {
			doc = r.Movement.AttachmentName
		}
		result = append(result, row.New(6).Add(
			cell(formatDate(r.Movement.Date), 1, align.Center),
			cell(r.Item.Description, 3, align.Left),
			cell(r.Item.Classification, 2, align.Left),
			cell(tipo, 1, align.Center),
			cell(formatQty(r.EntradaQty), 1, align.Right),
			cell(formatQty(r.SaidaQty), 1, align.Right),
			cell(r.BalanceBefore.String(), 1, align.Right),
			cell(r.BalanceAfter.String(), 1, align.Right),
			cell(doc, 1, align.Right),
		))
	}
	return result
}

// totalsRow: linha final com as somas de entradas e saídas.
func totalsRow(rows []ledger.Row) core.Row {
	entradas, saidas := ledger.Totals(rows)
	return row.New(8).Add(
		col.New(7).Add(text.New("Totais:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Right: 2,
		})),
		col.New(1).Add(text.New(entradas.String(), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(1).Add(text.New(saidas.String(), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(3),
	)
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 7.5, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

// formatDate converte YYYY-MM-DD em dd/mm/aaaa para exibição.
func formatDate(date string) string {
	t, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}

// formatQty quantidade zerada vira célula vazia (só um lado é preenchido).
func formatQty(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}
