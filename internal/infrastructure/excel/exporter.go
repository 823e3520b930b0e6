package excel

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jportela/almoxarifado-api/internal/application/report"
	"github.com/jportela/almoxarifado-api/internal/domain/entity"
	"github.com/jportela/almoxarifado-api/internal/domain/ledger"
)

var _ report.Generator = (*Exporter)(nil)

const exportSheet = "Movimentações"

// Exporter gera o relatório de movimentações em XLSX: título, cabeçalho,
// uma linha por movimentação com saldo antes/depois e a linha de totais.
type Exporter struct{}

// NewExporter constrói o gerador.
func NewExporter() *Exporter {
	return &Exporter{}
}

var exportHeaders = []string{
	"Data", "Item", "Classificação", "Tipo",
	"Qtd. Entrada", "Qtd. Saída", "Saldo Anterior", "Saldo Após",
	"Documento", "Observações",
}

// Generate monta o arquivo em memória.
func (e *Exporter) Generate(rows []ledger.Row, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("criar aba: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4F46E5"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	subtitleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Italic: true, Size: 10, Color: "6B7280"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E5E7EB"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	totalStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	f.SetCellValue(exportSheet, "A1", "Relatório de Movimentações de Almoxarifado")
	f.MergeCell(exportSheet, "A1", "J1")
	f.SetCellStyle(exportSheet, "A1", "J1", titleStyle)
	f.SetRowHeight(exportSheet, 1, 22)

	f.SetCellValue(exportSheet, "A2", "Gerado em "+generatedAt.Format("02/01/2006 15:04:05"))
	f.MergeCell(exportSheet, "A2", "J2")
	f.SetCellStyle(exportSheet, "A2", "J2", subtitleStyle)

	// linha 3 em branco; cabeçalho na 4
	f.SetSheetRow(exportSheet, "A4", &exportHeaders)
	f.SetCellStyle(exportSheet, "A4", "J4", headerStyle)
	f.SetPanes(exportSheet, &excelize.Panes{Freeze: true, YSplit: 4, TopLeftCell: "A5", ActivePane: "bottomLeft"})

	widths := []float64{12, 40, 20, 10, 14, 14, 16, 16, 16, 30}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(exportSheet, col, col, w)
	}

	for i, row := range rows {
		tipo := "Entrada"
		if row.Movement.Type == entity.MovementSaida {
			tipo = "Saída"
		}
		var entrada, saida any
		if !row.EntradaQty.IsZero() {
			entrada, _ = row.EntradaQty.Float64()
		}
		if !row.SaidaQty.IsZero() {
			saida, _ = row.SaidaQty.Float64()
		}
		before, _ := row.BalanceBefore.Float64()
		after, _ := row.BalanceAfter.Float64()

		values := []any{
			row.Movement.Date,
			row.Item.Description,
			row.Item.Classification,
			tipo,
			entrada,
			saida,
			before,
			after,
			documentOrAttachment(row.Movement),
			row.Movement.Notes,
		}
		f.SetSheetRow(exportSheet, fmt.Sprintf("A%d", i+5), &values)
	}

	entradas, saidas := ledger.Totals(rows)
	totalEntradas, _ := entradas.Float64()
	totalSaidas, _ := saidas.Float64()
	totalRowNum := len(rows) + 5
	totals := []any{"", "", "", "Totais:", totalEntradas, totalSaidas}
	f.SetSheetRow(exportSheet, fmt.Sprintf("A%d", totalRowNum), &totals)
	f.SetCellStyle(exportSheet, fmt.Sprintf("A%d", totalRowNum), fmt.Sprintf("J%d", totalRowNum), totalStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("escrever XLSX: %w", err)
	}
	return buf.Bytes(), nil
}

func documentOrAttachment(m entity.Movement) string {
	if m.Document != "" {
		return m.Document
	}
	return m.AttachmentName
}
