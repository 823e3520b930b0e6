package sync

import (
	"context"

	"github.com/shopspring/decimal"
)

// ModeAppend instrui a planilha remota a ACRESCENTAR linhas, nunca substituir
// o conteúdo existente.
const ModeAppend = "APPEND"

// SheetRow a forma plana de uma linha como a planilha remota a recebe.
// Sem identificador interno de movimentação: o transporte não conhece IDs.
type SheetRow struct {
	Date           string          `json:"date"`
	Item           string          `json:"item"`
	Classification string          `json:"classification"`
	Type           string          `json:"type"`
	Entrada        decimal.Decimal `json:"entrada"`
	Saida          decimal.Decimal `json:"saida"`
	SaldoAntes     decimal.Decimal `json:"saldoAntes"`
	SaldoDepois    decimal.Decimal `json:"saldoDepois"`
	Document       string          `json:"document"`
	Notes          string          `json:"notes"`
}

// Payload corpo enviado ao WebApp.
type Payload struct {
	Mode string     `json:"mode"`
	Rows []SheetRow `json:"rows"`
}

// SendResult resposta da planilha remota.
type SendResult struct {
	Success      bool
	RowsAccepted int
}

// SheetSender porta do transporte remoto. Tratado como atômico tudo-ou-nada
// por chamada: qualquer erro (rede, HTTP não-2xx, resposta sem success)
// significa que NADA foi aceito e o retry é seguro.
type SheetSender interface {
	Send(ctx context.Context, payload Payload) (SendResult, error)
}
