package entity

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	MovementEntrada = "entrada" // aumento de estoque
	MovementSaida   = "saida"   // baixa de estoque
)

// DateLayout formato das datas de movimentação. A comparação lexical de
// strings neste formato equivale à comparação cronológica (ISO com zero à
// esquerda) — o motor de saldo e o delta builder dependem disso, portanto a
// data permanece string e não um time.Time.
const DateLayout = "2006-01-02"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Movement representa uma movimentação datada de entrada ou saída contra um item.
//
// ItemID não tem integridade referencial: uma movimentação pode apontar para
// um item já excluído (órfã) e o motor de saldo a trata sem erro. Synced só
// vira true pelo protocolo de reconciliação, após aceite confirmado da
// planilha remota; fora isso a movimentação nunca é mutada.
type Movement struct {
	ID             string
	Date           string // YYYY-MM-DD
	ItemID         string
	Type           string          // entrada | saida
	Quantity       decimal.Decimal // sempre > 0; o tipo determina o sinal
	Document       string
	Notes          string
	AttachmentName string
	Synced         bool
}

// NewMovementID gera o identificador de uma movimentação no momento da
// criação: timestamp + sufixo aleatório.
func NewMovementID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.New().String()[:8])
}

// ValidDate informa se a string está no formato YYYY-MM-DD e é uma data real.
func ValidDate(date string) bool {
	if !dateRe.MatchString(date) {
		return false
	}
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// Today devolve a data local de hoje no formato do ledger.
func Today() string {
	return time.Now().Format(DateLayout)
}

// SignedQty devolve a quantidade com sinal: positiva para entrada, negativa para saída.
func (m Movement) SignedQty() decimal.Decimal {
	if m.Type == MovementSaida {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
