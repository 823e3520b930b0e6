package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Item representa um item catalogado do almoxarifado.
//
// O ID é uma chave natural derivada de classificação + descrição; dois itens
// com a mesma classificação e descrição colidem de propósito (deduplicação na
// importação da planilha). InitialQty é a âncora do saldo: o valor que o item
// tinha ao entrar no sistema. Toda variação temporal vive em Movement — o
// motor de saldo nunca altera InitialQty.
type Item struct {
	ID             string
	Classification string
	Description    string // nunca vazia; linhas sem descrição são descartadas na importação
	InitialQty     decimal.Decimal
	UnitPrice      decimal.Decimal // só para valorização (qtd × preço), fora da matemática do saldo
}

// ComputeItemID calcula a chave natural do item: CLASSIFICACAO__DESCRICAO em
// maiúsculas. Único ponto do código que constrói IDs de item — a regra de
// unicidade mora aqui.
func ComputeItemID(classification, description string) string {
	return strings.ToUpper(strings.TrimSpace(classification) + "__" + strings.TrimSpace(description))
}

// StockValue devolve a valorização de uma quantidade ao preço unitário do item.
func (i Item) StockValue(qty decimal.Decimal) decimal.Decimal {
	return qty.Mul(i.UnitPrice)
}
