// Package ledger implementa o motor de saldo do almoxarifado: funções puras
// que derivam a quantidade em estoque de um item em qualquer data a partir da
// quantidade inicial imutável mais o replay cronológico das movimentações.
//
// O saldo nunca é materializado em lugar nenhum — recomputar do zero a cada
// consulta é a estratégia de correção, não uma otimização pendente. O custo é
// O(itens × movimentações), aceitável na escala de um almoxarifado.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jportela/almoxarifado-api/internal/domain/entity"
)

// BaseQty devolve a quantidade inicial do item, ou zero se o item não existe.
// Item ausente não é erro: movimentações órfãs (item excluído) contribuem
// sobre uma base zero e seguem a matemática normal.
func BaseQty(itemID string, items []entity.Item) decimal.Decimal {
	for _, it := range items {
		if it.ID == itemID {
			return it.InitialQty
		}
	}
	return decimal.Zero
}

// MovementsUpToDate filtra as movimentações do item com data <= asOfDate
// (comparação lexical de strings ISO, equivalente à cronológica).
// A ordem do retorno não é garantida; quem exibe ordena como quiser.
func MovementsUpToDate(itemID string, movements []entity.Movement, asOfDate string) []entity.Movement {
	var out []entity.Movement
	for _, m := range movements {
		if m.ItemID == itemID && m.Date <= asOfDate {
			out = append(out, m)
		}
	}
	return out
}

// StockOnDate calcula o saldo do item na data dada:
// InitialQty + Σ entradas − Σ saídas das movimentações até a data, inclusive.
//
// Saldo negativo é devolvido como está — sinaliza dado errado (saída lançada
// antes da entrada correspondente) e cabe ao consumidor destacar, não a nós
// mascarar com um piso em zero.
func StockOnDate(itemID string, items []entity.Item, movements []entity.Movement, asOfDate string) decimal.Decimal {
	total := BaseQty(itemID, items)
	for _, m := range MovementsUpToDate(itemID, movements, asOfDate) {
		total = total.Add(m.SignedQty())
	}
	return total
}

// CurrentStock é StockOnDate com a data local de hoje.
func CurrentStock(itemID string, items []entity.Item, movements []entity.Movement) decimal.Decimal {
	return StockOnDate(itemID, items, movements, entity.Today())
}
