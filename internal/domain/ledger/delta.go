package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jportela/almoxarifado-api/internal/domain/entity"
)

// Row uma linha do razão: uma movimentação com o saldo corrente imediatamente
// antes e depois dela. Exatamente um de EntradaQty/SaidaQty é não-zero.
type Row struct {
	Item          entity.Item
	Movement      entity.Movement
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	EntradaQty    decimal.Decimal
	SaidaQty      decimal.Decimal
}

// BuildRows produz a lista plana de linhas do razão para relatório e sync.
//
// Os saldos só estão corretos se o cálculo cobrir o conjunto COMPLETO de
// movimentações de cada item. Quem quer transmitir um subconjunto seleciona
// linhas do resultado — nunca pré-filtra as movimentações de entrada, ou os
// saldos antes/depois saem errados. Essa separação (calcular sobre tudo,
// transmitir um recorte) é o motivo do delta builder ser independente do
// protocolo de sincronização.
//
// Movimentações órfãs (item inexistente) são puladas: não há nome nem
// classificação para reportar.
func BuildRows(items []entity.Item, movements []entity.Movement) []Row {
	itemByID := make(map[string]entity.Item, len(items))
	for _, it := range items {
		itemByID[it.ID] = it
	}

	grouped := make(map[string][]entity.Movement)
	for _, m := range movements {
		grouped[m.ItemID] = append(grouped[m.ItemID], m)
	}

	var rows []Row
	for itemID, movs := range grouped {
		item, ok := itemByID[itemID]
		if !ok {
			continue
		}

		// Ordena por data; empates mantêm a ordem original da coleção (sort estável).
		sort.SliceStable(movs, func(i, j int) bool { return movs[i].Date < movs[j].Date })

		running := item.InitialQty
		for _, m := range movs {
			before := running
			entrada, saida := decimal.Zero, decimal.Zero
			if m.Type == entity.MovementEntrada {
				entrada = m.Quantity
			} else {
				saida = m.Quantity
			}
			running = running.Add(m.SignedQty())

			rows = append(rows, Row{
				Item:          item,
				Movement:      m,
				BalanceBefore: before,
				BalanceAfter:  running,
				EntradaQty:    entrada,
				SaidaQty:      saida,
			})
		}
	}

	// Ordenação global: data crescente, desempate pela descrição do item com
	// collation pt-BR (acentos ordenados como o usuário espera).
	cl := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Movement.Date != rows[j].Movement.Date {
			return rows[i].Movement.Date < rows[j].Movement.Date
		}
		return cl.CompareString(rows[i].Item.Description, rows[j].Item.Description) < 0
	})

	return rows
}

// Totals soma as quantidades de entrada e saída de um conjunto de linhas
// (linha de totais do relatório).
func Totals(rows []Row) (entradas, saidas decimal.Decimal) {
	entradas, saidas = decimal.Zero, decimal.Zero
	for _, r := range rows {
		entradas = entradas.Add(r.EntradaQty)
		saidas = saidas.Add(r.SaidaQty)
	}
	return entradas, saidas
}
