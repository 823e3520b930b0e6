package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jportela/almoxarifado-api/internal/domain/entity"
	"github.com/jportela/almoxarifado-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func luva(initialQty int64) entity.Item {
	return entity.Item{
		ID:             "EPI__LUVA",
		Classification: "EPI",
		Description:    "LUVA",
		InitialQty:     decimal.NewFromInt(initialQty),
		UnitPrice:      decimal.NewFromInt(5),
	}
}

func mov(id, date, itemID, typ string, qty int64) entity.Movement {
	return entity.Movement{ID: id, Date: date, ItemID: itemID, Type: typ, Quantity: decimal.NewFromInt(qty)}
}

func eqInt(t *testing.T, want int64, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, got.Equal(decimal.NewFromInt(want)),
		"esperado %d, obtido %s — %v", want, got, msgAndArgs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Saldo sem movimentações (identidade)
// ──────────────────────────────────────────────────────────────────────────────

// Item sem movimentações devolve exatamente a quantidade inicial, em qualquer data.
func TestStockOnDate_SemMovimentacoes(t *testing.T) {
	items := []entity.Item{luva(10)}

	eqInt(t, 10, ledger.StockOnDate("EPI__LUVA", items, nil, "2024-01-01"))
	eqInt(t, 10, ledger.CurrentStock("EPI__LUVA", items, nil))
}

// Data anterior a todas as movimentações devolve exatamente a quantidade inicial.
func TestStockOnDate_DataAnteriorATudo(t *testing.T) {
	items := []entity.Item{luva(10)}
	movs := []entity.Movement{
		mov("m1", "2024-01-05", "EPI__LUVA", entity.MovementEntrada, 5),
		mov("m2", "2024-01-10", "EPI__LUVA", entity.MovementSaida, 3),
	}

	eqInt(t, 10, ledger.StockOnDate("EPI__LUVA", items, movs, "2024-01-04"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Replay cronológico (cenário 2 de referência)
// ──────────────────────────────────────────────────────────────────────────────

func TestStockOnDate_ReplayPorData(t *testing.T) {
	items := []entity.Item{luva(10)}
	movs := []entity.Movement{
		mov("m1", "2024-01-05", "EPI__LUVA", entity.MovementEntrada, 5),
		mov("m2", "2024-01-10", "EPI__LUVA", entity.MovementSaida, 3),
	}

	eqInt(t, 10, ledger.StockOnDate("EPI__LUVA", items, movs, "2024-01-04"), "antes da entrada")
	eqInt(t, 15, ledger.StockOnDate("EPI__LUVA", items, movs, "2024-01-05"), "dia da entrada, inclusivo")
	eqInt(t, 15, ledger.StockOnDate("EPI__LUVA", items, movs, "2024-01-09"), "entre entrada e saída")
	eqInt(t, 12, ledger.StockOnDate("EPI__LUVA", items, movs, "2024-01-10"), "dia da saída")
	eqInt(t, 12, ledger.CurrentStock("EPI__LUVA", items, movs), "hoje >= última movimentação")
}

// A diferença de saldo entre duas datas é a soma com sinal das movimentações
// estritamente dentro de (d1, d2].
func TestStockOnDate_DiferencaEntreDatas(t *testing.T) {
	items := []entity.Item{luva(100)}
	movs := []entity.Movement{
		mov("m1", "2024-02-01", "EPI__LUVA", entity.MovementEntrada, 7),
		mov("m2", "2024-02-10", "EPI__LUVA", entity.MovementSaida, 2),
		mov("m3", "2024-02-20", "EPI__LUVA", entity.MovementEntrada, 4),
	}

	d1 := ledger.StockOnDate("EPI__LUVA", items, movs, "2024-02-01")
	d2 := ledger.StockOnDate("EPI__LUVA", items, movs, "2024-02-20")

	// (2024-02-01, 2024-02-20] contém -2 e +4
	assert.True(t, d2.Sub(d1).Equal(decimal.NewFromInt(2)),
		"delta entre datas deve ser a soma com sinal do intervalo: obtido %s", d2.Sub(d1))
}

// ──────────────────────────────────────────────────────────────────────────────
// Independência de ordem de inserção
// ──────────────────────────────────────────────────────────────────────────────

func TestStockOnDate_IndependeDaOrdemDeInsercao(t *testing.T) {
	items := []entity.Item{luva(10)}
	a := mov("m1", "2024-01-05", "EPI__LUVA", entity.MovementEntrada, 5)
	b := mov("m2", "2024-01-10", "EPI__LUVA", entity.MovementSaida, 3)
	c := mov("m3", "2024-01-02", "EPI__LUVA", entity.MovementSaida, 1)

	ordens := [][]entity.Movement{
		{a, b, c},
		{c, b, a},
		{b, a, c},
	}
	for _, movs := range ordens {
		eqInt(t, 11, ledger.StockOnDate("EPI__LUVA", items, movs, "2024-01-31"),
			"o motor filtra e soma; a ordem de inserção não pode importar")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos de borda
// ──────────────────────────────────────────────────────────────────────────────

// Movimentação órfã (item excluído): base zero, sem pânico, sem erro.
func TestStockOnDate_MovimentacaoOrfa(t *testing.T) {
	movs := []entity.Movement{
		mov("m1", "2024-03-01", "EPI__CAPACETE", entity.MovementEntrada, 8),
		mov("m2", "2024-03-02", "EPI__CAPACETE", entity.MovementSaida, 3),
	}

	require.NotPanics(t, func() {
		got := ledger.StockOnDate("EPI__CAPACETE", nil, movs, "2024-03-31")
		eqInt(t, 5, got, "base 0 + 8 - 3")
	})
}

// Saldo negativo é devolvido como está (saída antes da entrada é dado errado,
// mas o motor não aplica piso em zero).
func TestStockOnDate_SaldoNegativoNaoEClampado(t *testing.T) {
	items := []entity.Item{luva(2)}
	movs := []entity.Movement{
		mov("m1", "2024-01-03", "EPI__LUVA", entity.MovementSaida, 9),
	}

	eqInt(t, -7, ledger.StockOnDate("EPI__LUVA", items, movs, "2024-01-31"))
}

// Dois registros com o mesmo ID são somados como registros distintos
// (o filtro é por valor do registro, não deduplicado por ID).
func TestStockOnDate_IDsDuplicadosContamComoRegistros(t *testing.T) {
	items := []entity.Item{luva(0)}
	movs := []entity.Movement{
		mov("dup", "2024-01-05", "EPI__LUVA", entity.MovementEntrada, 3),
		mov("dup", "2024-01-06", "EPI__LUVA", entity.MovementEntrada, 4),
	}

	eqInt(t, 7, ledger.StockOnDate("EPI__LUVA", items, movs, "2024-01-31"))
}

// Pureza: chamar duas vezes com o mesmo input devolve o mesmo output e não
// altera as coleções de entrada.
func TestStockOnDate_PuroEIdempotente(t *testing.T) {
	items := []entity.Item{luva(10)}
	movs := []entity.Movement{
		mov("m1", "2024-01-05", "EPI__LUVA", entity.MovementEntrada, 5),
	}

	r1 := ledger.StockOnDate("EPI__LUVA", items, movs, "2024-01-31")
	r2 := ledger.StockOnDate("EPI__LUVA", items, movs, "2024-01-31")

	assert.True(t, r1.Equal(r2))
	assert.False(t, movs[0].Synced, "o motor não pode mutar a coleção de entrada")
	eqInt(t, 10, items[0].InitialQty, "InitialQty é âncora imutável")
}

func TestMovementsUpToDate_FiltraPorItemEData(t *testing.T) {
	movs := []entity.Movement{
		mov("m1", "2024-01-05", "EPI__LUVA", entity.MovementEntrada, 5),
		mov("m2", "2024-01-10", "EPI__LUVA", entity.MovementSaida, 3),
		mov("m3", "2024-01-06", "EPI__BOTA", entity.MovementEntrada, 2),
	}

	got := ledger.MovementsUpToDate("EPI__LUVA", movs, "2024-01-05")
	require.Len(t, got, 1)
	assert.Equal(t, "m1", got[0].ID)
}
