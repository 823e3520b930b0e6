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
// Saldos antes/depois por linha
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildRows_SaldosAntesDepois(t *testing.T) {
	items := []entity.Item{luva(10)}
	movs := []entity.Movement{
		mov("m2", "2024-01-10", "EPI__LUVA", entity.MovementSaida, 3),
		mov("m1", "2024-01-05", "EPI__LUVA", entity.MovementEntrada, 5),
	}

	rows := ledger.BuildRows(items, movs)
	require.Len(t, rows, 2)

	// replay em ordem de data, mesmo com a coleção fora de ordem
	assert.Equal(t, "m1", rows[0].Movement.ID)
	eqInt(t, 10, rows[0].BalanceBefore)
	eqInt(t, 15, rows[0].BalanceAfter)

	assert.Equal(t, "m2", rows[1].Movement.ID)
	eqInt(t, 15, rows[1].BalanceBefore)
	eqInt(t, 12, rows[1].BalanceAfter)
}

// Exatamente um de EntradaQty/SaidaQty é não-zero por linha.
func TestBuildRows_EntradaXorSaida(t *testing.T) {
	items := []entity.Item{luva(0)}
	movs := []entity.Movement{
		mov("m1", "2024-01-05", "EPI__LUVA", entity.MovementEntrada, 5),
		mov("m2", "2024-01-06", "EPI__LUVA", entity.MovementSaida, 2),
	}

	rows := ledger.BuildRows(items, movs)
	require.Len(t, rows, 2)

	eqInt(t, 5, rows[0].EntradaQty)
	assert.True(t, rows[0].SaidaQty.IsZero())
	assert.True(t, rows[1].EntradaQty.IsZero())
	eqInt(t, 2, rows[1].SaidaQty)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consistência com o motor de saldo
// ──────────────────────────────────────────────────────────────────────────────

// O BalanceAfter da última linha de um item (ordenada por data) tem de bater
// com o StockOnDate calculado de forma independente pelo motor.
func TestBuildRows_UltimoSaldoIgualAoMotor(t *testing.T) {
	items := []entity.Item{luva(10)}
	movs := []entity.Movement{
		mov("m1", "2024-01-05", "EPI__LUVA", entity.MovementEntrada, 5),
		mov("m2", "2024-01-10", "EPI__LUVA", entity.MovementSaida, 3),
		mov("m3", "2024-01-20", "EPI__LUVA", entity.MovementEntrada, 1),
	}

	rows := ledger.BuildRows(items, movs)
	require.Len(t, rows, 3)

	ultima := rows[len(rows)-1]
	motor := ledger.StockOnDate("EPI__LUVA", items, movs, ultima.Movement.Date)
	assert.True(t, ultima.BalanceAfter.Equal(motor),
		"delta builder e motor divergiram: %s vs %s", ultima.BalanceAfter, motor)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ordenação global e casos de borda
// ──────────────────────────────────────────────────────────────────────────────

// Lista final ordenada por data; empate de data desempata pela descrição do item.
func TestBuildRows_OrdenacaoGlobalComDesempate(t *testing.T) {
	items := []entity.Item{
		{ID: "EPI__OCULOS", Classification: "EPI", Description: "Óculos", InitialQty: decimal.Zero},
		{ID: "EPI__BOTA", Classification: "EPI", Description: "Bota", InitialQty: decimal.Zero},
	}
	movs := []entity.Movement{
		mov("m1", "2024-01-05", "EPI__OCULOS", entity.MovementEntrada, 1),
		mov("m2", "2024-01-05", "EPI__BOTA", entity.MovementEntrada, 1),
		mov("m3", "2024-01-04", "EPI__OCULOS", entity.MovementEntrada, 1),
	}

	rows := ledger.BuildRows(items, movs)
	require.Len(t, rows, 3)

	assert.Equal(t, "m3", rows[0].Movement.ID, "data mais antiga primeiro")
	assert.Equal(t, "Bota", rows[1].Item.Description, "empate de data: descrição em ordem pt-BR")
	assert.Equal(t, "Óculos", rows[2].Item.Description)
}

// Movimentações órfãs não geram linha (não há item para nomear).
func TestBuildRows_OrfasSaoPuladas(t *testing.T) {
	items := []entity.Item{luva(10)}
	movs := []entity.Movement{
		mov("m1", "2024-01-05", "EPI__LUVA", entity.MovementEntrada, 5),
		mov("m2", "2024-01-06", "EPI__EXCLUIDO", entity.MovementSaida, 2),
	}

	rows := ledger.BuildRows(items, movs)
	require.Len(t, rows, 1)
	assert.Equal(t, "m1", rows[0].Movement.ID)
}

func TestBuildRows_VazioSeNaoHaMovimentacoes(t *testing.T) {
	rows := ledger.BuildRows([]entity.Item{luva(10)}, nil)
	assert.Empty(t, rows)
}

// O contrato exige calcular sobre o conjunto completo: rodar sobre um
// subconjunto produz saldos diferentes — este teste documenta o porquê de o
// protocolo de sync nunca pré-filtrar.
func TestBuildRows_SubconjuntoProduzSaldoErrado(t *testing.T) {
	items := []entity.Item{luva(10)}
	todas := []entity.Movement{
		mov("m1", "2024-01-05", "EPI__LUVA", entity.MovementEntrada, 5),
		mov("m2", "2024-01-10", "EPI__LUVA", entity.MovementSaida, 3),
	}

	completo := ledger.BuildRows(items, todas)
	parcial := ledger.BuildRows(items, todas[1:])

	require.Len(t, completo, 2)
	require.Len(t, parcial, 1)
	assert.False(t, parcial[0].BalanceBefore.Equal(completo[1].BalanceBefore),
		"sem a entrada anterior o saldo antes da saída muda (10 vs 15)")
}

func TestTotals_SomaEntradasESaidas(t *testing.T) {
	items := []entity.Item{luva(0)}
	movs := []entity.Movement{
		mov("m1", "2024-01-05", "EPI__LUVA", entity.MovementEntrada, 5),
		mov("m2", "2024-01-06", "EPI__LUVA", entity.MovementEntrada, 2),
		mov("m3", "2024-01-07", "EPI__LUVA", entity.MovementSaida, 3),
	}

	entradas, saidas := ledger.Totals(ledger.BuildRows(items, movs))
	eqInt(t, 7, entradas)
	eqInt(t, 3, saidas)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pendentes / MarkSynced (protocolo puro)
// ──────────────────────────────────────────────────────────────────────────────

func TestPending_FiltraNaoSincronizadas(t *testing.T) {
	movs := []entity.Movement{
		{ID: "a", Synced: true},
		{ID: "b"},
		{ID: "c"},
	}

	p := ledger.Pending(movs)
	require.Len(t, p, 2)
	assert.Equal(t, "b", p[0].ID)
	assert.Equal(t, "c", p[1].ID)
}

func TestMarkSynced_NovaColecaoSemMutarEntrada(t *testing.T) {
	movs := []entity.Movement{
		{ID: "a"},
		{ID: "b", Synced: true},
		{ID: "c"},
	}

	out := ledger.MarkSynced(movs, []string{"a"})

	require.Len(t, out, 3)
	assert.True(t, out[0].Synced, "a foi marcada")
	assert.True(t, out[1].Synced, "b permanece como estava")
	assert.False(t, out[2].Synced, "c não estava na lista")
	assert.False(t, movs[0].Synced, "a coleção original nunca é mutada")
}
