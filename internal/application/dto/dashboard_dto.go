package dto

import "github.com/shopspring/decimal"

// ItemStats totais de movimentação e valorização de um item.
type ItemStats struct {
	ItemID            string          `json:"item_id"`
	TotalEntradaQty   decimal.Decimal `json:"total_entrada_qty"`
	TotalSaidaQty     decimal.Decimal `json:"total_saida_qty"`
	TotalEntradaValue decimal.Decimal `json:"total_entrada_value"`
	TotalSaidaValue   decimal.Decimal `json:"total_saida_value"`
}

// ClassSummary resumo de valorização por classificação.
type ClassSummary struct {
	Classification string          `json:"classification"`
	TotalEntrada   decimal.Decimal `json:"total_entrada"`
	TotalSaida     decimal.Decimal `json:"total_saida"`
	Saldo          decimal.Decimal `json:"saldo"` // entrada − saída
}

// DashboardResponse visão agregada do almoxarifado.
type DashboardResponse struct {
	ItemCount      int            `json:"item_count"`
	MovementCount  int            `json:"movement_count"`
	PendingCount   int            `json:"pending_count"` // movimentações ainda não sincronizadas
	ItemStats      []ItemStats    `json:"item_stats"`
	ClassSummaries []ClassSummary `json:"class_summaries"`
}
