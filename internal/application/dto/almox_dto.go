package dto

import "github.com/shopspring/decimal"

// ItemResponse item do catálogo com saldo e valorização atuais.
type ItemResponse struct {
	ID             string          `json:"id"`
	Classification string          `json:"classification"`
	Description    string          `json:"description"`
	InitialQty     decimal.Decimal `json:"initial_qty"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	CurrentStock   decimal.Decimal `json:"current_stock"`
	StockValue     decimal.Decimal `json:"stock_value"`
}

// ImportResult resumo de uma importação de planilha.
type ImportResult struct {
	ItemsImported int `json:"items_imported"`
	RowsSkipped   int `json:"rows_skipped"` // linhas sem descrição (em branco, totais, etc.)
}

// CreateMovementRequest registro de uma movimentação.
type CreateMovementRequest struct {
	ItemID         string          `json:"item_id"`
	Date           string          `json:"date"` // YYYY-MM-DD
	Type           string          `json:"type"` // entrada | saida
	Quantity       decimal.Decimal `json:"quantity"`
	Document       string          `json:"document"`
	Notes          string          `json:"notes"`
	AttachmentName string          `json:"attachment_name"`
}

// MovementResponse movimentação como exposta pela API.
type MovementResponse struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"`
	ItemID         string          `json:"item_id"`
	Type           string          `json:"type"`
	Quantity       decimal.Decimal `json:"quantity"`
	Document       string          `json:"document,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	AttachmentName string          `json:"attachment_name,omitempty"`
	Synced         bool            `json:"synced"`
}

// StockResponse saldo de um item numa data.
type StockResponse struct {
	ItemID string          `json:"item_id"`
	Date   string          `json:"date"`
	Stock  decimal.Decimal `json:"stock"`
}
