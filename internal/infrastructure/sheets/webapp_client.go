// Package sheets transporta linhas de movimentação para a planilha remota
// via o WebApp do Google Apps Script.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jportela/almoxarifado-api/internal/application/sync"
	"github.com/jportela/almoxarifado-api/internal/domain"
	"github.com/jportela/almoxarifado-api/pkg/config"
)

var _ sync.SheetSender = (*WebAppClient)(nil)

// WebAppClient envia o payload por POST para a URL do WebApp.
//
// O corpo vai serializado em JSON mas com Content-Type text/plain: o Apps
// Script não responde preflight CORS e requisições "simples" o dispensam.
// O comportamento vem do deploy real da planilha, não mexer.
type WebAppClient struct {
	client *resty.Client
	url    string
}

// NewWebAppClient constrói o cliente a partir da configuração.
func NewWebAppClient(cfg config.SheetsConfig) *WebAppClient {
	client := resty.New().
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second).
		SetRetryCount(0)
	return &WebAppClient{client: client, url: cfg.WebAppURL}
}

// webAppResponse resposta do Apps Script.
type webAppResponse struct {
	Success bool   `json:"success"`
	Rows    int    `json:"rows"`
	Error   string `json:"error"`
}

// Send entrega as linhas. Qualquer falha (URL ausente, rede, HTTP não-2xx,
// resposta ilegível) é devolvida como erro e significa que nada foi aceito.
func (c *WebAppClient) Send(ctx context.Context, payload sync.Payload) (sync.SendResult, error) {
	if c.url == "" {
		return sync.SendResult{}, domain.ErrNoWebAppURL
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return sync.SendResult{}, fmt.Errorf("serializar payload: %w", err)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain;charset=utf-8").
		SetBody(body).
		Post(c.url)
	if err != nil {
		return sync.SendResult{}, fmt.Errorf("chamar WebApp: %w", err)
	}
	if resp.IsError() {
		return sync.SendResult{}, fmt.Errorf("WebApp respondeu HTTP %d", resp.StatusCode())
	}

	var out webAppResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return sync.SendResult{}, fmt.Errorf("resposta do WebApp não é JSON: %w", err)
	}

	return sync.SendResult{Success: out.Success, RowsAccepted: out.Rows}, nil
}
