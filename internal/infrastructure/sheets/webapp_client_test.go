package sheets_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jportela/almoxarifado-api/internal/application/sync"
	"github.com/jportela/almoxarifado-api/internal/domain"
	"github.com/jportela/almoxarifado-api/internal/infrastructure/sheets"
	"github.com/jportela/almoxarifado-api/pkg/config"
)

func payload() sync.Payload {
	return sync.Payload{
		Mode: sync.ModeAppend,
		Rows: []sync.SheetRow{{
			Date: "2024-01-05", Item: "Luva", Classification: "EPI", Type: "entrada",
			Entrada: decimal.NewFromInt(5), Saida: decimal.Zero,
			SaldoAntes: decimal.NewFromInt(10), SaldoDepois: decimal.NewFromInt(15),
		}},
	}
}

func TestSend_PostaComoTextPlain(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "rows": 1})
	}))
	defer srv.Close()

	client := sheets.NewWebAppClient(config.SheetsConfig{WebAppURL: srv.URL, TimeoutSeconds: 5})
	res, err := client.Send(context.Background(), payload())

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.RowsAccepted)
	assert.Contains(t, gotContentType, "text/plain", "Apps Script dispensa preflight só com requisição simples")

	var decoded sync.Payload
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, sync.ModeAppend, decoded.Mode)
	require.Len(t, decoded.Rows, 1)
	assert.Equal(t, "Luva", decoded.Rows[0].Item)
}

func TestSend_SemURLConfigurada(t *testing.T) {
	client := sheets.NewWebAppClient(config.SheetsConfig{TimeoutSeconds: 5})
	_, err := client.Send(context.Background(), payload())
	assert.ErrorIs(t, err, domain.ErrNoWebAppURL)
}

func TestSend_HTTPNaoOKVivaErro(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := sheets.NewWebAppClient(config.SheetsConfig{WebAppURL: srv.URL, TimeoutSeconds: 5})
	_, err := client.Send(context.Background(), payload())
	assert.Error(t, err)
}

func TestSend_RespostaNaoJSONVivaErro(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>login do Google</html>"))
	}))
	defer srv.Close()

	client := sheets.NewWebAppClient(config.SheetsConfig{WebAppURL: srv.URL, TimeoutSeconds: 5})
	_, err := client.Send(context.Background(), payload())
	assert.Error(t, err)
}

func TestSend_SuccessFalseNaoEErroDeTransporte(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "aba protegida"})
	}))
	defer srv.Close()

	client := sheets.NewWebAppClient(config.SheetsConfig{WebAppURL: srv.URL, TimeoutSeconds: 5})
	res, err := client.Send(context.Background(), payload())

	require.NoError(t, err, "recusa remota chega como resultado, não como erro")
	assert.False(t, res.Success)
}
