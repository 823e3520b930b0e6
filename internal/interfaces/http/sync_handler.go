package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jportela/almoxarifado-api/internal/application/dto"
	"github.com/jportela/almoxarifado-api/internal/application/sync"
	"github.com/jportela/almoxarifado-api/internal/domain"
)

// SyncHandler dispara o envio das movimentações pendentes para a planilha.
type SyncHandler struct {
	uc *sync.UseCase
}

// NewSyncHandler constrói o handler.
func NewSyncHandler(uc *sync.UseCase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

// Run godoc
// @Summary      Sincronizar pendentes com a planilha remota
// @Description  Sem pendentes devolve status "noop" sem tocar o transporte.
//
//	Falha de transporte ou recusa remota deixa tudo pendente para
//	o próximo retry (nada é marcado).
//
// @Tags         sync
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SyncResult
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/sync [post]
func (h *SyncHandler) Run(c *fiber.Ctx) error {
	out, err := h.uc.Run(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrSyncInProgress) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SYNC_IN_PROGRESS", Message: "já existe um envio em andamento"})
		}
		if errors.Is(err, domain.ErrNoWebAppURL) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_WEBAPP_URL", Message: "URL do WebApp do Google Sheets não configurada"})
		}
		// transporte ou recusa remota: as flags ficaram intactas
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "SYNC_FAILED", Message: err.Error()})
	}
	return c.JSON(out)
}
