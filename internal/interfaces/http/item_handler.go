package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jportela/almoxarifado-api/internal/application/almox"
	"github.com/jportela/almoxarifado-api/internal/application/dto"
	"github.com/jportela/almoxarifado-api/internal/domain"
)

// ItemHandler catálogo: importação de planilha, busca, saldo, histórico e
// limpeza geral.
type ItemHandler struct {
	uc *almox.ItemUseCase
}

// NewItemHandler constrói o handler.
func NewItemHandler(uc *almox.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Import godoc
// @Summary      Importar planilha de inventário (substitui o catálogo)
// @Tags         items
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "XLSX com CLASSIFICACAO, DESCRICAO, QUANTIDADE ATUAL, PRECO"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items/import [post]
func (h *ItemHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "arquivo 'file' obrigatório (multipart)"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "não foi possível ler o arquivo"})
	}
	defer f.Close()

	res, err := h.uc.ImportFromSpreadsheet(f)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "planilha sem itens válidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}

// Search godoc
// @Summary      Buscar itens com saldo e valorização atuais
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Termo de busca (ranqueado; vazio lista tudo)"
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items [get]
func (h *ItemHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Stock godoc
// @Summary      Saldo de um item numa data
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID do item (chave natural)"
// @Param        date  query  string  false  "YYYY-MM-DD; vazio = hoje"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/stock [get]
func (h *ItemHandler) Stock(c *fiber.Ctx) error {
	out, err := h.uc.StockOnDate(c.Params("id"), c.Query("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data deve estar no formato YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Movimentações de um item até a data (mais recente primeiro)
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID do item"
// @Param        date  query  string  false  "YYYY-MM-DD; vazio = hoje"
// @Success      200   {array}   dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/history [get]
func (h *ItemHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Params("id"), c.Query("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data deve estar no formato YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ClearAll godoc
// @Summary      Apagar catálogo e movimentações
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/items [delete]
func (h *ItemHandler) ClearAll(c *fiber.Ctx) error {
	if err := h.uc.ClearAll(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "catálogo e movimentações apagados"})
}
