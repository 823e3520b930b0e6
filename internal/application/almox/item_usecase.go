package almox

import (
	"io"
	"sort"

	"github.com/jportela/almoxarifado-api/internal/application/dto"
	"github.com/jportela/almoxarifado-api/internal/domain"
	"github.com/jportela/almoxarifado-api/internal/domain/entity"
	"github.com/jportela/almoxarifado-api/internal/domain/ledger"
	"github.com/jportela/almoxarifado-api/internal/domain/repository"
)

// ItemUseCase casos de uso do catálogo: importação de planilha, busca com
// saldo atual e limpeza geral.
type ItemUseCase struct {
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
	parser   SpreadsheetParser
}

// NewItemUseCase constrói o caso de uso.
func NewItemUseCase(itemRepo repository.ItemRepository, movRepo repository.MovementRepository, parser SpreadsheetParser) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, movRepo: movRepo, parser: parser}
}

// ImportFromSpreadsheet lê a planilha e substitui o catálogo inteiro de forma
// atômica. O saldo de abertura de cada item entra SOMENTE em InitialQty —
// nenhuma movimentação sintética de cadastro inicial é criada.
func (uc *ItemUseCase) ImportFromSpreadsheet(r io.Reader) (dto.ImportResult, error) {
	items, skipped, err := uc.parser.ParseItems(r)
	if err != nil {
		return dto.ImportResult{}, err
	}
	if len(items) == 0 {
		return dto.ImportResult{}, domain.ErrInvalidInput
	}
	if err := uc.itemRepo.ReplaceAll(items); err != nil {
		return dto.ImportResult{}, err
	}
	return dto.ImportResult{ItemsImported: len(items), RowsSkipped: skipped}, nil
}

// Search devolve os itens ranqueados pelo termo (prefixo > ocorrência mais
// cedo > alfabético), cada um com saldo atual e valorização. Termo vazio
// devolve tudo em ordem alfabética.
func (uc *ItemUseCase) Search(term string) ([]dto.ItemResponse, error) {
	items, err := uc.itemRepo.ListAll()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movRepo.ListAll()
	if err != nil {
		return nil, err
	}

	ranked := SearchByDescription(items, term)
	out := make([]dto.ItemResponse, 0, len(ranked))
	for _, it := range ranked {
		stock := ledger.CurrentStock(it.ID, items, movements)
		out = append(out, dto.ItemResponse{
			ID:             it.ID,
			Classification: it.Classification,
			Description:    it.Description,
			InitialQty:     it.InitialQty,
			UnitPrice:      it.UnitPrice,
			CurrentStock:   stock,
			StockValue:     it.StockValue(stock),
		})
	}
	return out, nil
}

// StockOnDate saldo de um item numa data arbitrária.
// Data vazia = hoje. Item inexistente não é erro: o motor devolve a soma das
// movimentações órfãs sobre base zero.
func (uc *ItemUseCase) StockOnDate(itemID, date string) (dto.StockResponse, error) {
	if date == "" {
		date = entity.Today()
	}
	if !entity.ValidDate(date) {
		return dto.StockResponse{}, domain.ErrInvalidInput
	}
	items, err := uc.itemRepo.ListAll()
	if err != nil {
		return dto.StockResponse{}, err
	}
	movements, err := uc.movRepo.ListAll()
	if err != nil {
		return dto.StockResponse{}, err
	}
	return dto.StockResponse{
		ItemID: itemID,
		Date:   date,
		Stock:  ledger.StockOnDate(itemID, items, movements, date),
	}, nil
}

// History movimentações de um item até a data, da mais recente para a mais
// antiga (exibição de auditoria).
func (uc *ItemUseCase) History(itemID, date string) ([]dto.MovementResponse, error) {
	if date == "" {
		date = entity.Today()
	}
	if !entity.ValidDate(date) {
		return nil, domain.ErrInvalidInput
	}
	movements, err := uc.movRepo.ListAll()
	if err != nil {
		return nil, err
	}
	hist := ledger.MovementsUpToDate(itemID, movements, date)
	sort.SliceStable(hist, func(i, j int) bool { return hist[i].Date > hist[j].Date })

	out := make([]dto.MovementResponse, 0, len(hist))
	for _, m := range hist {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

// ClearAll apaga movimentações e itens (botão "limpar tudo" da UI).
// Movimentações primeiro: se a limpeza de itens falhar no meio, sobram itens
// sem movimentações, nunca movimentações órfãs em massa.
func (uc *ItemUseCase) ClearAll() error {
	if err := uc.movRepo.DeleteAll(); err != nil {
		return err
	}
	return uc.itemRepo.DeleteAll()
}
