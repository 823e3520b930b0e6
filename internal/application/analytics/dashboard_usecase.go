package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jportela/almoxarifado-api/internal/application/dto"
	"github.com/jportela/almoxarifado-api/internal/domain/entity"
	"github.com/jportela/almoxarifado-api/internal/domain/ledger"
	"github.com/jportela/almoxarifado-api/internal/domain/repository"
)

// DashboardUseCase agrega a valorização do almoxarifado: totais de entrada e
// saída por item (quantidade × preço unitário do item) e o resumo por
// classificação. Tudo derivado na hora das coleções — nada materializado.
type DashboardUseCase struct {
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{itemRepo: itemRepo, movRepo: movRepo}
}

// Dashboard calcula a visão agregada atual.
func (uc *DashboardUseCase) Dashboard() (dto.DashboardResponse, error) {
	items, err := uc.itemRepo.ListAll()
	if err != nil {
		return dto.DashboardResponse{}, err
	}
	movements, err := uc.movRepo.ListAll()
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	itemByID := make(map[string]entity.Item, len(items))
	statsByID := make(map[string]*dto.ItemStats, len(items))
	for _, it := range items {
		itemByID[it.ID] = it
		statsByID[it.ID] = &dto.ItemStats{
			ItemID:            it.ID,
			TotalEntradaQty:   decimal.Zero,
			TotalSaidaQty:     decimal.Zero,
			TotalEntradaValue: decimal.Zero,
			TotalSaidaValue:   decimal.Zero,
		}
	}

	for _, m := range movements {
		item, ok := itemByID[m.ItemID]
		if !ok {
			continue // órfã: não valoriza item nenhum
		}
		st := statsByID[m.ItemID]
		value := item.StockValue(m.Quantity)
		if m.Type == entity.MovementEntrada {
			st.TotalEntradaQty = st.TotalEntradaQty.Add(m.Quantity)
			st.TotalEntradaValue = st.TotalEntradaValue.Add(value)
		} else {
			st.TotalSaidaQty = st.TotalSaidaQty.Add(m.Quantity)
			st.TotalSaidaValue = st.TotalSaidaValue.Add(value)
		}
	}

	classByName := make(map[string]*dto.ClassSummary)
	for _, it := range items {
		class := it.Classification
		if class == "" {
			class = "SEM CLASSIFICAÇÃO"
		}
		cs, ok := classByName[class]
		if !ok {
			cs = &dto.ClassSummary{
				Classification: class,
				TotalEntrada:   decimal.Zero,
				TotalSaida:     decimal.Zero,
				Saldo:          decimal.Zero,
			}
			classByName[class] = cs
		}
		st := statsByID[it.ID]
		cs.TotalEntrada = cs.TotalEntrada.Add(st.TotalEntradaValue)
		cs.TotalSaida = cs.TotalSaida.Add(st.TotalSaidaValue)
		cs.Saldo = cs.TotalEntrada.Sub(cs.TotalSaida)
	}

	itemStats := make([]dto.ItemStats, 0, len(statsByID))
	for _, it := range items {
		itemStats = append(itemStats, *statsByID[it.ID])
	}

	classSummaries := make([]dto.ClassSummary, 0, len(classByName))
	for _, cs := range classByName {
		classSummaries = append(classSummaries, *cs)
	}
	sort.Slice(classSummaries, func(i, j int) bool {
		return classSummaries[i].Classification < classSummaries[j].Classification
	})

	return dto.DashboardResponse{
		ItemCount:      len(items),
		MovementCount:  len(movements),
		PendingCount:   len(ledger.Pending(movements)),
		ItemStats:      itemStats,
		ClassSummaries: classSummaries,
	}, nil
}
