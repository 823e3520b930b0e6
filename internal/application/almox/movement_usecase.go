package almox

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jportela/almoxarifado-api/internal/application/dto"
	"github.com/jportela/almoxarifado-api/internal/domain"
	"github.com/jportela/almoxarifado-api/internal/domain/entity"
	"github.com/jportela/almoxarifado-api/internal/domain/ledger"
	"github.com/jportela/almoxarifado-api/internal/domain/repository"
)

// MovementUseCase registro, listagem e exclusão de movimentações.
type MovementUseCase struct {
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
}

// NewMovementUseCase constrói o caso de uso.
func NewMovementUseCase(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{itemRepo: itemRepo, movRepo: movRepo}
}

// Register valida e persiste uma movimentação nova (sempre pendente de sync).
// Quantidade zero ou negativa é rejeitada aqui — o motor de saldo confia que
// Quantity > 0 e que o tipo determina o sinal.
func (uc *MovementUseCase) Register(in dto.CreateMovementRequest) (dto.MovementResponse, error) {
	if in.Type != entity.MovementEntrada && in.Type != entity.MovementSaida {
		return dto.MovementResponse{}, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return dto.MovementResponse{}, domain.ErrInvalidInput
	}
	if !entity.ValidDate(in.Date) {
		return dto.MovementResponse{}, domain.ErrInvalidInput
	}
	if in.ItemID == "" {
		return dto.MovementResponse{}, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return dto.MovementResponse{}, err
	}
	if item == nil {
		return dto.MovementResponse{}, domain.ErrNotFound
	}

	m := entity.Movement{
		ID:             entity.NewMovementID(),
		Date:           in.Date,
		ItemID:         in.ItemID,
		Type:           in.Type,
		Quantity:       in.Quantity,
		Document:       in.Document,
		Notes:          in.Notes,
		AttachmentName: in.AttachmentName,
		Synced:         false,
	}
	if err := uc.movRepo.Create(&m); err != nil {
		return dto.MovementResponse{}, err
	}
	return toMovementResponse(m), nil
}

// List devolve as movimentações, pendentes primeiro e dentro de cada grupo da
// data mais recente para a mais antiga. pendingOnly restringe às não
// sincronizadas.
func (uc *MovementUseCase) List(pendingOnly bool) ([]dto.MovementResponse, error) {
	movements, err := uc.movRepo.ListAll()
	if err != nil {
		return nil, err
	}
	if pendingOnly {
		movements = ledger.Pending(movements)
	}
	sort.SliceStable(movements, func(i, j int) bool {
		if movements[i].Synced != movements[j].Synced {
			return !movements[i].Synced
		}
		return movements[i].Date > movements[j].Date
	})

	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

// Delete remove a movimentação. O saldo é recomputado do conjunto restante a
// cada consulta, então a exclusão não precisa de compensação — inclusive para
// pendentes de sync, que simplesmente deixam de existir em qualquer delta
// futuro.
func (uc *MovementUseCase) Delete(id string) error {
	existing, err := uc.movRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.movRepo.Delete(id)
}

func toMovementResponse(m entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		Date:           m.Date,
		ItemID:         m.ItemID,
		Type:           m.Type,
		Quantity:       m.Quantity,
		Document:       m.Document,
		Notes:          m.Notes,
		AttachmentName: m.AttachmentName,
		Synced:         m.Synced,
	}
}
