package repository

import "github.com/jportela/almoxarifado-api/internal/domain/entity"

// MovementRepository porta de persistência das movimentações.
type MovementRepository interface {
	ListAll() ([]entity.Movement, error)
	GetByID(id string) (*entity.Movement, error)
	Create(movement *entity.Movement) error
	Delete(id string) error
	DeleteAll() error
	// MarkSynced marca como sincronizadas exatamente as movimentações com os IDs
	// dados — chamado só pelo protocolo de reconciliação após sucesso confirmado.
	MarkSynced(ids []string) error
}
