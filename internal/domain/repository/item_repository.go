package repository

import "github.com/jportela/almoxarifado-api/internal/domain/entity"

// ItemRepository porta de persistência do catálogo de itens.
//
// Contrato de fidelidade: o que for salvo deve voltar com valores equivalentes
// no load (campos opcionais ausentes assumem o zero explícito do schema).
type ItemRepository interface {
	ListAll() ([]entity.Item, error)
	GetByID(id string) (*entity.Item, error)
	// ReplaceAll substitui o catálogo inteiro de forma atômica (importação de planilha).
	ReplaceAll(items []entity.Item) error
	Create(item *entity.Item) error
	Delete(id string) error
	DeleteAll() error
}
