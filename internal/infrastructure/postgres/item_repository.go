package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jportela/almoxarifado-api/internal/domain"
	"github.com/jportela/almoxarifado-api/internal/domain/entity"
	"github.com/jportela/almoxarifado-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementação do catálogo sobre PostgreSQL.
// ReplaceAll precisa de transação, por isso o repo guarda o pool e não um Querier.
type ItemRepo struct {
	pool *pgxpool.Pool
}

// NewItemRepository constrói o adaptador.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{pool: pool}
}

// ListAll devolve o catálogo inteiro.
func (r *ItemRepo) ListAll() ([]entity.Item, error) {
	query := `
		SELECT id, classification, description, initial_qty, unit_price
		FROM almox_items ORDER BY description`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Classification, &it.Description, &it.InitialQty, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// GetByID obtém um item por ID. Devolve nil (sem erro) se não existir.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `
		SELECT id, classification, description, initial_qty, unit_price
		FROM almox_items WHERE id = $1`
	var it entity.Item
	err := r.pool.QueryRow(context.Background(), query, id).
		Scan(&it.ID, &it.Classification, &it.Description, &it.InitialQty, &it.UnitPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// ReplaceAll substitui o catálogo inteiro numa transação (importação de
// planilha): ou o catálogo novo entra completo, ou nada muda.
func (r *ItemRepo) ReplaceAll(items []entity.Item) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM almox_items`); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	for _, it := range items {
		_, err := tx.Exec(ctx, `
			INSERT INTO almox_items (id, classification, description, initial_qty, unit_price)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET initial_qty = EXCLUDED.initial_qty, unit_price = EXCLUDED.unit_price`,
			it.ID, it.Classification, it.Description, it.InitialQty, it.UnitPrice)
		if err != nil {
			return fmt.Errorf("insert item %s: %w", it.ID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

// Create insere um item. A chave natural cuida da deduplicação: colisão é ErrDuplicate.
func (r *ItemRepo) Create(it *entity.Item) error {
	_, err := r.pool.Exec(context.Background(), `
		INSERT INTO almox_items (id, classification, description, initial_qty, unit_price)
		VALUES ($1, $2, $3, $4, $5)`,
		it.ID, it.Classification, it.Description, it.InitialQty, it.UnitPrice)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// Delete remove um item. Movimentações que o referenciam ficam órfãs de
// propósito — sem FK, o motor de saldo as tolera.
func (r *ItemRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM almox_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAll limpa o catálogo.
func (r *ItemRepo) DeleteAll() error {
	if _, err := r.pool.Exec(context.Background(), `DELETE FROM almox_items`); err != nil {
		return fmt.Errorf("delete all items: %w", err)
	}
	return nil
}
