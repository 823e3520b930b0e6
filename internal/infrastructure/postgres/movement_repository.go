package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jportela/almoxarifado-api/internal/domain/entity"
	"github.com/jportela/almoxarifado-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo persiste o livro de movimentações.
// A data fica em coluna TEXT "YYYY-MM-DD": comparação lexical bate com a
// cronológica e o motor de saldo depende disso.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, item_id, mov_date, mov_type, quantity, document, attachment_name, notes, synced`

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	err := row.Scan(&m.ID, &m.ItemID, &m.Date, &m.Type, &m.Quantity,
		&m.Document, &m.AttachmentName, &m.Notes, &m.Synced)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListAll devolve o livro completo. Os consumidores (motor, delta, sync)
// sempre trabalham sobre o conjunto inteiro.
func (r *MovementRepo) ListAll() ([]entity.Movement, error) {
	query := fmt.Sprintf(`SELECT %s FROM almox_movements ORDER BY mov_date, id`, movementColumns)
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, *m)
	}
	return list, rows.Err()
}

// GetByID obtém uma movimentação. Devolve nil (sem erro) se não existir.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := fmt.Sprintf(`SELECT %s FROM almox_movements WHERE id = $1`, movementColumns)
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// Create insere uma movimentação nova.
func (r *MovementRepo) Create(m *entity.Movement) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO almox_movements (id, item_id, mov_date, mov_type, quantity, document, attachment_name, notes, synced)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.ItemID, m.Date, m.Type, m.Quantity, m.Document, m.AttachmentName, m.Notes, m.Synced)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// Delete remove uma movimentação do livro.
func (r *MovementRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM almox_movements WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

// DeleteAll limpa o livro inteiro.
func (r *MovementRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM almox_movements`); err != nil {
		return fmt.Errorf("delete all movements: %w", err)
	}
	return nil
}

// MarkSynced liga o flag das movimentações confirmadas pela planilha remota.
// Só é chamado após sucesso confirmado do transporte.
func (r *MovementRepo) MarkSynced(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.q.Exec(context.Background(),
		`UPDATE almox_movements SET synced = TRUE WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("mark synced: %w", err)
	}
	return nil
}
