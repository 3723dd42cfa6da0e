package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/AmbientalSC/licencas/internal/domain"
	"github.com/AmbientalSC/licencas/internal/domain/entity"
	"github.com/AmbientalSC/licencas/internal/domain/lao"
	"github.com/AmbientalSC/licencas/internal/domain/repository"
)

var _ repository.CondicionanteRepository = (*CondicionanteRepo)(nil)

// CondicionanteRepo implementação do porto CondicionanteRepository sobre PostgreSQL.
type CondicionanteRepo struct {
	q Querier
}

// NewCondicionanteRepository constrói o adaptador de persistência para condicionantes.
func NewCondicionanteRepository(q Querier) *CondicionanteRepo {
	return &CondicionanteRepo{q: q}
}

const condColumns = `id, lao_id, nome, frequencia, meses_intervalo, ultima_vistoria,
	observacoes, ativo, created_at, updated_at`

// Create persiste uma nova condicionante.
func (r *CondicionanteRepo) Create(c *entity.Condicionante) error {
	query := `
		INSERT INTO condicionantes (` + condColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.LaoID, c.Nome, string(c.Frequencia), c.MesesIntervalo, c.UltimaVistoria,
		c.Observacoes, c.Ativo, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert condicionante: %w", err)
	}
	return nil
}

// GetByID obtém uma condicionante por ID.
func (r *CondicionanteRepo) GetByID(id string) (*entity.Condicionante, error) {
	query := `SELECT ` + condColumns + ` FROM condicionantes WHERE id = $1`
	c, err := scanCondicionante(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get condicionante: %w", err)
	}
	return c, nil
}

// Update atualiza uma condicionante existente.
func (r *CondicionanteRepo) Update(c *entity.Condicionante) error {
	query := `
		UPDATE condicionantes SET nome = $2, frequencia = $3, meses_intervalo = $4,
			ultima_vistoria = $5, observacoes = $6, ativo = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nome, string(c.Frequencia), c.MesesIntervalo, c.UltimaVistoria,
		c.Observacoes, c.Ativo, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update condicionante: %w", err)
	}
	return nil
}

// ListByLao lista as condicionantes de uma licença.
func (r *CondicionanteRepo) ListByLao(laoID string) ([]*entity.Condicionante, error) {
	query := `SELECT ` + condColumns + ` FROM condicionantes WHERE lao_id = $1 ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query, laoID)
	if err != nil {
		return nil, fmt.Errorf("list condicionantes do lao: %w", err)
	}
	defer rows.Close()
	return scanCondicionantes(rows)
}

// ListAll devolve todas as condicionantes (snapshot de importação).
func (r *CondicionanteRepo) ListAll() ([]*entity.Condicionante, error) {
	query := `SELECT ` + condColumns + ` FROM condicionantes ORDER BY lao_id, nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all condicionantes: %w", err)
	}
	defer rows.Close()
	return scanCondicionantes(rows)
}

// Delete remove a condicionante e suas vistorias.
func (r *CondicionanteRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM vistorias WHERE condicionante_id = $1`, id); err != nil {
		return fmt.Errorf("delete vistorias da condicionante: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM condicionantes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete condicionante: %w", err)
	}
	return nil
}

func scanCondicionante(row pgx.Row) (*entity.Condicionante, error) {
	var c entity.Condicionante
	var freq string
	err := row.Scan(
		&c.ID, &c.LaoID, &c.Nome, &freq, &c.MesesIntervalo, &c.UltimaVistoria,
		&c.Observacoes, &c.Ativo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Frequencia = lao.Frequencia(freq)
	return &c, nil
}

func scanCondicionantes(rows pgx.Rows) ([]*entity.Condicionante, error) {
	var out []*entity.Condicionante
	for rows.Next() {
		c, err := scanCondicionante(rows)
		if err != nil {
			return nil, fmt.Errorf("scan condicionante: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
