package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/AmbientalSC/licencas/internal/domain"
	"github.com/AmbientalSC/licencas/internal/domain/entity"
	"github.com/AmbientalSC/licencas/internal/domain/repository"
)

var _ repository.FilialRepository = (*FilialRepo)(nil)

// FilialRepo implementação do porto FilialRepository sobre PostgreSQL (usável com pool ou tx).
type FilialRepo struct {
	q Querier
}

// NewFilialRepository constrói o adaptador de persistência para filiais.
func NewFilialRepository(q Querier) *FilialRepo {
	return &FilialRepo{q: q}
}

// Create persiste uma nova filial.
func (r *FilialRepo) Create(filial *entity.Filial) error {
	query := `
		INSERT INTO filiais (id, nome, cidade, uf, cnpj, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		filial.ID, filial.Nome, filial.Cidade, filial.UF, filial.CNPJ,
		filial.Ativo, filial.CreatedAt, filial.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert filial: %w", err)
	}
	return nil
}

// GetByID obtém uma filial por ID.
func (r *FilialRepo) GetByID(id string) (*entity.Filial, error) {
	query := `
		SELECT id, nome, cidade, uf, cnpj, ativo, created_at, updated_at
		FROM filiais WHERE id = $1`
	var f entity.Filial
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Nome, &f.Cidade, &f.UF, &f.CNPJ, &f.Ativo, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get filial: %w", err)
	}
	return &f, nil
}

// Update atualiza uma filial existente.
func (r *FilialRepo) Update(filial *entity.Filial) error {
	query := `
		UPDATE filiais SET nome = $2, cidade = $3, uf = $4, cnpj = $5, ativo = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		filial.ID, filial.Nome, filial.Cidade, filial.UF, filial.CNPJ, filial.Ativo, filial.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update filial: %w", err)
	}
	return nil
}

// List lista filiais com paginação.
func (r *FilialRepo) List(limit, offset int) ([]*entity.Filial, error) {
	query := `
		SELECT id, nome, cidade, uf, cnpj, ativo, created_at, updated_at
		FROM filiais ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list filiais: %w", err)
	}
	defer rows.Close()
	return scanFiliais(rows)
}

// ListAll devolve todas as filiais (snapshot de importação).
func (r *FilialRepo) ListAll() ([]*entity.Filial, error) {
	query := `
		SELECT id, nome, cidade, uf, cnpj, ativo, created_at, updated_at
		FROM filiais ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all filiais: %w", err)
	}
	defer rows.Close()
	return scanFiliais(rows)
}

// Delete remove a filial. Licenças apontando para ela ficam com filial nula.
func (r *FilialRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `UPDATE laos SET filial_id = NULL WHERE filial_id = $1`, id); err != nil {
		return fmt.Errorf("desvincular laos da filial: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM filiais WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete filial: %w", err)
	}
	return nil
}

func scanFiliais(rows pgx.Rows) ([]*entity.Filial, error) {
	var out []*entity.Filial
	for rows.Next() {
		var f entity.Filial
		if err := rows.Scan(&f.ID, &f.Nome, &f.Cidade, &f.UF, &f.CNPJ, &f.Ativo, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan filial: %w", err)
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}
