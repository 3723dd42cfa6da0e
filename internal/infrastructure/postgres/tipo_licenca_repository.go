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

var _ repository.TipoLicencaRepository = (*TipoLicencaRepo)(nil)

// TipoLicencaRepo implementação do porto TipoLicencaRepository sobre PostgreSQL.
type TipoLicencaRepo struct {
	q Querier
}

// NewTipoLicencaRepository constrói o adaptador de persistência para tipos de licença.
func NewTipoLicencaRepository(q Querier) *TipoLicencaRepo {
	return &TipoLicencaRepo{q: q}
}

// Create persiste um novo tipo de licença.
func (r *TipoLicencaRepo) Create(tipo *entity.TipoLicenca) error {
	query := `
		INSERT INTO tipos_licenca (id, nome, dias_protocolo_renovacao, dias_inicio_processo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		tipo.ID, tipo.Nome, tipo.DiasProtocoloRenovacao, tipo.DiasInicioProcesso,
		tipo.CreatedAt, tipo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tipo de licença: %w", err)
	}
	return nil
}

// GetByID obtém um tipo de licença por ID.
func (r *TipoLicencaRepo) GetByID(id string) (*entity.TipoLicenca, error) {
	query := `
		SELECT id, nome, dias_protocolo_renovacao, dias_inicio_processo, created_at, updated_at
		FROM tipos_licenca WHERE id = $1`
	var t entity.TipoLicenca
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Nome, &t.DiasProtocoloRenovacao, &t.DiasInicioProcesso, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo de licença: %w", err)
	}
	return &t, nil
}

// Update atualiza um tipo de licença existente.
func (r *TipoLicencaRepo) Update(tipo *entity.TipoLicenca) error {
	query := `
		UPDATE tipos_licenca SET nome = $2, dias_protocolo_renovacao = $3, dias_inicio_processo = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		tipo.ID, tipo.Nome, tipo.DiasProtocoloRenovacao, tipo.DiasInicioProcesso, tipo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update tipo de licença: %w", err)
	}
	return nil
}

// List lista tipos de licença com paginação.
func (r *TipoLicencaRepo) List(limit, offset int) ([]*entity.TipoLicenca, error) {
	query := `
		SELECT id, nome, dias_protocolo_renovacao, dias_inicio_processo, created_at, updated_at
		FROM tipos_licenca ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tipos de licença: %w", err)
	}
	defer rows.Close()
	return scanTipos(rows)
}

// ListAll devolve todos os tipos de licença.
func (r *TipoLicencaRepo) ListAll() ([]*entity.TipoLicenca, error) {
	query := `
		SELECT id, nome, dias_protocolo_renovacao, dias_inicio_processo, created_at, updated_at
		FROM tipos_licenca ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all tipos de licença: %w", err)
	}
	defer rows.Close()
	return scanTipos(rows)
}

// Delete remove um tipo de licença.
func (r *TipoLicencaRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM tipos_licenca WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tipo de licença: %w", err)
	}
	return nil
}

func scanTipos(rows pgx.Rows) ([]*entity.TipoLicenca, error) {
	var out []*entity.TipoLicenca
	for rows.Next() {
		var t entity.TipoLicenca
		if err := rows.Scan(&t.ID, &t.Nome, &t.DiasProtocoloRenovacao, &t.DiasInicioProcesso, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tipo de licença: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
