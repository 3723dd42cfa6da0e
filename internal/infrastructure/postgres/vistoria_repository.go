package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/AmbientalSC/licencas/internal/domain"
	"github.com/AmbientalSC/licencas/internal/domain/entity"
	"github.com/AmbientalSC/licencas/internal/domain/repository"
)

var _ repository.VistoriaRepository = (*VistoriaRepo)(nil)

// VistoriaRepo implementação do porto VistoriaRepository sobre PostgreSQL.
// A unicidade (condicionante_id, data) é garantida por constraint única;
// a violação vira domain.ErrDuplicate.
type VistoriaRepo struct {
	q Querier
}

// NewVistoriaRepository constrói o adaptador de persistência para vistorias.
func NewVistoriaRepository(q Querier) *VistoriaRepo {
	return &VistoriaRepo{q: q}
}

const vistoriaColumns = `id, lao_id, condicionante_id, data, observacao, fonte, criado_por, created_at`

// Create persiste uma vistoria. Devolve domain.ErrDuplicate quando já existe
// vistoria com o mesmo (condicionante_id, data).
func (r *VistoriaRepo) Create(v *entity.Vistoria) error {
	query := `
		INSERT INTO vistorias (` + vistoriaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.LaoID, v.CondicionanteID, v.Data, v.Observacao, v.Fonte, v.CriadoPor, v.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vistoria: %w", err)
	}
	return nil
}

// GetByCondicionanteEData obtém a vistoria por condicionante e data exata.
func (r *VistoriaRepo) GetByCondicionanteEData(condicionanteID string, data time.Time) (*entity.Vistoria, error) {
	query := `SELECT ` + vistoriaColumns + ` FROM vistorias WHERE condicionante_id = $1 AND data = $2`
	v, err := scanVistoria(r.q.QueryRow(context.Background(), query, condicionanteID, data))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vistoria: %w", err)
	}
	return v, nil
}

// ListByCondicionante lista as vistorias de uma condicionante, mais antiga primeiro.
func (r *VistoriaRepo) ListByCondicionante(condicionanteID string) ([]*entity.Vistoria, error) {
	query := `SELECT ` + vistoriaColumns + ` FROM vistorias WHERE condicionante_id = $1 ORDER BY data`
	rows, err := r.q.Query(context.Background(), query, condicionanteID)
	if err != nil {
		return nil, fmt.Errorf("list vistorias da condicionante: %w", err)
	}
	defer rows.Close()
	return scanVistorias(rows)
}

// ListByLao lista todas as vistorias de uma licença.
func (r *VistoriaRepo) ListByLao(laoID string) ([]*entity.Vistoria, error) {
	query := `SELECT ` + vistoriaColumns + ` FROM vistorias WHERE lao_id = $1 ORDER BY data`
	rows, err := r.q.Query(context.Background(), query, laoID)
	if err != nil {
		return nil, fmt.Errorf("list vistorias do lao: %w", err)
	}
	defer rows.Close()
	return scanVistorias(rows)
}

// ListAll devolve todas as vistorias (snapshot de importação).
func (r *VistoriaRepo) ListAll() ([]*entity.Vistoria, error) {
	query := `SELECT ` + vistoriaColumns + ` FROM vistorias ORDER BY data`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all vistorias: %w", err)
	}
	defer rows.Close()
	return scanVistorias(rows)
}

// Delete remove uma vistoria.
func (r *VistoriaRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM vistorias WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete vistoria: %w", err)
	}
	return nil
}

func scanVistoria(row pgx.Row) (*entity.Vistoria, error) {
	var v entity.Vistoria
	err := row.Scan(
		&v.ID, &v.LaoID, &v.CondicionanteID, &v.Data, &v.Observacao, &v.Fonte, &v.CriadoPor, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanVistorias(rows pgx.Rows) ([]*entity.Vistoria, error) {
	var out []*entity.Vistoria
	for rows.Next() {
		v, err := scanVistoria(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vistoria: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
