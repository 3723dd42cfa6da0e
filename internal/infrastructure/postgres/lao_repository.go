package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/AmbientalSC/licencas/internal/domain"
	"github.com/AmbientalSC/licencas/internal/domain/entity"
	"github.com/AmbientalSC/licencas/internal/domain/repository"
)

var _ repository.LaoRepository = (*LaoRepo)(nil)

// LaoRepo implementação do porto LaoRepository sobre PostgreSQL (usável com pool ou tx).
// Detalhes e Anexos são colunas JSONB: listas ordenadas, não relacionais.
type LaoRepo struct {
	q Querier
}

// NewLaoRepository constrói o adaptador de persistência para licenças.
func NewLaoRepository(q Querier) *LaoRepo {
	return &LaoRepo{q: q}
}

const laoColumns = `id, numero_lao, titulo, empreendimento, filial_id, categoria,
	processo, fcei, codam, emissao, validade, detalhes, anexos, ativo, created_at, updated_at`

// Create persiste uma nova licença.
func (r *LaoRepo) Create(l *entity.Lao) error {
	detalhes, anexos, err := marshalJSONB(l)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO laos (` + laoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = r.q.Exec(context.Background(), query,
		l.ID, l.NumeroLao, l.Titulo, l.Empreendimento, l.FilialID, l.Categoria,
		l.Processo, l.FCEI, l.CODAM, l.Emissao, l.Validade, detalhes, anexos,
		l.Ativo, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lao: %w", err)
	}
	return nil
}

// GetByID obtém uma licença por ID.
func (r *LaoRepo) GetByID(id string) (*entity.Lao, error) {
	query := `SELECT ` + laoColumns + ` FROM laos WHERE id = $1`
	l, err := scanLao(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lao: %w", err)
	}
	return l, nil
}

// Update atualiza uma licença existente (todos os campos mutáveis).
func (r *LaoRepo) Update(l *entity.Lao) error {
	detalhes, anexos, err := marshalJSONB(l)
	if err != nil {
		return err
	}
	query := `
		UPDATE laos SET numero_lao = $2, titulo = $3, empreendimento = $4, filial_id = $5,
			categoria = $6, processo = $7, fcei = $8, codam = $9, emissao = $10,
			validade = $11, detalhes = $12, anexos = $13, ativo = $14, updated_at = $15
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		l.ID, l.NumeroLao, l.Titulo, l.Empreendimento, l.FilialID, l.Categoria,
		l.Processo, l.FCEI, l.CODAM, l.Emissao, l.Validade, detalhes, anexos,
		l.Ativo, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update lao: %w", err)
	}
	return nil
}

// SetAtivo exclusão lógica (ativo=false) ou reativação.
func (r *LaoRepo) SetAtivo(id string, ativo bool) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE laos SET ativo = $2, updated_at = now() WHERE id = $1`, id, ativo)
	if err != nil {
		return fmt.Errorf("set ativo lao: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista licenças com paginação, opcionalmente só as ativas.
func (r *LaoRepo) List(somenteAtivos bool, limit, offset int) ([]*entity.Lao, error) {
	query := `SELECT ` + laoColumns + ` FROM laos`
	if somenteAtivos {
		query += ` WHERE ativo`
	}
	query += ` ORDER BY validade, numero_lao LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list laos: %w", err)
	}
	defer rows.Close()
	return scanLaos(rows)
}

// ListAll devolve todos os registros, ativos ou não (snapshot de importação).
func (r *LaoRepo) ListAll() ([]*entity.Lao, error) {
	query := `SELECT ` + laoColumns + ` FROM laos ORDER BY validade, numero_lao`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all laos: %w", err)
	}
	defer rows.Close()
	return scanLaos(rows)
}

// Delete exclusão física; cascateia condicionantes e vistorias.
func (r *LaoRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM vistorias WHERE lao_id = $1`, id); err != nil {
		return fmt.Errorf("delete vistorias do lao: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM condicionantes WHERE lao_id = $1`, id); err != nil {
		return fmt.Errorf("delete condicionantes do lao: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM laos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete lao: %w", err)
	}
	return nil
}

func marshalJSONB(l *entity.Lao) (detalhes, anexos []byte, err error) {
	if detalhes, err = json.Marshal(l.Detalhes); err != nil {
		return nil, nil, fmt.Errorf("marshal detalhes: %w", err)
	}
	if anexos, err = json.Marshal(l.Anexos); err != nil {
		return nil, nil, fmt.Errorf("marshal anexos: %w", err)
	}
	return detalhes, anexos, nil
}

func scanLao(row pgx.Row) (*entity.Lao, error) {
	var l entity.Lao
	var detalhes, anexos []byte
	err := row.Scan(
		&l.ID, &l.NumeroLao, &l.Titulo, &l.Empreendimento, &l.FilialID, &l.Categoria,
		&l.Processo, &l.FCEI, &l.CODAM, &l.Emissao, &l.Validade, &detalhes, &anexos,
		&l.Ativo, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(detalhes) > 0 {
		if err := json.Unmarshal(detalhes, &l.Detalhes); err != nil {
			return nil, fmt.Errorf("unmarshal detalhes: %w", err)
		}
	}
	if len(anexos) > 0 {
		if err := json.Unmarshal(anexos, &l.Anexos); err != nil {
			return nil, fmt.Errorf("unmarshal anexos: %w", err)
		}
	}
	return &l, nil
}

func scanLaos(rows pgx.Rows) ([]*entity.Lao, error) {
	var out []*entity.Lao
	for rows.Next() {
		l, err := scanLao(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lao: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
