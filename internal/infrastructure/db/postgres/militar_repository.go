package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirene/bombeiros-api/internal/core/domain"
	"github.com/sirene/bombeiros-api/internal/core/ports"
)

const militarColumns = `id, nome, matricula, cpf, posto, email, senha_hash, perfil_acesso, created_at, updated_at`

type MilitarRepository struct {
	db *sql.DB
}

var _ ports.MilitarRepository = (*MilitarRepository)(nil)

func NewMilitarRepository(db *sql.DB) *MilitarRepository {
	return &MilitarRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMilitar(row rowScanner) (*domain.Militar, error) {
	var (
		m      domain.Militar
		perfil string
	)
	err := row.Scan(&m.ID, &m.Nome, &m.Matricula, &m.CPF, &m.Posto, &m.Email, &m.SenhaHash, &perfil, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.PerfilAcesso = domain.Perfil(perfil)
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return &m, nil
}

// Create inserts a militar. Unique violations surface as domain.ErrDuplicateKey.
func (r *MilitarRepository) Create(ctx context.Context, m *domain.Militar) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO militar (`+militarColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID, m.Nome, m.Matricula, m.CPF, m.Posto, m.Email, m.SenhaHash, string(m.PerfilAcesso), m.CreatedAt, m.UpdatedAt,
	)
	return mapError(err)
}

func (r *MilitarRepository) findOne(ctx context.Context, where string, args ...any) (*domain.Militar, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	m, err := scanMilitar(r.db.QueryRowContext(ctx, `SELECT `+militarColumns+` FROM militar WHERE `+where, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return m, nil
}

func (r *MilitarRepository) FindByID(ctx context.Context, id string) (*domain.Militar, error) {
	return r.findOne(ctx, `id = $1`, id)
}

func (r *MilitarRepository) FindByMatricula(ctx context.Context, matricula string) (*domain.Militar, error) {
	return r.findOne(ctx, `matricula = $1`, matricula)
}

func (r *MilitarRepository) FindByMatriculaAndCPF(ctx context.Context, matricula, cpf string) (*domain.Militar, error) {
	return r.findOne(ctx, `matricula = $1 AND cpf = $2`, matricula, cpf)
}

// List returns one page ordered by nome and the total row count.
func (r *MilitarRepository) List(ctx context.Context, offset, limit int) ([]*domain.Militar, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM militar`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count militares: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+militarColumns+` FROM militar ORDER BY nome, id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list militares: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.Militar, 0, limit)
	for rows.Next() {
		m, err := scanMilitar(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan militar: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list militares: %w", err)
	}
	return out, total, nil
}

// Update overwrites every mutable column, including senha_hash.
func (r *MilitarRepository) Update(ctx context.Context, m *domain.Militar) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE militar
		    SET nome = $2, matricula = $3, cpf = $4, posto = $5, email = $6,
		        senha_hash = $7, perfil_acesso = $8, updated_at = $9
		  WHERE id = $1`,
		m.ID, m.Nome, m.Matricula, m.CPF, m.Posto, m.Email, m.SenhaHash, string(m.PerfilAcesso), m.UpdatedAt,
	)
	return affectedOne(res, err)
}

func (r *MilitarRepository) UpdatePassword(ctx context.Context, id, senhaHash string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE militar SET senha_hash = $2, updated_at = now() WHERE id = $1`,
		id, senhaHash,
	)
	return affectedOne(res, err)
}

// Delete removes the row. Militares still referenced by registros surface as
// domain.ErrReferenced.
func (r *MilitarRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM militar WHERE id = $1`, id)
	return affectedOne(res, err)
}

func affectedOne(res sql.Result, err error) error {
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
