package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sirene/bombeiros-api/internal/core/domain"
	"github.com/sirene/bombeiros-api/internal/core/ports"
)

const ocorrenciaColumns = `id, tipo_ocorrencia, descricao, data_hora, cidade, bairro, localizacao_gps, status, assinatura_digital, foto_url, video_url, created_at`

type OcorrenciaRepository struct {
	db *sql.DB
}

var _ ports.OcorrenciaRepository = (*OcorrenciaRepository)(nil)

func NewOcorrenciaRepository(db *sql.DB) *OcorrenciaRepository {
	return &OcorrenciaRepository{db: db}
}

func scanOcorrencia(row rowScanner) (*domain.Ocorrencia, error) {
	var o domain.Ocorrencia
	err := row.Scan(&o.ID, &o.TipoOcorrencia, &o.Descricao, &o.DataHora, &o.Cidade, &o.Bairro,
		&o.LocalizacaoGPS, &o.Status, &o.AssinaturaDigital, &o.FotoURL, &o.VideoURL, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	o.DataHora = o.DataHora.UTC()
	o.CreatedAt = o.CreatedAt.UTC()
	return &o, nil
}

func insertRegistro(ctx context.Context, tx *sql.Tx, reg domain.RegistroOcorrencia) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO registro_ocorrencia (id, id_ocorrencia, id_militar, acao, data_hora) VALUES ($1, $2, $3, $4, $5)`,
		reg.ID, reg.IDOcorrencia, reg.IDMilitar, reg.Acao, reg.DataHora,
	)
	return mapError(err)
}

// Create inserts the incident and its first registro in one transaction.
func (r *OcorrenciaRepository) Create(ctx context.Context, o *domain.Ocorrencia, first domain.RegistroOcorrencia) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO ocorrencia (`+ocorrenciaColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			o.ID, o.TipoOcorrencia, o.Descricao, o.DataHora, o.Cidade, o.Bairro,
			o.LocalizacaoGPS, o.Status, o.AssinaturaDigital, o.FotoURL, o.VideoURL, o.CreatedAt,
		)
		if err != nil {
			return mapError(err)
		}
		return insertRegistro(ctx, tx, first)
	})
}

// FindByID loads the incident with its registros, oldest first.
func (r *OcorrenciaRepository) FindByID(ctx context.Context, id string) (*domain.Ocorrencia, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	o, err := scanOcorrencia(r.db.QueryRowContext(ctx, `SELECT `+ocorrenciaColumns+` FROM ocorrencia WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, id_ocorrencia, id_militar, acao, data_hora
		   FROM registro_ocorrencia
		  WHERE id_ocorrencia = $1
		  ORDER BY data_hora, id`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("list registros: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var reg domain.RegistroOcorrencia
		if err := rows.Scan(&reg.ID, &reg.IDOcorrencia, &reg.IDMilitar, &reg.Acao, &reg.DataHora); err != nil {
			return nil, fmt.Errorf("scan registro: %w", err)
		}
		reg.DataHora = reg.DataHora.UTC()
		o.Registros = append(o.Registros, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list registros: %w", err)
	}
	return o, nil
}

func buildOcorrenciaFilter(f ports.ListOcorrenciasFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.Status != "" {
		add("lower(status) = lower($%d)", f.Status)
	}
	if f.Tipo != "" {
		add("tipo_ocorrencia = $%d", f.Tipo)
	}
	if f.Cidade != "" {
		add("cidade ILIKE $%d", f.Cidade)
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns incidents newest first. Registros are not loaded.
func (r *OcorrenciaRepository) List(ctx context.Context, f ports.ListOcorrenciasFilter) ([]*domain.Ocorrencia, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	where, args := buildOcorrenciaFilter(f)

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ocorrencia`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ocorrencias: %w", err)
	}

	n := len(args)
	query := fmt.Sprintf(`SELECT %s FROM ocorrencia%s ORDER BY data_hora DESC, id LIMIT $%d OFFSET $%d`,
		ocorrenciaColumns, where, n+1, n+2)
	rows, err := r.db.QueryContext(ctx, query, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list ocorrencias: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.Ocorrencia, 0, f.Limit)
	for rows.Next() {
		o, err := scanOcorrencia(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan ocorrencia: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list ocorrencias: %w", err)
	}
	return out, total, nil
}

// UpdateStatus sets the status and appends reg in one transaction.
func (r *OcorrenciaRepository) UpdateStatus(ctx context.Context, id, status string, reg domain.RegistroOcorrencia) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `UPDATE ocorrencia SET status = $2 WHERE id = $1`, id, status)
		if err := affectedOne(res, err); err != nil {
			return err
		}
		return insertRegistro(ctx, tx, reg)
	})
}

func (r *OcorrenciaRepository) countBy(ctx context.Context, column string) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT `+column+`, COUNT(*) FROM ocorrencia GROUP BY `+column)
	if err != nil {
		return nil, fmt.Errorf("count by %s: %w", column, err)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var (
			key string
			n   int64
		)
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		out[key] = n
	}
	return out, rows.Err()
}

func (r *OcorrenciaRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return r.countBy(ctx, "status")
}

func (r *OcorrenciaRepository) CountByTipo(ctx context.Context) (map[string]int64, error) {
	return r.countBy(ctx, "tipo_ocorrencia")
}
