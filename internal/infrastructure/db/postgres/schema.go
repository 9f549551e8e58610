package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS militar (
		id            TEXT PRIMARY KEY,
		nome          TEXT NOT NULL,
		matricula     TEXT NOT NULL,
		cpf           TEXT NOT NULL,
		posto         TEXT NOT NULL DEFAULT '',
		email         TEXT NOT NULL,
		senha_hash    TEXT NOT NULL,
		perfil_acesso TEXT NOT NULL DEFAULT 'MILITAR',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT militar_matricula_key UNIQUE (matricula),
		CONSTRAINT militar_cpf_key UNIQUE (cpf),
		CONSTRAINT militar_email_key UNIQUE (email),
		CONSTRAINT militar_perfil_check CHECK (perfil_acesso IN ('ADMIN', 'COMANDANTE', 'MILITAR'))
	)`,
	`CREATE TABLE IF NOT EXISTS ocorrencia (
		id                 TEXT PRIMARY KEY,
		tipo_ocorrencia    TEXT NOT NULL,
		descricao          TEXT NOT NULL,
		data_hora          TIMESTAMPTZ NOT NULL,
		cidade             TEXT NOT NULL DEFAULT '',
		bairro             TEXT NOT NULL DEFAULT '',
		localizacao_gps    TEXT NOT NULL DEFAULT '',
		status             TEXT NOT NULL,
		assinatura_digital TEXT NOT NULL DEFAULT '',
		foto_url           TEXT NOT NULL DEFAULT '',
		video_url          TEXT NOT NULL DEFAULT '',
		created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS registro_ocorrencia (
		id            TEXT PRIMARY KEY,
		id_ocorrencia TEXT NOT NULL REFERENCES ocorrencia (id) ON DELETE CASCADE,
		id_militar    TEXT NOT NULL REFERENCES militar (id) ON DELETE RESTRICT,
		acao          TEXT NOT NULL,
		data_hora     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS ocorrencia_data_hora_idx ON ocorrencia (data_hora DESC)`,
	`CREATE INDEX IF NOT EXISTS ocorrencia_status_idx ON ocorrencia (lower(status))`,
	`CREATE INDEX IF NOT EXISTS registro_ocorrencia_ocorrencia_idx ON registro_ocorrencia (id_ocorrencia, data_hora)`,
	`CREATE INDEX IF NOT EXISTS registro_ocorrencia_militar_idx ON registro_ocorrencia (id_militar)`,
}

// EnsureSchema creates tables and indexes when missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
