package domain

import "time"

// LogAuditoria is an append-only audit entry. Matricula and Nome are a
// snapshot taken at write time so entries stay readable after the militar
// is removed.
type LogAuditoria struct {
	ID        string    `json:"id"`
	IDMilitar string    `json:"idMilitar"`
	Matricula string    `json:"matricula,omitempty"`
	Nome      string    `json:"nome,omitempty"`
	Acao      string    `json:"acao"`
	DataHora  time.Time `json:"dataHora"`
	IPOrigem  string    `json:"ipOrigem"`
}
