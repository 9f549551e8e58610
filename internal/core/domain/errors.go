package domain

import "errors"

var (
	ErrValidation         = errors.New("dados inválidos")
	ErrInvalidCredentials = errors.New("Matrícula ou senha inválida.")
	ErrInvalidToken       = errors.New("token inválido")
	ErrForbidden          = errors.New("acesso negado")
	ErrNotFound           = errors.New("registro não encontrado")
	ErrDuplicateKey       = errors.New("dados duplicados")
	// ErrReferenced is returned when a delete would orphan dependent rows.
	ErrReferenced      = errors.New("registro possui vínculos")
	ErrTooManyAttempts = errors.New("muitas tentativas de login")
)
