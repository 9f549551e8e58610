package domain

import (
	"strings"
	"time"
)

// Perfil is the access profile of a militar.
type Perfil string

const (
	PerfilAdmin      Perfil = "ADMIN"
	PerfilComandante Perfil = "COMANDANTE"
	PerfilMilitar    Perfil = "MILITAR"
)

// ParsePerfil normalizes s and reports whether it names a known profile.
func ParsePerfil(s string) (Perfil, bool) {
	p := Perfil(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case PerfilAdmin, PerfilComandante, PerfilMilitar:
		return p, true
	}
	return "", false
}

// In reports whether p is a member of allowed.
func (p Perfil) In(allowed ...Perfil) bool {
	for _, a := range allowed {
		if a == p {
			return true
		}
	}
	return false
}

// Militar is a user of the system. Matricula is the login key.
type Militar struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	Matricula    string    `json:"matricula"`
	CPF          string    `json:"cpf"`
	Posto        string    `json:"posto"`
	Email        string    `json:"email"`
	SenhaHash    string    `json:"-"`
	PerfilAcesso Perfil    `json:"perfilAcesso"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity is the view of the authenticated militar attached to a request.
type Identity struct {
	ID           string `json:"id"`
	Nome         string `json:"nome"`
	Matricula    string `json:"matricula"`
	Posto        string `json:"posto"`
	PerfilAcesso Perfil `json:"perfilAcesso"`
}

// Identity returns the request identity for m.
func (m *Militar) Identity() *Identity {
	return &Identity{
		ID:           m.ID,
		Nome:         m.Nome,
		Matricula:    m.Matricula,
		Posto:        m.Posto,
		PerfilAcesso: m.PerfilAcesso,
	}
}
