package handler

import (
	"time"

	"github.com/sirene/bombeiros-api/internal/core/domain"
)

// --- Auth ---

type loginRequest struct {
	Matricula string `json:"matricula" validate:"required"`
	Senha     string `json:"senha"     validate:"required"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

type loginUser struct {
	Nome  string        `json:"nome"`
	Cargo domain.Perfil `json:"cargo"`
}

type recuperarSenhaRequest struct {
	Matricula string `json:"matricula" validate:"required"`
	CPF       string `json:"cpf"       validate:"required"`
}

type recuperarSenhaResponse struct {
	ID string `json:"id"`
}

type redefinirSenhaRequest struct {
	ID             string `json:"id"             validate:"required"`
	NovaSenha      string `json:"novaSenha"      validate:"required,min=6,maxbytes=72"`
	ConfirmarSenha string `json:"confirmarSenha" validate:"required"`
}

// --- Militar ---

type createMilitarRequest struct {
	Nome         string `json:"nome"         validate:"required,max=120"`
	Matricula    string `json:"matricula"    validate:"required,max=30"`
	CPF          string `json:"cpf"          validate:"required,max=14"`
	Posto        string `json:"posto"        validate:"max=60"`
	Email        string `json:"email"        validate:"required,email"`
	Senha        string `json:"senha"        validate:"required,min=6,maxbytes=72"`
	PerfilAcesso string `json:"perfilAcesso" validate:"omitempty,oneof=ADMIN COMANDANTE MILITAR admin comandante militar"`
}

type updateMilitarRequest struct {
	Nome         *string `json:"nome"         validate:"omitempty,max=120"`
	Matricula    *string `json:"matricula"    validate:"omitempty,max=30"`
	CPF          *string `json:"cpf"          validate:"omitempty,max=14"`
	Posto        *string `json:"posto"        validate:"omitempty,max=60"`
	Email        *string `json:"email"        validate:"omitempty,email"`
	Senha        *string `json:"senha"        validate:"omitempty,min=6,maxbytes=72"`
	PerfilAcesso *string `json:"perfilAcesso" validate:"omitempty,oneof=ADMIN COMANDANTE MILITAR admin comandante militar"`
}

type militarListResponse struct {
	Militares  []*domain.Militar `json:"militares"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

// --- Ocorrencia ---

type createOcorrenciaRequest struct {
	TipoOcorrencia    string    `json:"tipoOcorrencia"    validate:"required,max=80"`
	Descricao         string    `json:"descricao"         validate:"required"`
	DataHora          time.Time `json:"dataHora"`
	Cidade            string    `json:"cidade"            validate:"max=120"`
	Bairro            string    `json:"bairro"            validate:"max=120"`
	LocalizacaoGPS    string    `json:"localizacaoGps"    validate:"max=120"`
	Status            string    `json:"status"            validate:"max=40"`
	AssinaturaDigital string    `json:"assinaturaDigital"`
	FotoURL           string    `json:"fotoUrl"           validate:"omitempty,url"`
	VideoURL          string    `json:"videoUrl"          validate:"omitempty,url"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,max=40"`
}

// ocorrenciaResponse adds the normalized status bucket to an incident.
type ocorrenciaResponse struct {
	*domain.Ocorrencia
	StatusNormalizado string `json:"statusNormalizado"`
}

type ocorrenciaListResponse struct {
	Ocorrencias []ocorrenciaResponse `json:"ocorrencias"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"totalPages"`
}

// --- Auditoria ---

type auditoriaListResponse struct {
	Logs       []*domain.LogAuditoria `json:"logs"`
	Total      int64                  `json:"total"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"totalPages"`
}
