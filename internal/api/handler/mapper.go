package handler

import (
	"github.com/sirene/bombeiros-api/internal/core/domain"
	"github.com/sirene/bombeiros-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateMilitarInput(req createMilitarRequest) ports.CreateMilitarInput {
	return ports.CreateMilitarInput{
		Nome:         req.Nome,
		Matricula:    req.Matricula,
		CPF:          req.CPF,
		Posto:        req.Posto,
		Email:        req.Email,
		Senha:        req.Senha,
		PerfilAcesso: req.PerfilAcesso,
	}
}

func toUpdateMilitarInput(req updateMilitarRequest) ports.UpdateMilitarInput {
	return ports.UpdateMilitarInput{
		Nome:         req.Nome,
		Matricula:    req.Matricula,
		CPF:          req.CPF,
		Posto:        req.Posto,
		Email:        req.Email,
		Senha:        req.Senha,
		PerfilAcesso: req.PerfilAcesso,
	}
}

func toCreateOcorrenciaInput(req createOcorrenciaRequest) ports.CreateOcorrenciaInput {
	return ports.CreateOcorrenciaInput{
		TipoOcorrencia:    req.TipoOcorrencia,
		Descricao:         req.Descricao,
		DataHora:          req.DataHora,
		Cidade:            req.Cidade,
		Bairro:            req.Bairro,
		LocalizacaoGPS:    req.LocalizacaoGPS,
		Status:            req.Status,
		AssinaturaDigital: req.AssinaturaDigital,
		FotoURL:           req.FotoURL,
		VideoURL:          req.VideoURL,
	}
}

// --- Domain → Response ---

func toOcorrenciaResponse(o *domain.Ocorrencia) ocorrenciaResponse {
	return ocorrenciaResponse{Ocorrencia: o, StatusNormalizado: domain.NormalizeStatus(o.Status)}
}

func toOcorrenciaListResponse(p *ports.OcorrenciaPage) ocorrenciaListResponse {
	items := make([]ocorrenciaResponse, 0, len(p.Items))
	for _, o := range p.Items {
		items = append(items, toOcorrenciaResponse(o))
	}
	return ocorrenciaListResponse{
		Ocorrencias: items,
		Total:       p.Total,
		Page:        p.Page,
		Limit:       p.Limit,
		TotalPages:  p.TotalPages,
	}
}
