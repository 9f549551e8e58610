package domain

import (
	"strings"
	"time"
)

// Normalized incident statuses shown by the front end.
const (
	StatusEmAberto  = "Em aberto"
	StatusAndamento = "Andamento"
	StatusFechado   = "Fechado"
)

var statusAliases = map[string]string{
	"aberto":         StatusEmAberto,
	"em aberto":      StatusEmAberto,
	"aberta":         StatusEmAberto,
	"novo":           StatusEmAberto,
	"open":           StatusEmAberto,
	"andamento":      StatusAndamento,
	"em andamento":   StatusAndamento,
	"atendimento":    StatusAndamento,
	"em atendimento": StatusAndamento,
	"in progress":    StatusAndamento,
	"fechado":        StatusFechado,
	"fechada":        StatusFechado,
	"encerrado":      StatusFechado,
	"encerrada":      StatusFechado,
	"finalizado":     StatusFechado,
	"concluido":      StatusFechado,
	"concluído":      StatusFechado,
	"closed":         StatusFechado,
}

// NormalizeStatus maps a free-form status to one of the three known buckets.
// Unknown values fall into StatusEmAberto.
func NormalizeStatus(s string) string {
	key := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	key = strings.ReplaceAll(key, "_", " ")
	if v, ok := statusAliases[key]; ok {
		return v
	}
	return StatusEmAberto
}

// Ocorrencia is an incident attended by the department.
type Ocorrencia struct {
	ID                string               `json:"id"`
	TipoOcorrencia    string               `json:"tipoOcorrencia"`
	Descricao         string               `json:"descricao"`
	DataHora          time.Time            `json:"dataHora"`
	Cidade            string               `json:"cidade"`
	Bairro            string               `json:"bairro"`
	LocalizacaoGPS    string               `json:"localizacaoGps"`
	Status            string               `json:"status"`
	AssinaturaDigital string               `json:"assinaturaDigital,omitempty"`
	FotoURL           string               `json:"fotoUrl,omitempty"`
	VideoURL          string               `json:"videoUrl,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
	Registros         []RegistroOcorrencia `json:"registros,omitempty"`
}

// RegistroOcorrencia records who acted on an incident and when.
type RegistroOcorrencia struct {
	ID           string    `json:"id"`
	IDOcorrencia string    `json:"idOcorrencia"`
	IDMilitar    string    `json:"idMilitar"`
	Acao         string    `json:"acao"`
	DataHora     time.Time `json:"dataHora"`
}
