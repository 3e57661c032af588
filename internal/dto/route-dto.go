package dto

import (
	"github.com/aarondl/null/v8"
)

type RouteDTO struct {
	ID           uint64      `json:"id"`
	SubmissionID string      `json:"submission_id"`
	Colaborador  string      `json:"colaborador"`
	Funcionario  string      `json:"funcionario"`
	Endereco     string      `json:"endereco"`
	Numero       string      `json:"numero"`
	Complemento  string      `json:"complemento"`
	Bairro       string      `json:"bairro"`
	Cidade       string      `json:"cidade"`
	Estado       string      `json:"estado"`
	Cep          string      `json:"cep"`
	Observacao   string      `json:"observacao"`
	DataEntrega  string      `json:"dataEntrega"`
	Prioridade   string      `json:"prioridade"`
	Status       string      `json:"status"`
	Origem       string      `json:"origem"`
	DataCriacao  string      `json:"dataCriacao"`
	ExecutedAt   null.String `json:"executedAt"`
}

type CreateRouteDTO struct {
	SubmissionID string `json:"submission_id" validate:"omitempty,max=120"`
	Colaborador  string `json:"colaborador" validate:"required"`
	Funcionario  string `json:"funcionario" validate:"required"`
	Endereco     string `json:"endereco" validate:"required"`
	Numero       string `json:"numero" validate:"required"`
	Complemento  string `json:"complemento"`
	Bairro       string `json:"bairro"`
	Cidade       string `json:"cidade"`
	Estado       string `json:"estado"`
	Cep          string `json:"cep" validate:"omitempty,cep_br"`
	Observacao   string `json:"observacao"`
	DataEntrega  string `json:"dataEntrega" validate:"omitempty,data_br"`
	Prioridade   string `json:"prioridade"`
	Status       string `json:"status" validate:"omitempty,route_status"`
	Origem       string `json:"origem" validate:"omitempty,oneof=manual excel"`
}

// UpdateRouteDTO é todo de ponteiros: campo ausente no JSON fica intocado,
// campo presente sobrescreve o valor atual.
type UpdateRouteDTO struct {
	SubmissionID *string `json:"submission_id" validate:"omitempty,max=120"`
	Colaborador  *string `json:"colaborador"`
	Funcionario  *string `json:"funcionario"`
	Endereco     *string `json:"endereco"`
	Numero       *string `json:"numero"`
	Complemento  *string `json:"complemento"`
	Bairro       *string `json:"bairro"`
	Cidade       *string `json:"cidade"`
	Estado       *string `json:"estado"`
	Cep          *string `json:"cep" validate:"omitempty,cep_br"`
	Observacao   *string `json:"observacao"`
	DataEntrega  *string `json:"dataEntrega"`
	Prioridade   *string `json:"prioridade"`
	Status       *string `json:"status" validate:"omitempty,route_status"`
	ExecutedAt   *string `json:"executedAt"`
}

func (u UpdateRouteDTO) IsEmpty() bool {
	return u.SubmissionID == nil && u.Colaborador == nil && u.Funcionario == nil &&
		u.Endereco == nil && u.Numero == nil && u.Complemento == nil &&
		u.Bairro == nil && u.Cidade == nil && u.Estado == nil && u.Cep == nil &&
		u.Observacao == nil && u.DataEntrega == nil && u.Prioridade == nil &&
		u.Status == nil && u.ExecutedAt == nil
}

type RouteListDTO struct {
	Routes []RouteDTO `json:"routes"`
}

// SyncResultDTO resume um ciclo de replay da fila offline: criadas com
// sucesso, descartadas por duplicata e mantidas na fila por falha transitória.
type SyncResultDTO struct {
	Sincronizadas int `json:"sincronizadas"`
	Descartadas   int `json:"descartadas"`
	Mantidas      int `json:"mantidas"`
}

type ImportResultDTO struct {
	Importadas int `json:"importadas"`
	Ignoradas  int `json:"ignoradas"`
}

type ContadoresDTO struct {
	Total      int `json:"total"`
	Executadas int `json:"executadas"`
	Pendentes  int `json:"pendentes"`
}

// BoardDTO é o snapshot filtrado e particionado que as telas de admin e de
// funcionário renderizam.
type BoardDTO struct {
	Pendentes    []RouteDTO    `json:"pendentes"`
	Executadas   []RouteDTO    `json:"executadas"`
	Contadores   ContadoresDTO `json:"contadores"`
	Funcionarios []string      `json:"funcionarios"`
}
