package entities

const (
	StatusPendente  = "pendente"
	StatusExecutado = "executado"

	OrigemManual   = "manual"
	OrigemPlanilha = "excel"
)

// RouteFilter são os predicados do board. Valores vazios ou "all"
// desligam o predicado correspondente.
type RouteFilter struct {
	Status      string
	Funcionario string
	Busca       string
}
