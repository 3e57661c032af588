package entities

import "time"

const (
	PerfilAdmin       = "admin"
	PerfilFuncionario = "funcionario"
)

type User struct {
	ID       uint64
	Login    string
	Password string
	Nome     string
	Perfil   string
	CriadoEm time.Time
}
