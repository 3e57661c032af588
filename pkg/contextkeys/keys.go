package contextkeys

type contextKey string

const (
	UserIDKey contextKey = "userID"
	PerfilKey contextKey = "perfil"
)
