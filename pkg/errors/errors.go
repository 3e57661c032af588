package errors

import "fmt"

var (
	// Tokens
	ErrInvalidSigningMethod = fmt.Errorf("método de assinatura do token inválido")
	ErrInvalidToken         = fmt.Errorf("token inválido")
	ErrTokenExpired         = fmt.Errorf("token expirado")
	ErrTokenNotYetValid     = fmt.Errorf("token ainda não é válido")
	ErrTokenIsNotAccess     = fmt.Errorf("o token não é um token de acesso")

	// Autorização
	ErrEmptyAuthHeader    = fmt.Errorf("cabeçalho de autorização ausente")
	ErrInvalidAuthHeader  = fmt.Errorf("formato do cabeçalho de autorização inválido")
	ErrInvalidCredentials = fmt.Errorf("credenciais inválidas")

	// Gerais
	ErrNotFound   = fmt.Errorf("registro não encontrado")
	ErrConflict   = fmt.Errorf("registro duplicado")
	ErrBadRequest = fmt.Errorf("requisição inválida")
)

// HttpError carrega o código HTTP e a mensagem para o cliente, além do erro
// interno e do contexto extra que vão apenas para o log.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}
