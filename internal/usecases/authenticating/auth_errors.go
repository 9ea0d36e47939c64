package authenticating

import (
	"errors"

	"github.com/vfg2006/creator-automation/pkg/apiErrors"
)

var (
	ErrMissingSecret = errors.New("AUTH_SECRET não configurado")
	ErrInvalidToken  = errors.New("token inválido")
	ErrExpiredToken  = errors.New("token expirado")
)

// TokenError é devolvido por ValidateToken. Kind é ErrInvalidToken ou ErrExpiredToken
// e Cause guarda o erro do parser jwt, quando houver.
type TokenError struct {
	Kind  error
	Cause error
}

func (e *TokenError) Error() string {
	if e.Cause == nil {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Cause.Error()
}

func (e *TokenError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// APICode traduz o tipo do erro para o código da API de operação
func (e *TokenError) APICode() apiErrors.Code {
	if errors.Is(e.Kind, ErrExpiredToken) {
		return apiErrors.ErrExpiredToken
	}
	return apiErrors.ErrInvalidToken
}
