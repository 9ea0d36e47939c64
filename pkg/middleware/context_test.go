package middleware

import (
	"context"
	"net/http"

	"github.com/vfg2006/creator-automation/internal/domain"
)

func contextWithOperator(r *http.Request, claims *domain.OperatorClaims) context.Context {
	return context.WithValue(r.Context(), ContextKeyOperator, claims)
}
