package log

import (
	"context"

	"github.com/google/uuid"
)

type correlationKey struct{}

const correlationIDField = "correlation_id"

// WithCorrelationID garante um ID de correlação no contexto. Um ID já presente é
// mantido, assim um sync disparado pela API segue com o ID da requisição.
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	if id := GetCorrelationID(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return context.WithValue(ctx, correlationKey{}, id), id
}

// ContextWithCorrelationID fixa um ID vindo de fora, como o header X-Correlation-ID
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

// ForContext devolve o logger global já com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
