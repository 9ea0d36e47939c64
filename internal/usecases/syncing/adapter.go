package syncing

import (
	"context"

	"github.com/vfg2006/creator-automation/internal/domain"
)

//go:generate mockgen -source=adapter.go -destination=mocks/adapter_mock.go -package=mocks

// PlatformAdapter busca as métricas normalizadas de uma conexão. Uma falha vale
// para a tentativa inteira: nenhum adapter devolve métricas parciais junto com erro.
type PlatformAdapter interface {
	Platform() domain.Platform
	FetchMetrics(ctx context.Context, conn *domain.PlatformConnection) (*domain.PlatformMetrics, error)
}

// Registry resolve o adapter de cada plataforma. Plataformas sem credenciais
// configuradas simplesmente não são registradas.
type Registry map[domain.Platform]PlatformAdapter

func NewRegistry(adapters ...PlatformAdapter) Registry {
	registry := make(Registry, len(adapters))
	for _, adapter := range adapters {
		registry[adapter.Platform()] = adapter
	}
	return registry
}

func (r Registry) Adapter(platform domain.Platform) (PlatformAdapter, error) {
	if !domain.IsValidPlatform(string(platform)) {
		return nil, domain.ErrUnsupportedPlatform
	}

	adapter, ok := r[platform]
	if !ok {
		return nil, domain.ErrPlatformNotConfigured
	}

	return adapter, nil
}
