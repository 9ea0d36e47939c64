// Package domain contém as estruturas de dados do domínio da automação de criadores
package domain

import "time"

type CreatorStatus string

const (
	CreatorStatusActive   CreatorStatus = "active"
	CreatorStatusInactive CreatorStatus = "inactive"
)

// Creator é a raiz do agregado: conexões e relatórios pertencem a ele
type Creator struct {
	ID               string                `json:"id"`
	Username         string                `json:"username"`
	DisplayName      *string               `json:"display_name"`
	Email            *string               `json:"email"`
	Status           CreatorStatus         `json:"status"`
	PerformanceScore *float64              `json:"performance_score"`
	Platforms        []*PlatformConnection `json:"creator_platforms"`
	CreatedAt        time.Time             `json:"created_at"`
}

// Name retorna o nome de exibição, ou o username quando não houver
func (c *Creator) Name() string {
	if c.DisplayName != nil && *c.DisplayName != "" {
		return *c.DisplayName
	}
	return c.Username
}

func (c *Creator) HasEmail() bool {
	return c.Email != nil && *c.Email != ""
}
