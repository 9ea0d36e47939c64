package domain

import (
	"time"
)

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
)

var SupportedPlatforms = []Platform{PlatformInstagram, PlatformTikTok, PlatformYouTube}

func IsValidPlatform(p string) bool {
	for _, supported := range SupportedPlatforms {
		if string(supported) == p {
			return true
		}
	}
	return false
}

type SyncStatus string

const (
	SyncStatusPending   SyncStatus = "pending"
	SyncStatusCompleted SyncStatus = "completed"
	SyncStatusFailed    SyncStatus = "failed"
)

// PlatformConnection representa a conta de um criador em uma plataforma externa.
// Existe no máximo uma conexão por (creator, platform).
type PlatformConnection struct {
	ID             string           `json:"id"`
	CreatorID      string           `json:"creator_id"`
	Platform       Platform         `json:"platform"`
	AccessToken    string           `json:"-"`
	PlatformUserID string           `json:"platform_user_id"`
	Username       *string          `json:"platform_username"`
	IsConnected    bool             `json:"is_connected"`
	LastSyncAt     *time.Time       `json:"last_sync_at"`
	SyncStatus     SyncStatus       `json:"sync_status"`
	SyncError      *string          `json:"sync_error"`
	Metrics        *PlatformMetrics `json:"metrics"`
	FollowerCount  int64            `json:"follower_count"`
	FollowingCount int64            `json:"following_count"`
}

// HoursSinceLastSync trata uma conexão nunca sincronizada como infinitamente antiga
func (c *PlatformConnection) HoursSinceLastSync(now time.Time) float64 {
	if c.LastSyncAt == nil || c.LastSyncAt.IsZero() {
		return infiniteHours
	}
	return now.Sub(*c.LastSyncAt).Hours()
}

const infiniteHours = 1 << 31

// ConnectionSyncStatus é a visão de operador do estado de sincronização de uma conexão
type ConnectionSyncStatus struct {
	ConnectionID string     `json:"connection_id"`
	CreatorID    string     `json:"creator_id"`
	Username     string     `json:"username"`
	Platform     Platform   `json:"platform"`
	SyncStatus   SyncStatus `json:"sync_status"`
	SyncError    *string    `json:"sync_error"`
	LastSyncAt   *time.Time `json:"last_sync_at"`
	Followers    int64      `json:"follower_count"`
}
