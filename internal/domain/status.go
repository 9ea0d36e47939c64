package domain

// StatusOverview é o que o operador vê no comando status e em GET /v1/status
type StatusOverview struct {
	Connections []*ConnectionSyncStatus `json:"connections"`
	Reports     []*AnalyticsReport      `json:"reports"`
}
