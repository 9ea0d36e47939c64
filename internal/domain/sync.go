package domain

import "time"

type ConnectionSyncState string

const (
	ConnectionSynced  ConnectionSyncState = "completed"
	ConnectionFailed  ConnectionSyncState = "failed"
	ConnectionSkipped ConnectionSyncState = "skipped"
)

// ConnectionOutcome é o resultado da sincronização de um par (creator, platform)
type ConnectionOutcome struct {
	ConnectionID string              `json:"connection_id"`
	Platform     Platform            `json:"platform"`
	State        ConnectionSyncState `json:"state"`
	Error        string              `json:"error,omitempty"`
}

// CreatorSyncOutcome agrega o resultado de um criador dentro de um lote.
// Err preenchido significa que algo escapou do tratamento por conexão.
type CreatorSyncOutcome struct {
	CreatorID   string              `json:"creator_id"`
	Username    string              `json:"username"`
	Connections []ConnectionOutcome `json:"connections"`
	Err         error               `json:"-"`
}

func (o CreatorSyncOutcome) OK() bool {
	return o.Err == nil
}

type CreatorFailure struct {
	CreatorID string `json:"creator_id"`
	Username  string `json:"username"`
	Error     string `json:"error"`
}

// SyncSummary é o retorno de uma execução completa de sincronização
type SyncSummary struct {
	StartedAt          time.Time        `json:"started_at"`
	FinishedAt         time.Time        `json:"finished_at"`
	Creators           int              `json:"creators"`
	ConnectionsSynced  int              `json:"connections_synced"`
	ConnectionsFailed  int              `json:"connections_failed"`
	ConnectionsSkipped int              `json:"connections_skipped"`
	Succeeded          []string         `json:"succeeded"`
	Failed             []CreatorFailure `json:"failed"`
}

// Add contabiliza o resultado de um criador no resumo
func (s *SyncSummary) Add(outcome CreatorSyncOutcome) {
	s.Creators++
	for _, conn := range outcome.Connections {
		switch conn.State {
		case ConnectionSynced:
			s.ConnectionsSynced++
		case ConnectionFailed:
			s.ConnectionsFailed++
		case ConnectionSkipped:
			s.ConnectionsSkipped++
		}
	}

	if outcome.OK() {
		s.Succeeded = append(s.Succeeded, outcome.Username)
		return
	}

	s.Failed = append(s.Failed, CreatorFailure{
		CreatorID: outcome.CreatorID,
		Username:  outcome.Username,
		Error:     outcome.Err.Error(),
	})
}

// SyncErrorLog é a entrada append-only da trilha de auditoria (automation_executions)
type SyncErrorLog struct {
	ID             string    `json:"id"`
	AutomationType string    `json:"automation_type"`
	CreatorID      string    `json:"creator_id"`
	Status         string    `json:"status"`
	ErrorMessage   string    `json:"error_message"`
	ExecutedAt     time.Time `json:"executed_at"`
}

const AutomationTypeMetricsSync = "metrics_sync"
