package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/creator-automation/internal/usecases/monitoring"
	"github.com/vfg2006/creator-automation/pkg/apiErrors"
	"github.com/vfg2006/creator-automation/pkg/log"
)

// GetStatus lista os últimos estados de sincronização e relatórios
func GetStatus(reader monitoring.StatusReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", map[string]string{"limit": raw})
				return
			}
			limit = parsed
		}

		overview, err := reader.Overview(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("api: could not load status overview")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar status", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, overview)
	}
}
