package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/creator-automation/internal/scheduler"
	"github.com/vfg2006/creator-automation/pkg/apiErrors"
	"github.com/vfg2006/creator-automation/pkg/log"
	"github.com/vfg2006/creator-automation/pkg/middleware"
)

// RunCronJob dispara um job em background. A resposta não espera o término.
func RunCronJob(runner scheduler.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobName := httprouter.ParamsFromContext(r.Context()).ByName("job")

		logger := log.ForContext(r.Context()).WithField("job", jobName)
		if claims, ok := middleware.OperatorFromContext(r.Context()); ok {
			logger = logger.WithField("subject", claims.Subject)
		}

		err := runner.Trigger(r.Context(), jobName)
		switch {
		case errors.Is(err, scheduler.ErrUnknownJob):
			apiErrors.WriteError(w, apiErrors.ErrJobNotFound, "", map[string]string{"job": jobName})
			return
		case errors.Is(err, scheduler.ErrJobRunning):
			logger.Info("api: manual trigger ignored, job already running")
			apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, "", map[string]string{"job": jobName})
			return
		case err != nil:
			logger.WithError(err).Error("api: manual trigger failed")
			apiErrors.Write(w, apiErrors.FromError(err, apiErrors.ErrInternalServer))
			return
		}

		logger.Info("api: job triggered manually")
		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Job iniciado",
			"job":     jobName,
		})
	}
}

func GetCronStatus(runner scheduler.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"jobs": runner.Status(),
		})
	}
}
