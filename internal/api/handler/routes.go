package handler

import (
	"net/http"

	"github.com/vfg2006/creator-automation/internal/api/handler/router"
	"github.com/vfg2006/creator-automation/internal/scheduler"
	"github.com/vfg2006/creator-automation/internal/usecases/monitoring"
	"github.com/vfg2006/creator-automation/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Status(reader monitoring.StatusReader) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/status",
			Method:      http.MethodGet,
			Handler:     GetStatus(reader),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
	}
}

func CronJobs(runner scheduler.Runner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/cron/:job",
			Method:      http.MethodPost,
			Handler:     RunCronJob(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
