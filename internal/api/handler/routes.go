package handler

import (
	"net/http"

	"github.com/vfg2006/sales-report/internal/api/handler/router"
	"github.com/vfg2006/sales-report/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report/pkg/middleware"
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

func Report(scheduler ReportScheduler, authenticator authenticating.Authenticator, outputDir string) []router.Route {
	auth := middleware.AuthMiddleware(authenticator)

	return []router.Route{
		{
			Path:        "/v1/report/status",
			Method:      http.MethodGet,
			Handler:     GetReportStatus(scheduler),
			Middlewares: []func(http.Handler) http.Handler{auth, middleware.AllRoles()},
		},
		{
			Path:        "/v1/report/run",
			Method:      http.MethodPost,
			Handler:     RunReport(scheduler),
			Middlewares: []func(http.Handler) http.Handler{auth, middleware.AdminOnly()},
		},
		{
			Path:        "/v1/report/manifest",
			Method:      http.MethodGet,
			Handler:     GetManifest(outputDir),
			Middlewares: []func(http.Handler) http.Handler{auth, middleware.AllRoles()},
		},
	}
}
