package handler

import (
	"net/http"

	"github.com/eme-digital/ads-audit-api/internal/api/handler/router"
	"github.com/eme-digital/ads-audit-api/internal/usecases/authenticating"
	"github.com/eme-digital/ads-audit-api/internal/usecases/reporting"
	"github.com/eme-digital/ads-audit-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Records(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/records/management",
			Method:      http.MethodGet,
			Handler:     ManagementRecords(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Kpi(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/kpi/monthly",
			Method:      http.MethodGet,
			Handler:     MonthlyKpi(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kpi/daily",
			Method:      http.MethodGet,
			Handler:     DailyKpi(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Audits(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/audits/campaign",
			Method:      http.MethodGet,
			Handler:     CampaignAudit(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/audits/audience",
			Method:      http.MethodGet,
			Handler:     AudienceAudit(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Portfolio(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/portfolio/scores",
			Method:      http.MethodGet,
			Handler:     PortfolioScores(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Budgets(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/budgets/heatmap",
			Method:      http.MethodGet,
			Handler:     BudgetHeatmap(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/budgets/summary",
			Method:      http.MethodGet,
			Handler:     BudgetSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sync(services SyncServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync",
			Method:      http.MethodPost,
			Handler:     TriggerSync(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sync/status",
			Method:      http.MethodGet,
			Handler:     SyncStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
