package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/ads-performance-api/internal/api/handler/router"
	"github.com/vfg2006/ads-performance-api/internal/scheduler"
	"github.com/vfg2006/ads-performance-api/internal/usecases/reporting"
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

func AdReports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ads/:platform/metrics",
			Method:  http.MethodGet,
			Handler: GetPlatformMetrics(service),
		},
		{
			Path:    "/v1/ads/:platform/records",
			Method:  http.MethodGet,
			Handler: GetPlatformRecords(service),
		},
		{
			Path:    "/v1/ads/:platform/campaigns/trends",
			Method:  http.MethodGet,
			Handler: GetCampaignTrends(service),
		},
		{
			Path:    "/v1/ads/:platform/periods",
			Method:  http.MethodGet,
			Handler: GetAvailablePeriod(service),
		},
		{
			Path:    "/v1/keywords/top",
			Method:  http.MethodGet,
			Handler: GetTopKeywords(service),
		},
		{
			Path:    "/v1/creatives/top",
			Method:  http.MethodGet,
			Handler: GetTopCreatives(service),
		},
	}
}

func SheetSync(service *scheduler.SheetSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/run",
			Method:  http.MethodPost,
			Handler: RunSheetSync(service),
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSheetSyncStatus(service),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}
