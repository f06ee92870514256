package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/campaign-insights-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/importing"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/insighting"
)

func Healthcheck(database Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(database),
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

func Datasets(importer importing.Importer, insighter insighting.Insighter, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets",
			Method:  http.MethodPost,
			Handler: UploadDataset(importer, maxUploadBytes),
		},
		{
			Path:    "/v1/datasets/current",
			Method:  http.MethodGet,
			Handler: GetCurrentDataset(insighter),
		},
		{
			Path:    "/v1/datasets/template",
			Method:  http.MethodPost,
			Handler: LoadTemplateDataset(importer),
		},
		{
			Path:    "/v1/template.csv",
			Method:  http.MethodGet,
			Handler: DownloadTemplate(),
		},
		{
			Path:    "/v1/imports",
			Method:  http.MethodGet,
			Handler: ListImports(importer),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(service),
		},
		{
			Path:    "/v1/records",
			Method:  http.MethodGet,
			Handler: GetRecords(service),
		},
		{
			Path:    "/v1/export.csv",
			Method:  http.MethodGet,
			Handler: ExportCSV(service),
		},
		{
			Path:    "/v1/export.xlsx",
			Method:  http.MethodGet,
			Handler: ExportXLSX(service),
		},
	}
}

func Presentation() []router.Route {
	return []router.Route{
		{
			Path:    "/v1/presentation",
			Method:  http.MethodGet,
			Handler: GetPresentation(),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
