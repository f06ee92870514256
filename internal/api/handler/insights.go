package handler

import (
	"bytes"
	"io"
	"net/http"

	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/exporting"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/campaign-insights-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-insights-api/pkg/log"
)

// GetInsights devolve todas as visões do dashboard para o filtro da query string
func GetInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		spec, err := ParseFilters(r)
		if err != nil {
			writeFilterError(w, r, err)
			return
		}

		dashboard, err := service.Dashboard(spec)
		if err != nil {
			writeInsightError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"filter_channels": len(spec.Channels),
			"filter_campaign": spec.CampaignQuery,
			"dataset_records": dashboard.Totals.Records,
		}).Debug("insights: dashboard computed")

		writeJSON(w, r, http.StatusOK, dashboard)
	})
}

// RecordsResponse é a lista de registros filtrados
type RecordsResponse struct {
	Total   int             `json:"total"`
	Records []domain.Record `json:"records"`
}

func GetRecords(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		records, ok := filteredRecords(w, r, service)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, RecordsResponse{Total: len(records), Records: records})
	})
}

// ExportCSV baixa os registros filtrados no mesmo formato aceito pela importação
func ExportCSV(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		records, ok := filteredRecords(w, r, service)
		if !ok {
			return
		}

		writeAttachment(w, "text/csv; charset=utf-8", exporting.CSVFilename)
		if _, err := io.WriteString(w, exporting.ToCSV(records)); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("export: failed to write csv")
		}
	})
}

func ExportXLSX(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		records, ok := filteredRecords(w, r, service)
		if !ok {
			return
		}

		// Gera em memória para ainda poder responder com erro antes de enviar o cabeçalho
		var buf bytes.Buffer
		if err := exporting.ToXLSX(records, &buf); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("export: failed to build xlsx")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to build spreadsheet", nil)
			return
		}

		writeAttachment(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", exporting.XLSXFilename)
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("export: failed to write xlsx")
		}
	})
}

func filteredRecords(w http.ResponseWriter, r *http.Request, service insighting.Insighter) ([]domain.Record, bool) {
	spec, err := ParseFilters(r)
	if err != nil {
		writeFilterError(w, r, err)
		return nil, false
	}

	records, err := service.Records(spec)
	if err != nil {
		writeInsightError(w, r, err)
		return nil, false
	}

	return records, true
}
