package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/campaign-insights-api/internal/usecases/importing"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/campaign-insights-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-insights-api/pkg/log"
)

// writeImportError traduz as falhas de importação para o formato padronizado da API
func writeImportError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, importing.ErrEmptyInput):
		logger.Warn("datasets: empty file")
		apiErrors.WriteError(w, apiErrors.ErrEmptyInput, err.Error(), nil)
	case errors.Is(err, importing.ErrPayloadTooLarge), errors.As(err, &maxBytesErr):
		logger.Warn("datasets: file too large")
		apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, importing.ErrPayloadTooLarge.Error(), nil)
	default:
		if mcErr, ok := importing.IsMissingColumns(err); ok {
			logger.Warn("datasets: missing required columns")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, mcErr.Error(), map[string]any{
				"missing_columns": mcErr.Missing,
			})
			return
		}

		logger.Error("datasets: import failed")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to import file", nil)
	}
}

// writeInsightError trata a ausência de dataset e falhas inesperadas
func writeInsightError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, insighting.ErrNoDataset) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("insights: unexpected failure")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to compute insights", nil)
}

func writeFilterError(w http.ResponseWriter, r *http.Request, err error) {
	var fvErr *FilterValidationError
	if errors.As(err, &fvErr) {
		log.ForContext(r.Context()).WithField("filter_errors", fvErr.Fields).Warn("filters: invalid query")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, fvErr.Error(), fvErr.Fields)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
}
