package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

func GetPresentation() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, domain.DefaultPresentation())
	})
}
