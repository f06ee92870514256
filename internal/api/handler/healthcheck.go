package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-insights-api/pkg/apiErrors"
)

const healthcheckPingTimeout = 2 * time.Second

// Pinger é satisfeito pela conexão com o PostgreSQL
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde com o horário atual. Com banco habilitado, falha com 503 se o ping não responder.
func HealthcheckHandler(database Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if database != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckPingTimeout)
			defer cancel()

			if err := database.Ping(ctx); err != nil {
				logrus.WithError(err).Error("healthcheck: database ping failed")
				apiErrors.WriteError(w, apiErrors.ErrUnavailable, "Database unavailable", nil)
				return
			}
		}

		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
