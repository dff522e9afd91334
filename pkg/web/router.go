// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/produtix/org-service/internal/db"
	"github.com/produtix/org-service/internal/identity"
	"github.com/produtix/org-service/internal/logging"
	"github.com/produtix/org-service/internal/monitoring"
	"github.com/produtix/org-service/internal/tracing"
	"github.com/produtix/org-service/pkg/authentication"
	"github.com/produtix/org-service/pkg/metrics"
	"github.com/produtix/org-service/pkg/organization"
	"github.com/produtix/org-service/pkg/session"
	"github.com/produtix/org-service/pkg/status"
	"github.com/produtix/org-service/pkg/webhooks"
)

func NewRouter(
	orgAPI *organization.API,
	sessionAPI *session.API,
	hooksAPI *webhooks.API,
	identityMdw *identity.Middleware,
	authMdw *authentication.Middleware,
	dbClient db.DBClientInterface,
	allowedOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	router.Use(
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(allowedOrigins),
	)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	// Webhooks are called service to service, no end user identity.
	router.Group(func(r chi.Router) {
		r.Use(db.TransactionMiddleware(dbClient, logger))
		hooksAPI.RegisterEndpoints(r)
	})

	router.Group(func(r chi.Router) {
		r.Use(identityMdw.HTTPMiddleware)
		if authMdw != nil {
			r.Use(authMdw.Authenticate())
		}
		r.Use(db.TransactionMiddleware(dbClient, logger))

		orgAPI.RegisterEndpoints(r)
		sessionAPI.RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
