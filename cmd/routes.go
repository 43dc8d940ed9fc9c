package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"github.com/abdullah-abacus/UDST-Lost-Found/internal/handlers"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.requestID, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.requireToken)

	mux := pat.New()

	// Lost & Found
	mux.Post("/api/v1/lost-found/submit", authMiddleware.ThenFunc(app.reportHandler.SubmitReport))
	mux.Get("/api/v1/lost-found/all", authMiddleware.ThenFunc(app.reportHandler.GetApprovedReports))
	mux.Get("/api/v1/lost-found/my-requests", authMiddleware.ThenFunc(app.reportHandler.GetMyReports))

	// Admin
	mux.Put("/api/v1/admin/update-status/:id", authMiddleware.ThenFunc(app.reportHandler.UpdateReportStatus))

	// Setup & auth, deliberately unguarded
	mux.Post("/api/v1/setup/create-table", standardMiddleware.ThenFunc(app.setupHandler.CreateTable))
	mux.Post("/api/v1/auth/generate-test-token", standardMiddleware.ThenFunc(app.authHandler.GenerateTestToken))

	mux.Get("/", standardMiddleware.ThenFunc(handlers.APIInfo))

	return mux
}
