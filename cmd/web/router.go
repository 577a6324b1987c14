package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/health", app.healthCheckHandler)

	router.HandlerFunc(http.MethodGet, "/", app.showFormHandler)
	router.HandlerFunc(http.MethodPost, "/", app.submitFormHandler)

	router.HandlerFunc(http.MethodPost, "/v1/registrations", app.createRegistrationHandler)
	router.HandlerFunc(http.MethodPost, "/v1/registrations/validate", app.validateRegistrationHandler)

	standard := alice.New(app.recoverPanic, app.requestID, app.logRequest)

	return standard.Then(router)
}
