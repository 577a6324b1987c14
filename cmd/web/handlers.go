package main

import (
	"net/http"

	"github.com/sushihentaime/registration-form/internal/registration"
	"github.com/sushihentaime/registration-form/pkg/bodyParser"
)

func (app *application) showFormHandler(w http.ResponseWriter, r *http.Request) {
	app.renderPage(w, r, http.StatusOK, registration.NewForm(registration.FormValues{}))
}

// submitFormHandler handles the browser form post. The page is rendered again
// with the submitted values in place, whatever the outcome.
func (app *application) submitFormHandler(w http.ResponseWriter, r *http.Request) {
	values, err := bodyParser.ParseForm(w, r, app.config.MaxBodyBytes)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	form := registration.NewForm(registration.FromForm(values))

	status := http.StatusOK
	if !form.Submit() {
		status = http.StatusUnprocessableEntity
	}

	app.logger.Debug("registration submitted", "result", form.Result.Type, "invalid_fields", len(form.Errors), "request_id", app.getRequestIDContext(r))

	app.renderPage(w, r, status, form)
}

func (app *application) createRegistrationHandler(w http.ResponseWriter, r *http.Request) {
	var input registration.FormValues

	err := bodyParser.ParseJSON(w, r, &input, app.config.MaxBodyBytes)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	result, errs := registration.Submit(input)
	if !result.Success() {
		app.failedValidationResponse(w, r, result, errs)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"result": result}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// validateRegistrationHandler reports field messages without producing a
// banner, so a client can check values as they are typed.
func (app *application) validateRegistrationHandler(w http.ResponseWriter, r *http.Request) {
	var input registration.FormValues

	err := bodyParser.ParseJSON(w, r, &input, app.config.MaxBodyBytes)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	errs, ok := registration.Validate(input)

	err = app.writeJSON(w, http.StatusOK, envelope{"valid": ok, "errors": errs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, envelope{"status": "available", "env": app.config.Env}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
