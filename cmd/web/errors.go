package main

import (
	"net/http"
	"runtime/debug"

	"github.com/sushihentaime/registration-form/internal/registration"
)

func (app *application) logError(r *http.Request, err error) {
	var (
		method    = r.Method
		url       = r.URL.RequestURI()
		requestID = app.getRequestIDContext(r)
		errMsg    = err.Error()
		debug     = debug.Stack()
	)

	app.logger.Error(errMsg, "method", method, "url", url, "request_id", requestID, "stack", string(debug))
}

func (app *application) writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, message any) {
	err := app.writeJSON(w, status, envelope{"error": message}, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	message := "the server encountered a problem and could not process your request"
	app.writeErrorResponse(w, r, http.StatusInternalServerError, message)
}

func (app *application) badRequestErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.writeErrorResponse(w, r, http.StatusBadRequest, err.Error())
}

// failedValidationResponse reports a rejected registration together with the
// banner the form would show.
func (app *application) failedValidationResponse(w http.ResponseWriter, r *http.Request, result registration.SubmissionResult, errors registration.ValidationErrors) {
	err := app.writeJSON(w, http.StatusUnprocessableEntity, envelope{"result": result, "errors": errors}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	app.writeErrorResponse(w, r, http.StatusNotFound, message)
}

func (app *application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := "the " + r.Method + " method is not supported for this resource"
	app.writeErrorResponse(w, r, http.StatusMethodNotAllowed, message)
}
