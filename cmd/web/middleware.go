package main

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

var requestIDRX = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,128}$`)

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// requestID reuses a well-formed inbound X-Request-ID and otherwise issues a
// new one.
func (app *application) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if !requestIDRX.MatchString(id) {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)

		r = app.createRequestIDContext(r, id)
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			ip        = r.RemoteAddr
			proto     = r.Proto
			method    = r.Method
			uri       = r.URL.RequestURI()
			requestID = app.getRequestIDContext(r)
		)

		app.logger.Info("request from", "remote_addr", ip, "proto", proto, "method", method, "uri", uri, "request_id", requestID)

		next.ServeHTTP(w, r)
	})
}
