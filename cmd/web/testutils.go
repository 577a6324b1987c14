package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/sushihentaime/registration-form/internal/ui"
	"github.com/sushihentaime/registration-form/pkg/bodyParser"
)

func newTestApplication(t *testing.T) *application {
	renderer, err := ui.New()
	if err != nil {
		t.Fatalf("could not load templates: %v", err)
	}

	cfg := config{
		Env:          "testing",
		MaxBodyBytes: bodyParser.DefaultMaxBytes,
	}

	return &application{
		config:   cfg,
		logger:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
		renderer: renderer,
	}
}

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func (ts *testServer) get(t *testing.T, path string) (int, http.Header, string) {
	res, err := ts.Client().Get(ts.URL + path)
	if err != nil {
		t.Fatalf("could not send GET request: %v", err)
	}

	return readBody(t, res)
}

func (ts *testServer) post(t *testing.T, path string, data any) (int, http.Header, envelope) {
	jsonPayload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("could not marshal payload to JSON: %v", err)
	}

	return ts.postRaw(t, path, "application/json", string(jsonPayload))
}

func (ts *testServer) postRaw(t *testing.T, path, contentType, body string) (int, http.Header, envelope) {
	res, err := ts.Client().Post(ts.URL+path, contentType, bytes.NewReader([]byte(body)))
	if err != nil {
		t.Fatalf("could not send POST request: %v", err)
	}

	return readResponse(t, res)
}

func (ts *testServer) postForm(t *testing.T, path string, form url.Values) (int, http.Header, string) {
	res, err := ts.Client().Post(ts.URL+path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("could not send POST request: %v", err)
	}

	return readBody(t, res)
}

func readBody(t *testing.T, res *http.Response) (int, http.Header, string) {
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("could not read response body: %v", err)
	}

	return res.StatusCode, res.Header, string(responseBody)
}

func readResponse(t *testing.T, res *http.Response) (int, http.Header, envelope) {
	status, header, body := readBody(t, res)

	var envelope envelope
	err := json.Unmarshal([]byte(body), &envelope)
	if err != nil {
		t.Fatalf("could not unmarshal JSON response: %v", err)
	}

	return status, header, envelope
}

func validInput() map[string]string {
	return map[string]string{
		"firstName": "Alicia",
		"lastName":  "Smith",
		"password":  "abcdef",
		"email":     "a@b.com",
		"mobile":    "1234567890",
		"address":   "1 Main St",
	}
}
