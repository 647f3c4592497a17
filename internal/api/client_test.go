package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"licboard/internal/config"
	"licboard/internal/session"
	"licboard/internal/stub"
)

const stubToken = "test-token"

// newStubClient wires a full client against an in-process stub backend.
func newStubClient(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(stub.NewServer(stubToken).Router())
	t.Cleanup(srv.Close)
	sess := session.NewMemoryStore(stubToken, "tester")
	return New(config.APICfg{BaseURL: srv.URL, Version: "v1", TimeoutSec: 5}, sess)
}

// newStubClientWithToken is newStubClient with a caller-chosen bearer token,
// for exercising the 401 path.
func newStubClientWithToken(t *testing.T, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(stub.NewServer(stubToken).Router())
	t.Cleanup(srv.Close)
	sess := session.NewMemoryStore(token, "tester")
	return New(config.APICfg{BaseURL: srv.URL, Version: "v1", TimeoutSec: 5}, sess)
}

// newHandlerClient wires a client against an arbitrary handler mounted under
// /api/v1 for failure-injection tests.
func newHandlerClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", handler))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	sess := session.NewMemoryStore("", "tester")
	return New(config.APICfg{BaseURL: srv.URL, Version: "v1", TimeoutSec: 5}, sess)
}
