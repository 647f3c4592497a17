package stub

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerAuthRejectsWithEnvelopedError(t *testing.T) {
	srv := httptest.NewServer(NewServer("secret").Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/products")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "UNAUTHENTICATED", body.Error.Code)
}

func TestAuthDisabledWithEmptyToken(t *testing.T) {
	srv := httptest.NewServer(NewServer("").Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/products")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthIsPublic(t *testing.T) {
	srv := httptest.NewServer(NewServer("secret").Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
