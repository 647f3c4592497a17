package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeErrorSuccessWrapped(t *testing.T) {
	body := []byte(`{"success":false,"error":{"code":"DUPLICATE_ID","message":"Product already exists"}}`)
	got := normalizeError(http.StatusConflict, "409 Conflict", body)
	assert.Equal(t, "DUPLICATE_ID", got.Code)
	assert.Equal(t, "Product already exists", got.Message)
	assert.Nil(t, got.Details)
	assert.Equal(t, KindConflict, got.Kind)
}

func TestNormalizeErrorBareErrorObject(t *testing.T) {
	body := []byte(`{"error":{"code":"FORBIDDEN","message":"no access","details":{"role":"viewer"}}}`)
	got := normalizeError(http.StatusForbidden, "403 Forbidden", body)
	assert.Equal(t, "FORBIDDEN", got.Code)
	assert.Equal(t, map[string]any{"role": "viewer"}, got.Details)
	assert.Equal(t, KindForbidden, got.Kind)
}

func TestNormalizeErrorSynthesizesUnknown(t *testing.T) {
	got := normalizeError(http.StatusBadGateway, "502 Bad Gateway", []byte(`<html>bad gateway</html>`))
	assert.Equal(t, CodeUnknownError, got.Code)
	assert.Equal(t, "502 Bad Gateway", got.Message)
	assert.Equal(t, KindServerError, got.Kind)
}

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		status int
		want   Kind
	}{
		{http.StatusUnauthorized, KindUnauthenticated},
		{http.StatusForbidden, KindForbidden},
		{http.StatusNotFound, KindNotFound},
		{http.StatusConflict, KindConflict},
		{http.StatusBadRequest, KindValidation},
		{http.StatusUnprocessableEntity, KindValidation},
		{http.StatusInternalServerError, KindServerError},
		{http.StatusServiceUnavailable, KindServerError},
		{http.StatusTeapot, KindUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classifyStatus(tc.status), "status %d", tc.status)
	}
}

func TestSuccessFalseErrorOn2xxBody(t *testing.T) {
	body := []byte(`{"success":false,"error":{"code":"INVALID_RANGE","message":"bad version range"}}`)
	got := successFalseError(body)
	require.NotNil(t, got)
	assert.Equal(t, "INVALID_RANGE", got.Code)
}

func TestSuccessFalseErrorIgnoresSuccessTrue(t *testing.T) {
	assert.Nil(t, successFalseError([]byte(`{"success":true,"data":[]}`)))
	assert.Nil(t, successFalseError([]byte(`["bare","array"]`)))
	assert.Nil(t, successFalseError([]byte(`{"data":[]}`)))
}

func TestErrorKindOfForeignError(t *testing.T) {
	assert.Equal(t, KindUnknown, ErrorKind(assert.AnError))
}

func TestTransportErrorKind(t *testing.T) {
	err := transportError(assert.AnError)
	assert.Equal(t, KindTransportError, err.Kind)
	assert.Equal(t, CodeNetworkError, err.Code)
	assert.True(t, IsTransport(err))
}
