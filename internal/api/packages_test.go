package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageUpload(t *testing.T) {
	c := newStubClient(t)

	content := strings.Repeat("binary! ", 1024)
	var lastSent, lastTotal int64
	pkg, err := c.Packages.Upload(context.Background(), "ver-02", UploadRequest{
		File:         strings.NewReader(content),
		Filename:     "product-1.1.0.tar.gz",
		PackageType:  "tarball",
		OS:           "linux",
		Architecture: "amd64",
		Progress: func(sent, total int64) {
			assert.GreaterOrEqual(t, sent, lastSent)
			lastSent, lastTotal = sent, total
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "ver-02", pkg.VersionID)
	assert.Equal(t, "product-1.1.0.tar.gz", pkg.Filename)
	assert.Equal(t, "tarball", pkg.PackageType)
	assert.Equal(t, int64(len(content)), pkg.SizeBytes)

	// progress drained the whole framed body
	assert.Equal(t, lastTotal, lastSent)
	assert.Greater(t, lastTotal, int64(len(content)))
}

func TestPackageUploadMissingFields(t *testing.T) {
	c := newStubClient(t)

	_, err := c.Packages.Upload(context.Background(), "ver-02", UploadRequest{
		Filename:    "x.tar.gz",
		PackageType: "tarball",
	})
	require.Error(t, err)
	assert.Equal(t, KindValidation, ErrorKind(err))

	_, err = c.Packages.Upload(context.Background(), "ver-02", UploadRequest{
		File:        strings.NewReader("x"),
		PackageType: "tarball",
	})
	require.Error(t, err)
	assert.Equal(t, KindValidation, ErrorKind(err))
}

func TestPackageUploadSuccessFalseOn200(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/versions/ver-02/packages", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"error":{"code":"CHECKSUM_MISMATCH","message":"artifact checksum does not match manifest"}}`))
	})
	c := newHandlerClient(t, mux)

	pkg, err := c.Packages.Upload(context.Background(), "ver-02", UploadRequest{
		File:        strings.NewReader("x"),
		Filename:    "x.tar.gz",
		PackageType: "tarball",
	})
	require.Error(t, err)
	assert.Equal(t, "", pkg.ID)

	var ae *APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "CHECKSUM_MISMATCH", ae.Code)
}

func TestPackageUploadUnknownVersion(t *testing.T) {
	c := newStubClient(t)

	_, err := c.Packages.Upload(context.Background(), "no-such-version", UploadRequest{
		File:        strings.NewReader("x"),
		Filename:    "x.tar.gz",
		PackageType: "tarball",
	})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}
