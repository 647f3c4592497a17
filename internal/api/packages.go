package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"

	"licboard/internal/core"
)

type PackageFilter struct {
	ListQuery
	VersionID   string
	PackageType string
	OS          string
}

func (f PackageFilter) values() url.Values {
	params := pageParams(f.ListQuery)
	if f.VersionID != "" {
		params.Set("version_id", f.VersionID)
	}
	if f.PackageType != "" {
		params.Set("package_type", f.PackageType)
	}
	if f.OS != "" {
		params.Set("os", f.OS)
	}
	return params
}

// UploadRequest describes one package artifact upload. Progress, when set,
// is invoked with (sent, total) as the multipart body streams out; total is
// the framed body size, not the raw file size.
type UploadRequest struct {
	File         io.Reader
	Filename     string
	PackageType  string
	OS           string
	Architecture string
	Progress     func(sent, total int64)
}

type Packages struct {
	res resource[core.Package]
}

func newPackages(t *Transport) *Packages {
	return &Packages{res: resource[core.Package]{t: t, path: "/packages", plural: "packages"}}
}

func (c *Packages) List(ctx context.Context, f PackageFilter) (List[core.Package], error) {
	return c.res.list(ctx, f.values(), f.ListQuery)
}

func (c *Packages) Get(ctx context.Context, id string) (core.Package, error) {
	return c.res.get(ctx, id)
}

func (c *Packages) Delete(ctx context.Context, id string) error {
	return c.res.delete(ctx, id)
}

// Upload posts the artifact as multipart/form-data with fields file,
// package_type and the optional os/architecture, then unwraps the created
// package entity.
func (c *Packages) Upload(ctx context.Context, versionID string, in UploadRequest) (core.Package, error) {
	if err := validateRequired("filename", in.Filename); err != nil {
		return core.Package{}, err
	}
	if err := validateRequired("package_type", in.PackageType); err != nil {
		return core.Package{}, err
	}
	if in.File == nil {
		return core.Package{}, validationError("file is required")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", in.Filename)
	if err != nil {
		return core.Package{}, fmt.Errorf("failed to frame upload: %w", err)
	}
	if _, err := io.Copy(part, in.File); err != nil {
		return core.Package{}, fmt.Errorf("failed to read upload file: %w", err)
	}
	fields := map[string]string{
		"package_type": in.PackageType,
		"os":           in.OS,
		"architecture": in.Architecture,
	}
	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := w.WriteField(k, v); err != nil {
			return core.Package{}, fmt.Errorf("failed to frame upload: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return core.Package{}, fmt.Errorf("failed to frame upload: %w", err)
	}

	var body io.Reader = &buf
	if in.Progress != nil {
		body = &progressReader{r: body, total: int64(buf.Len()), report: in.Progress}
	}

	endpoint := "/versions/" + url.PathEscape(versionID) + "/packages"
	resp, err := c.res.t.upload(ctx, endpoint, body, w.FormDataContentType())
	if err != nil {
		return core.Package{}, transportError(err)
	}
	if !resp.IsSuccess() {
		return core.Package{}, normalizeError(resp.StatusCode, resp.StatusText, resp.Body)
	}
	if ae := successFalseError(resp.Body); ae != nil {
		return core.Package{}, ae
	}
	return decodeEntity[core.Package](unwrapBody(resp.Body, ""))
}

// progressReader reports cumulative bytes read as the HTTP client drains the
// multipart body.
type progressReader struct {
	r      io.Reader
	sent   int64
	total  int64
	report func(sent, total int64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		p.report(p.sent, p.total)
	}
	return n, err
}
