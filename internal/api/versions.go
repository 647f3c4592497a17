package api

import (
	"context"
	"net/url"

	"licboard/internal/core"
)

type VersionFilter struct {
	ListQuery
	ProductID string
	Status    core.VersionStatus
}

func (f VersionFilter) values() url.Values {
	params := pageParams(f.ListQuery)
	if f.ProductID != "" {
		params.Set("product_id", f.ProductID)
	}
	if f.Status != "" {
		params.Set("status", string(f.Status))
	}
	return params
}

type VersionCreate struct {
	ProductID string `json:"product_id"`
	Version   string `json:"version"`
	Changelog string `json:"changelog,omitempty"`
}

type VersionUpdate struct {
	Changelog *string `json:"changelog,omitempty"`
}

// Versions manages product versions. The lifecycle actions are thin POSTs to
// action sub-paths; which transitions are legal is entirely the server's
// decision, and the returned status string is passed through untouched.
type Versions struct {
	res resource[core.Version]
}

func newVersions(t *Transport) *Versions {
	return &Versions{res: resource[core.Version]{t: t, path: "/versions", plural: "versions"}}
}

func (c *Versions) List(ctx context.Context, f VersionFilter) (List[core.Version], error) {
	return c.res.list(ctx, f.values(), f.ListQuery)
}

func (c *Versions) Get(ctx context.Context, id string) (core.Version, error) {
	return c.res.get(ctx, id)
}

func (c *Versions) Create(ctx context.Context, in VersionCreate) (core.Version, error) {
	if err := validateID("product id", in.ProductID); err != nil {
		return core.Version{}, err
	}
	if err := validateSemver("version", in.Version); err != nil {
		return core.Version{}, err
	}
	return c.res.create(ctx, in)
}

func (c *Versions) Update(ctx context.Context, id string, patch VersionUpdate) (core.Version, error) {
	return c.res.update(ctx, id, patch)
}

func (c *Versions) Delete(ctx context.Context, id string) error {
	return c.res.delete(ctx, id)
}

func (c *Versions) SubmitForReview(ctx context.Context, id string) (core.Version, error) {
	return c.res.action(ctx, id, "submit-for-review", nil)
}

func (c *Versions) Approve(ctx context.Context, id string) (core.Version, error) {
	return c.res.action(ctx, id, "approve", nil)
}

func (c *Versions) Release(ctx context.Context, id string) (core.Version, error) {
	return c.res.action(ctx, id, "release", nil)
}

func (c *Versions) Deprecate(ctx context.Context, id string) (core.Version, error) {
	return c.res.action(ctx, id, "deprecate", nil)
}

func (c *Versions) MarkEndOfLife(ctx context.Context, id string) (core.Version, error) {
	return c.res.action(ctx, id, "eol", nil)
}
