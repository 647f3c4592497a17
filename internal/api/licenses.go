package api

import (
	"context"
	"net/url"

	"licboard/internal/core"
)

type LicenseFilter struct {
	ListQuery
	SubscriptionID string
	Status         core.LicenseStatus
}

func (f LicenseFilter) values() url.Values {
	params := pageParams(f.ListQuery)
	if f.SubscriptionID != "" {
		params.Set("subscription_id", f.SubscriptionID)
	}
	if f.Status != "" {
		params.Set("status", string(f.Status))
	}
	return params
}

type LicenseCreate struct {
	SubscriptionID string `json:"subscription_id"`
	Seats          int    `json:"seats"`
}

type AllocateRequest struct {
	TenantID string `json:"tenant_id"`
	Seats    int    `json:"seats"`
}

type RenewRequest struct {
	ExpiresAt string `json:"expires_at"` // RFC 3339; seat arithmetic is server-owned
}

// Licenses covers license keys and their seat allocations. Seat arithmetic
// (whether an allocation fits) is validated server-side; an over-allocation
// comes back as a conflict error.
type Licenses struct {
	res resource[core.License]
}

func newLicenses(t *Transport) *Licenses {
	return &Licenses{res: resource[core.License]{t: t, path: "/licenses", plural: "licenses"}}
}

func (c *Licenses) List(ctx context.Context, f LicenseFilter) (List[core.License], error) {
	return c.res.list(ctx, f.values(), f.ListQuery)
}

func (c *Licenses) Get(ctx context.Context, id string) (core.License, error) {
	return c.res.get(ctx, id)
}

func (c *Licenses) Create(ctx context.Context, in LicenseCreate) (core.License, error) {
	if err := validateID("subscription id", in.SubscriptionID); err != nil {
		return core.License{}, err
	}
	if err := validateSeats(in.Seats); err != nil {
		return core.License{}, err
	}
	return c.res.create(ctx, in)
}

func (c *Licenses) Delete(ctx context.Context, id string) error {
	return c.res.delete(ctx, id)
}

func (c *Licenses) Renew(ctx context.Context, id string, req RenewRequest) (core.License, error) {
	if err := validateRequired("expires_at", req.ExpiresAt); err != nil {
		return core.License{}, err
	}
	return c.res.action(ctx, id, "renew", req)
}

func (c *Licenses) Block(ctx context.Context, id string) (core.License, error) {
	return c.res.action(ctx, id, "block", nil)
}

// Allocate assigns seats of a license to a tenant. The updated allocation,
// not the license, is the returned entity.
func (c *Licenses) Allocate(ctx context.Context, id string, req AllocateRequest) (core.LicenseAllocation, error) {
	if err := validateID("tenant id", req.TenantID); err != nil {
		return core.LicenseAllocation{}, err
	}
	if err := validateSeats(req.Seats); err != nil {
		return core.LicenseAllocation{}, err
	}
	return postEntity[core.LicenseAllocation](ctx, c.res.t, "/licenses/"+url.PathEscape(id)+"/allocate", req)
}

// Allocations lists the allocations of one license.
func (c *Licenses) Allocations(ctx context.Context, id string, q ListQuery) (List[core.LicenseAllocation], error) {
	return listResource[core.LicenseAllocation](ctx, c.res.t,
		"/licenses/"+url.PathEscape(id)+"/allocations", "allocations", pageParams(q), q)
}
