package api

import (
	"context"
	"net/url"

	"licboard/internal/core"
)

type AllocationFilter struct {
	ListQuery
	LicenseID string
	TenantID  string
}

func (f AllocationFilter) values() url.Values {
	params := pageParams(f.ListQuery)
	if f.LicenseID != "" {
		params.Set("license_id", f.LicenseID)
	}
	if f.TenantID != "" {
		params.Set("tenant_id", f.TenantID)
	}
	return params
}

// Allocations is the cross-license view of seat allocations. Creation goes
// through Licenses.Allocate; this facade only lists, inspects and releases.
type Allocations struct {
	res resource[core.LicenseAllocation]
}

func newAllocations(t *Transport) *Allocations {
	return &Allocations{res: resource[core.LicenseAllocation]{t: t, path: "/license-allocations", plural: "allocations"}}
}

func (c *Allocations) List(ctx context.Context, f AllocationFilter) (List[core.LicenseAllocation], error) {
	return c.res.list(ctx, f.values(), f.ListQuery)
}

func (c *Allocations) Get(ctx context.Context, id string) (core.LicenseAllocation, error) {
	return c.res.get(ctx, id)
}

func (c *Allocations) Release(ctx context.Context, id string) error {
	return c.res.delete(ctx, id)
}
