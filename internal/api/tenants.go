package api

import (
	"context"
	"net/url"

	"licboard/internal/core"
)

type TenantFilter struct {
	ListQuery
	CustomerID string
	Region     string
}

func (f TenantFilter) values() url.Values {
	params := pageParams(f.ListQuery)
	if f.CustomerID != "" {
		params.Set("customer_id", f.CustomerID)
	}
	if f.Region != "" {
		params.Set("region", f.Region)
	}
	return params
}

type TenantCreate struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Region     string `json:"region,omitempty"`
}

type Tenants struct {
	res resource[core.Tenant]
}

func newTenants(t *Transport) *Tenants {
	return &Tenants{res: resource[core.Tenant]{t: t, path: "/tenants", plural: "tenants"}}
}

func (c *Tenants) List(ctx context.Context, f TenantFilter) (List[core.Tenant], error) {
	return c.res.list(ctx, f.values(), f.ListQuery)
}

func (c *Tenants) Get(ctx context.Context, id string) (core.Tenant, error) {
	return c.res.get(ctx, id)
}

func (c *Tenants) Create(ctx context.Context, in TenantCreate) (core.Tenant, error) {
	if err := validateID("customer id", in.CustomerID); err != nil {
		return core.Tenant{}, err
	}
	if err := validateRequired("tenant name", in.Name); err != nil {
		return core.Tenant{}, err
	}
	return c.res.create(ctx, in)
}

func (c *Tenants) Delete(ctx context.Context, id string) error {
	return c.res.delete(ctx, id)
}
