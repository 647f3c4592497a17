package api

import (
	"context"
	"net/url"

	"licboard/internal/core"
)

type CustomerFilter struct {
	ListQuery
	Active *bool
	Search string
}

func (f CustomerFilter) values() url.Values {
	params := pageParams(f.ListQuery)
	if f.Active != nil {
		params.Set("active", boolString(*f.Active))
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	return params
}

type CustomerCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Company string `json:"company,omitempty"`
}

type CustomerUpdate struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Company *string `json:"company,omitempty"`
	Active  *bool   `json:"active,omitempty"`
}

type Customers struct {
	res resource[core.Customer]
}

func newCustomers(t *Transport) *Customers {
	return &Customers{res: resource[core.Customer]{t: t, path: "/customers", plural: "customers"}}
}

func (c *Customers) List(ctx context.Context, f CustomerFilter) (List[core.Customer], error) {
	return c.res.list(ctx, f.values(), f.ListQuery)
}

func (c *Customers) Get(ctx context.Context, id string) (core.Customer, error) {
	return c.res.get(ctx, id)
}

func (c *Customers) Create(ctx context.Context, in CustomerCreate) (core.Customer, error) {
	if err := validateRequired("customer name", in.Name); err != nil {
		return core.Customer{}, err
	}
	return c.res.create(ctx, in)
}

func (c *Customers) Update(ctx context.Context, id string, patch CustomerUpdate) (core.Customer, error) {
	return c.res.update(ctx, id, patch)
}

func (c *Customers) Delete(ctx context.Context, id string) error {
	return c.res.delete(ctx, id)
}
