package api

import (
	"context"
	"net/url"

	"licboard/internal/core"
)

// ProductFilter narrows a product listing. Only set fields become query
// parameters.
type ProductFilter struct {
	ListQuery
	Category string
	Active   *bool
	Search   string
}

func (f ProductFilter) values() url.Values {
	params := pageParams(f.ListQuery)
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.Active != nil {
		params.Set("active", boolString(*f.Active))
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	return params
}

type ProductCreate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

type ProductUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// Products is the facade for the product catalog. A duplicate natural key on
// Create comes back as a conflict-kind error so the form can show an inline
// message.
type Products struct {
	res resource[core.Product]
}

func newProducts(t *Transport) *Products {
	return &Products{res: resource[core.Product]{t: t, path: "/products", plural: "products"}}
}

func (c *Products) List(ctx context.Context, f ProductFilter) (List[core.Product], error) {
	return c.res.list(ctx, f.values(), f.ListQuery)
}

func (c *Products) Get(ctx context.Context, id string) (core.Product, error) {
	return c.res.get(ctx, id)
}

func (c *Products) Create(ctx context.Context, in ProductCreate) (core.Product, error) {
	if err := validateID("product id", in.ID); err != nil {
		return core.Product{}, err
	}
	if err := validateRequired("product name", in.Name); err != nil {
		return core.Product{}, err
	}
	return c.res.create(ctx, in)
}

func (c *Products) Update(ctx context.Context, id string, patch ProductUpdate) (core.Product, error) {
	return c.res.update(ctx, id, patch)
}

func (c *Products) Delete(ctx context.Context, id string) error {
	return c.res.delete(ctx, id)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
