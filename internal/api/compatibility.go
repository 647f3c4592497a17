package api

import (
	"context"
	"net/url"

	"licboard/internal/core"
)

type CompatibilityFilter struct {
	ListQuery
	ProductID string
	DependsOn string
}

func (f CompatibilityFilter) values() url.Values {
	params := pageParams(f.ListQuery)
	if f.ProductID != "" {
		params.Set("product_id", f.ProductID)
	}
	if f.DependsOn != "" {
		params.Set("depends_on", f.DependsOn)
	}
	return params
}

type CompatibilityCreate struct {
	ProductID      string `json:"product_id"`
	VersionRange   string `json:"version_range"`
	DependsOn      string `json:"depends_on"`
	DependsOnRange string `json:"depends_on_range"`
	Note           string `json:"note,omitempty"`
}

// Compatibility manages coexistence rules between product versions. Rule
// evaluation happens server-side; the client only maintains the rule set.
type Compatibility struct {
	res resource[core.CompatibilityRule]
}

func newCompatibility(t *Transport) *Compatibility {
	return &Compatibility{res: resource[core.CompatibilityRule]{t: t, path: "/compatibility", plural: "rules"}}
}

func (c *Compatibility) List(ctx context.Context, f CompatibilityFilter) (List[core.CompatibilityRule], error) {
	return c.res.list(ctx, f.values(), f.ListQuery)
}

func (c *Compatibility) Create(ctx context.Context, in CompatibilityCreate) (core.CompatibilityRule, error) {
	if err := validateID("product id", in.ProductID); err != nil {
		return core.CompatibilityRule{}, err
	}
	if err := validateID("depends_on product id", in.DependsOn); err != nil {
		return core.CompatibilityRule{}, err
	}
	if err := validateRequired("version range", in.VersionRange); err != nil {
		return core.CompatibilityRule{}, err
	}
	return c.res.create(ctx, in)
}

func (c *Compatibility) Delete(ctx context.Context, id string) error {
	return c.res.delete(ctx, id)
}
