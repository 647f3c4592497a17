package api

import (
	"context"
	"net/url"

	"licboard/internal/core"
)

type UpgradePathFilter struct {
	ListQuery
	ProductID   string
	FromVersion string
}

func (f UpgradePathFilter) values() url.Values {
	params := pageParams(f.ListQuery)
	if f.ProductID != "" {
		params.Set("product_id", f.ProductID)
	}
	if f.FromVersion != "" {
		params.Set("from_version", f.FromVersion)
	}
	return params
}

type UpgradePathCreate struct {
	ProductID   string `json:"product_id"`
	FromVersion string `json:"from_version"`
	ToVersion   string `json:"to_version"`
	Mandatory   bool   `json:"mandatory"`
	Note        string `json:"note,omitempty"`
}

type UpgradePaths struct {
	res resource[core.UpgradePath]
}

func newUpgradePaths(t *Transport) *UpgradePaths {
	return &UpgradePaths{res: resource[core.UpgradePath]{t: t, path: "/upgrade-paths", plural: "upgrade_paths"}}
}

func (c *UpgradePaths) List(ctx context.Context, f UpgradePathFilter) (List[core.UpgradePath], error) {
	return c.res.list(ctx, f.values(), f.ListQuery)
}

func (c *UpgradePaths) Create(ctx context.Context, in UpgradePathCreate) (core.UpgradePath, error) {
	if err := validateID("product id", in.ProductID); err != nil {
		return core.UpgradePath{}, err
	}
	if err := validateSemver("from_version", in.FromVersion); err != nil {
		return core.UpgradePath{}, err
	}
	if err := validateSemver("to_version", in.ToVersion); err != nil {
		return core.UpgradePath{}, err
	}
	return c.res.create(ctx, in)
}

func (c *UpgradePaths) Delete(ctx context.Context, id string) error {
	return c.res.delete(ctx, id)
}
