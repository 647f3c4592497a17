package api

import (
	"context"
	"net/url"

	"licboard/internal/core"
)

type RolloutFilter struct {
	ListQuery
	ProductID string
	Status    core.RolloutStatus
}

func (f RolloutFilter) values() url.Values {
	params := pageParams(f.ListQuery)
	if f.ProductID != "" {
		params.Set("product_id", f.ProductID)
	}
	if f.Status != "" {
		params.Set("status", string(f.Status))
	}
	return params
}

type RolloutCreate struct {
	ProductID string `json:"product_id"`
	VersionID string `json:"version_id"`
}

type Rollouts struct {
	res resource[core.UpdateRollout]
}

func newRollouts(t *Transport) *Rollouts {
	return &Rollouts{res: resource[core.UpdateRollout]{t: t, path: "/update-rollouts", plural: "rollouts"}}
}

func (c *Rollouts) List(ctx context.Context, f RolloutFilter) (List[core.UpdateRollout], error) {
	return c.res.list(ctx, f.values(), f.ListQuery)
}

func (c *Rollouts) Get(ctx context.Context, id string) (core.UpdateRollout, error) {
	return c.res.get(ctx, id)
}

func (c *Rollouts) Create(ctx context.Context, in RolloutCreate) (core.UpdateRollout, error) {
	if err := validateID("product id", in.ProductID); err != nil {
		return core.UpdateRollout{}, err
	}
	if err := validateRequired("version id", in.VersionID); err != nil {
		return core.UpdateRollout{}, err
	}
	return c.res.create(ctx, in)
}

func (c *Rollouts) Pause(ctx context.Context, id string) (core.UpdateRollout, error) {
	return c.res.action(ctx, id, "pause", nil)
}

func (c *Rollouts) Resume(ctx context.Context, id string) (core.UpdateRollout, error) {
	return c.res.action(ctx, id, "resume", nil)
}
