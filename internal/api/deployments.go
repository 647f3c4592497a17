package api

import (
	"context"
	"net/url"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"licboard/internal/core"
)

type DeploymentFilter struct {
	ListQuery
	TenantID  string
	ProductID string
	Status    string
}

func (f DeploymentFilter) values() url.Values {
	params := pageParams(f.ListQuery)
	if f.TenantID != "" {
		params.Set("tenant_id", f.TenantID)
	}
	if f.ProductID != "" {
		params.Set("product_id", f.ProductID)
	}
	if f.Status != "" {
		params.Set("status", f.Status)
	}
	return params
}

// DeploymentWithUpdates is one deployment row enriched with its pending
// updates. Updates is empty, never nil, when the enrichment lookup failed or
// found nothing.
type DeploymentWithUpdates struct {
	core.Deployment
	Updates []core.PendingUpdate `json:"updates"`
}

type Deployments struct {
	res resource[core.Deployment]
}

func newDeployments(t *Transport) *Deployments {
	return &Deployments{res: resource[core.Deployment]{t: t, path: "/deployments", plural: "deployments"}}
}

func (c *Deployments) List(ctx context.Context, f DeploymentFilter) (List[core.Deployment], error) {
	return c.res.list(ctx, f.values(), f.ListQuery)
}

func (c *Deployments) Get(ctx context.Context, id string) (core.Deployment, error) {
	return c.res.get(ctx, id)
}

func (c *Deployments) Delete(ctx context.Context, id string) error {
	return c.res.delete(ctx, id)
}

// PendingUpdates fetches the pending updates for one deployment.
func (c *Deployments) PendingUpdates(ctx context.Context, id string) ([]core.PendingUpdate, error) {
	out, err := listResource[core.PendingUpdate](ctx, c.res.t,
		"/deployments/"+url.PathEscape(id)+"/pending-updates", "pending_updates", nil, ListQuery{})
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

// ListWithPendingUpdates lists deployments and enriches each row with its
// pending updates via concurrent per-item lookups. Results are keyed by
// deployment ID, never by completion order. A failed lookup contributes an
// empty slice for that row only; the primary list still renders.
func (c *Deployments) ListWithPendingUpdates(ctx context.Context, f DeploymentFilter) (List[DeploymentWithUpdates], error) {
	base, err := c.List(ctx, f)
	if err != nil {
		return List[DeploymentWithUpdates]{}, err
	}

	byID := make(map[string][]core.PendingUpdate, len(base.Items))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, d := range base.Items {
		g.Go(func() error {
			updates, err := c.PendingUpdates(gctx, d.ID)
			if err != nil {
				log.Warn().
					Str("deployment_id", d.ID).
					Err(err).
					Msg("pending-update lookup failed, using empty default")
				updates = []core.PendingUpdate{}
			}
			mu.Lock()
			byID[d.ID] = updates
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // branches never return errors; failures are contained above

	enriched := make([]DeploymentWithUpdates, 0, len(base.Items))
	for _, d := range base.Items {
		enriched = append(enriched, DeploymentWithUpdates{Deployment: d, Updates: byID[d.ID]})
	}
	return List[DeploymentWithUpdates]{Items: enriched, PageInfo: base.PageInfo}, nil
}
