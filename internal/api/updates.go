package api

import (
	"context"
	"net/url"

	"licboard/internal/core"
)

type DetectionFilter struct {
	ListQuery
	DeploymentID string
}

func (f DetectionFilter) values() url.Values {
	params := pageParams(f.ListQuery)
	if f.DeploymentID != "" {
		params.Set("deployment_id", f.DeploymentID)
	}
	return params
}

// UpdateDetections lists version drift detected on deployments. Read-only.
type UpdateDetections struct {
	res resource[core.UpdateDetection]
}

func newUpdateDetections(t *Transport) *UpdateDetections {
	return &UpdateDetections{res: resource[core.UpdateDetection]{t: t, path: "/update-detections", plural: "detections"}}
}

func (c *UpdateDetections) List(ctx context.Context, f DetectionFilter) (List[core.UpdateDetection], error) {
	return c.res.list(ctx, f.values(), f.ListQuery)
}

func (c *UpdateDetections) Get(ctx context.Context, id string) (core.UpdateDetection, error) {
	return c.res.get(ctx, id)
}

type PendingUpdateFilter struct {
	ListQuery
	DeploymentID string
	Severity     string
}

func (f PendingUpdateFilter) values() url.Values {
	params := pageParams(f.ListQuery)
	if f.DeploymentID != "" {
		params.Set("deployment_id", f.DeploymentID)
	}
	if f.Severity != "" {
		params.Set("severity", f.Severity)
	}
	return params
}

// PendingUpdates is the cross-deployment view of updates waiting to roll out.
type PendingUpdates struct {
	res resource[core.PendingUpdate]
}

func newPendingUpdates(t *Transport) *PendingUpdates {
	return &PendingUpdates{res: resource[core.PendingUpdate]{t: t, path: "/pending-updates", plural: "pending_updates"}}
}

func (c *PendingUpdates) List(ctx context.Context, f PendingUpdateFilter) (List[core.PendingUpdate], error) {
	return c.res.list(ctx, f.values(), f.ListQuery)
}

func (c *PendingUpdates) Dismiss(ctx context.Context, id string) error {
	return c.res.delete(ctx, id)
}
