package api

import (
	"context"
	"net/url"

	"licboard/internal/core"
)

type AuditLogFilter struct {
	ListQuery
	ActorID    string
	EntityType string
	EntityID   string
	Action     string
}

func (f AuditLogFilter) values() url.Values {
	params := pageParams(f.ListQuery)
	if f.ActorID != "" {
		params.Set("actor_id", f.ActorID)
	}
	if f.EntityType != "" {
		params.Set("entity_type", f.EntityType)
	}
	if f.EntityID != "" {
		params.Set("entity_id", f.EntityID)
	}
	if f.Action != "" {
		params.Set("action", f.Action)
	}
	return params
}

// AuditLogs is read-only; entries are written server-side from the
// X-User-ID attribution header.
type AuditLogs struct {
	res resource[core.AuditLog]
}

func newAuditLogs(t *Transport) *AuditLogs {
	return &AuditLogs{res: resource[core.AuditLog]{t: t, path: "/audit-logs", plural: "audit_logs"}}
}

func (c *AuditLogs) List(ctx context.Context, f AuditLogFilter) (List[core.AuditLog], error) {
	return c.res.list(ctx, f.values(), f.ListQuery)
}

func (c *AuditLogs) Get(ctx context.Context, id string) (core.AuditLog, error) {
	return c.res.get(ctx, id)
}
