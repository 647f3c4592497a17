package api

import (
	"context"
	"net/url"

	"licboard/internal/core"
)

type NotificationFilter struct {
	ListQuery
	Level  string
	Unread bool
}

func (f NotificationFilter) values() url.Values {
	params := pageParams(f.ListQuery)
	if f.Level != "" {
		params.Set("level", f.Level)
	}
	if f.Unread {
		params.Set("unread", "true")
	}
	return params
}

// Notifications is backed by one of the endpoints that answers with a bare
// JSON array; pagination is synthesized from the caller's query.
type Notifications struct {
	res resource[core.Notification]
}

func newNotifications(t *Transport) *Notifications {
	return &Notifications{res: resource[core.Notification]{t: t, path: "/notifications", plural: "notifications"}}
}

func (c *Notifications) List(ctx context.Context, f NotificationFilter) (List[core.Notification], error) {
	return c.res.list(ctx, f.values(), f.ListQuery)
}

func (c *Notifications) MarkRead(ctx context.Context, id string) (core.Notification, error) {
	return c.res.action(ctx, id, "read", nil)
}

func (c *Notifications) Delete(ctx context.Context, id string) error {
	return c.res.delete(ctx, id)
}
