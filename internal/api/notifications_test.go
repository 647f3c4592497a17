package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Notifications come back as a bare array; pagination is synthesized from the
// caller's query with the item count as total.
func TestNotificationsBareArray(t *testing.T) {
	c := newStubClient(t)

	out, err := c.Notifications.List(context.Background(), NotificationFilter{ListQuery: ListQuery{Page: 1, Limit: 50}})
	require.NoError(t, err)
	assert.Len(t, out.Items, 4)
	assert.Equal(t, PageInfo{Page: 1, Limit: 50, Total: 4, TotalPages: 1}, out.PageInfo)
}

func TestNotificationsUnreadFilter(t *testing.T) {
	c := newStubClient(t)

	out, err := c.Notifications.List(context.Background(), NotificationFilter{Unread: true})
	require.NoError(t, err)
	for _, n := range out.Items {
		assert.False(t, n.Read)
	}
	assert.Len(t, out.Items, 2)
}

// Audit logs use the already-canonical {data, pagination} envelope.
func TestAuditLogsDataPagination(t *testing.T) {
	c := newStubClient(t)

	out, err := c.AuditLogs.List(context.Background(), AuditLogFilter{ListQuery: ListQuery{Page: 1, Limit: 2}})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, PageInfo{Page: 1, Limit: 2, Total: 5, TotalPages: 3}, out.PageInfo)
}
