package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummaryAgainstStub(t *testing.T) {
	c := newStubClient(t)

	s := c.Dashboard.Summary(context.Background())
	assert.Equal(t, 3, s.ProductCount)
	assert.Equal(t, 2, s.VersionCount)
	assert.Equal(t, 1, s.RolloutCount)
	assert.Equal(t, 1, s.CustomerCount)
	require.Len(t, s.ActiveRollouts, 1)
	assert.Equal(t, "ro-01", s.ActiveRollouts[0].ID)
	assert.Len(t, s.RecentProducts, 3)
	assert.Len(t, s.RecentAuditLogs, 5)
}

// A failed branch contributes zero/default values; the rest of the summary
// still loads.
func TestDashboardSummaryPartialFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[{"id":"p1","name":"P1","active":true,"created_at":"2026-01-01T00:00:00Z","updated_at":"2026-01-01T00:00:00Z"}],"meta":{"page":1,"limit":5,"total":7,"total_pages":2}}`))
	})
	mux.HandleFunc("/versions", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[],"meta":{"page":1,"limit":5,"total":12,"total_pages":3}}`))
	})
	mux.HandleFunc("/update-rollouts", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/customers", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusServiceUnavailable)
	})
	mux.HandleFunc("/audit-logs", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[],"pagination":{"page":1,"limit":5,"total":0,"total_pages":1}}`))
	})

	c := newHandlerClient(t, mux)
	s := c.Dashboard.Summary(context.Background())

	assert.Equal(t, 7, s.ProductCount)
	assert.Equal(t, 12, s.VersionCount)
	assert.Equal(t, 0, s.RolloutCount)
	assert.Equal(t, 0, s.CustomerCount)
	require.Len(t, s.RecentProducts, 1)
	assert.NotNil(t, s.ActiveRollouts)
	assert.NotNil(t, s.RecentAuditLogs)
}
