package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeploymentsEnrichmentAgainstStub(t *testing.T) {
	c := newStubClient(t)

	out, err := c.Deployments.ListWithPendingUpdates(context.Background(), DeploymentFilter{})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	byID := map[string]DeploymentWithUpdates{}
	for _, d := range out.Items {
		byID[d.ID] = d
	}
	require.Len(t, byID["dep-01"].Updates, 1)
	assert.Equal(t, "pu-01", byID["dep-01"].Updates[0].ID)
	assert.Empty(t, byID["dep-02"].Updates)
	assert.NotNil(t, byID["dep-02"].Updates)
}

// One failing enrichment branch gets an empty default; the others keep their
// results and the call as a whole succeeds.
func TestDeploymentsEnrichmentPartialFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/deployments", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[
			{"id":"d1","tenant_id":"t1","product_id":"p","version_id":"v","status":"healthy","deployed_at":"2026-01-01T00:00:00Z"},
			{"id":"d2","tenant_id":"t1","product_id":"p","version_id":"v","status":"healthy","deployed_at":"2026-01-01T00:00:00Z"},
			{"id":"d3","tenant_id":"t1","product_id":"p","version_id":"v","status":"healthy","deployed_at":"2026-01-01T00:00:00Z"}
		],"meta":{"page":1,"limit":20,"total":3,"total_pages":1}}`))
	})
	mux.HandleFunc("/deployments/d1/pending-updates", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"u1","deployment_id":"d1","version_id":"v2","severity":"minor","created_at":"2026-01-02T00:00:00Z"}]`))
	})
	mux.HandleFunc("/deployments/d2/pending-updates", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/deployments/d3/pending-updates", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"u3","deployment_id":"d3","version_id":"v2","severity":"minor","created_at":"2026-01-02T00:00:00Z"}]`))
	})

	c := newHandlerClient(t, mux)
	out, err := c.Deployments.ListWithPendingUpdates(context.Background(), DeploymentFilter{})
	require.NoError(t, err)
	require.Len(t, out.Items, 3)

	byID := map[string][]string{}
	for _, d := range out.Items {
		ids := []string{}
		for _, u := range d.Updates {
			ids = append(ids, u.ID)
		}
		byID[d.ID] = ids
	}
	// results keyed by deployment ID, never by completion order
	assert.Equal(t, []string{"u1"}, byID["d1"])
	assert.Empty(t, byID["d2"])
	assert.Equal(t, []string{"u3"}, byID["d3"])
}

// A failing primary list is not contained; it propagates.
func TestDeploymentsPrimaryListFailurePropagates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/deployments", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	c := newHandlerClient(t, mux)

	_, err := c.Deployments.ListWithPendingUpdates(context.Background(), DeploymentFilter{})
	require.Error(t, err)
	assert.Equal(t, KindServerError, ErrorKind(err))
}
