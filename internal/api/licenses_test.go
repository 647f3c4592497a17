package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Licenses arrive in the resource-named {licenses, pagination} envelope.
func TestLicensesListNamedEnvelope(t *testing.T) {
	c := newStubClient(t)

	out, err := c.Licenses.List(context.Background(), LicenseFilter{ListQuery: ListQuery{Page: 1, Limit: 20}})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "lic-01", out.Items[0].ID)
	assert.Equal(t, PageInfo{Page: 1, Limit: 20, Total: 1, TotalPages: 1}, out.PageInfo)
}

func TestLicenseAllocate(t *testing.T) {
	c := newStubClient(t)
	ctx := context.Background()

	alloc, err := c.Licenses.Allocate(ctx, "lic-01", AllocateRequest{TenantID: "ten-01", Seats: 3})
	require.NoError(t, err)
	assert.Equal(t, "lic-01", alloc.LicenseID)
	assert.Equal(t, 3, alloc.Seats)

	lic, err := c.Licenses.Get(ctx, "lic-01")
	require.NoError(t, err)
	assert.Equal(t, 7, lic.SeatsUsed)

	allocs, err := c.Licenses.Allocations(ctx, "lic-01", ListQuery{})
	require.NoError(t, err)
	assert.Len(t, allocs.Items, 1)
}

// Over-allocation is a server decision and comes back as a conflict.
func TestLicenseAllocateSeatsExhausted(t *testing.T) {
	c := newStubClient(t)

	_, err := c.Licenses.Allocate(context.Background(), "lic-01", AllocateRequest{TenantID: "ten-01", Seats: 100})
	require.Error(t, err)
	assert.True(t, IsConflict(err))
	var ae *APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "SEATS_EXHAUSTED", ae.Code)
}

// Zero seats never leaves the client.
func TestLicenseAllocateValidation(t *testing.T) {
	c := newStubClient(t)

	_, err := c.Licenses.Allocate(context.Background(), "lic-01", AllocateRequest{TenantID: "ten-01", Seats: 0})
	require.Error(t, err)
	assert.Equal(t, KindValidation, ErrorKind(err))
}

func TestLicenseBlock(t *testing.T) {
	c := newStubClient(t)

	lic, err := c.Licenses.Block(context.Background(), "lic-01")
	require.NoError(t, err)
	assert.Equal(t, "blocked", string(lic.Status))
}
