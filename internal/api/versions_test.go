package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"licboard/internal/core"
)

func TestVersionLifecycleActions(t *testing.T) {
	c := newStubClient(t)
	ctx := context.Background()

	v, err := c.Versions.SubmitForReview(ctx, "ver-01")
	require.NoError(t, err)
	assert.Equal(t, core.VersionPendingReview, v.Status)

	v, err = c.Versions.Approve(ctx, "ver-01")
	require.NoError(t, err)
	assert.Equal(t, core.VersionApproved, v.Status)

	v, err = c.Versions.Release(ctx, "ver-01")
	require.NoError(t, err)
	assert.Equal(t, core.VersionReleased, v.Status)
	require.NotNil(t, v.ReleasedAt)

	v, err = c.Versions.Deprecate(ctx, "ver-01")
	require.NoError(t, err)
	assert.Equal(t, core.VersionDeprecated, v.Status)
}

func TestVersionActionOnMissingVersion(t *testing.T) {
	c := newStubClient(t)

	_, err := c.Versions.Approve(context.Background(), "no-such-version")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestVersionCreateValidatesSemver(t *testing.T) {
	c := newStubClient(t)

	_, err := c.Versions.Create(context.Background(), VersionCreate{ProductID: "prod-01", Version: "not-a-version"})
	require.Error(t, err)
	assert.Equal(t, KindValidation, ErrorKind(err))

	v, err := c.Versions.Create(context.Background(), VersionCreate{ProductID: "prod-01", Version: "2.0.0-rc.1"})
	require.NoError(t, err)
	assert.Equal(t, core.VersionDraft, v.Status)
}

func TestVersionListFilteredByStatus(t *testing.T) {
	c := newStubClient(t)

	out, err := c.Versions.List(context.Background(), VersionFilter{Status: core.VersionReleased})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "ver-02", out.Items[0].ID)
}
