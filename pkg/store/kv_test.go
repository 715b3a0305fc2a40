package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	_, err := kv.Get(ctx, KeyAdminToken)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Set(ctx, KeyAdminToken, "tok"))
	val, err := kv.Get(ctx, KeyAdminToken)
	require.NoError(t, err)
	assert.Equal(t, "tok", val)

	require.NoError(t, kv.Delete(ctx, KeyAdminToken, KeyAdminData))
	_, err = kv.Get(ctx, KeyAdminToken)
	assert.ErrorIs(t, err, ErrNotFound)
}
