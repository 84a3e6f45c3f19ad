package booking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railbook/internal/booking"
	"railbook/internal/booking/domain"
	"railbook/pkg/sentinel"
)

func TestInMemoryStoreLoadMissing(t *testing.T) {
	store := booking.NewInMemoryStore()

	_, err := store.Load(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestInMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := booking.NewInMemoryStore()

	draft, err := domain.Draft{}.WithOrigin(domain.MustLocation("Berlin Hbf"))
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "sess-1", draft))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, draft, loaded)
}

func TestInMemoryStoreReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	store := booking.NewInMemoryStore()

	first, err := domain.Draft{}.WithOrigin(domain.MustLocation("Berlin Hbf"))
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "sess-1", first))

	second, err := first.WithDestination(domain.MustLocation("Paris Nord"))
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "sess-1", second))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, second, loaded)
	require.NotNil(t, loaded.Destination)
}

func TestInMemoryStoreSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := booking.NewInMemoryStore()

	draft, err := domain.Draft{}.WithOrigin(domain.MustLocation("London Waterloo"))
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "sess-1", draft))

	_, err = store.Load(ctx, "sess-2")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}
