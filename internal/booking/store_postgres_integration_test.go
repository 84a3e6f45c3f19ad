//go:build integration

package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"railbook/internal/booking"
	"railbook/internal/booking/domain"
	"railbook/pkg/sentinel"
	"railbook/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *booking.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = booking.NewPostgresStore(s.postgres.DB)
	s.Require().NoError(s.store.Migrate(context.Background()))
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "booking_drafts"))
}

func (s *PostgresStoreSuite) TestLoadMissingSession() {
	_, err := s.store.Load(context.Background(), "nobody")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestSaveThenLoadRoundTrip() {
	ctx := context.Background()

	draft, err := domain.Draft{}.WithOrigin(domain.MustLocation("Amsterdam Centraal"))
	s.Require().NoError(err)
	draft, err = draft.WithDestination(domain.MustLocation("Paris Nord"))
	s.Require().NoError(err)
	draft, err = draft.WithTime(domain.NewDeparture(domain.MustFutureTimestamp(time.Now().Add(time.Hour))))
	s.Require().NoError(err)

	s.Require().NoError(s.store.Save(ctx, "sess-1", draft))

	loaded, err := s.store.Load(ctx, "sess-1")
	s.Require().NoError(err)
	s.Equal("Amsterdam Centraal", loaded.Origin.String())
	s.Equal("Paris Nord", loaded.Destination.String())
	s.True(loaded.Filled(domain.SlotTime))
}

func (s *PostgresStoreSuite) TestSaveUpsertsOnConflict() {
	ctx := context.Background()

	first, err := domain.Draft{}.WithOrigin(domain.MustLocation("Berlin Hbf"))
	s.Require().NoError(err)
	s.Require().NoError(s.store.Save(ctx, "sess-1", first))

	second, err := first.WithDestination(domain.MustLocation("London Waterloo"))
	s.Require().NoError(err)
	s.Require().NoError(s.store.Save(ctx, "sess-1", second))

	loaded, err := s.store.Load(ctx, "sess-1")
	s.Require().NoError(err)
	s.Equal("Berlin Hbf", loaded.Origin.String())
	s.Equal("London Waterloo", loaded.Destination.String())
}

func (s *PostgresStoreSuite) TestSessionsAreIndependent() {
	ctx := context.Background()

	a, err := domain.Draft{}.WithOrigin(domain.MustLocation("Paris Nord"))
	s.Require().NoError(err)
	b, err := domain.Draft{}.WithOrigin(domain.MustLocation("Berlin Hbf"))
	s.Require().NoError(err)

	s.Require().NoError(s.store.Save(ctx, "sess-a", a))
	s.Require().NoError(s.store.Save(ctx, "sess-b", b))

	loadedA, err := s.store.Load(ctx, "sess-a")
	s.Require().NoError(err)
	loadedB, err := s.store.Load(ctx, "sess-b")
	s.Require().NoError(err)
	s.Equal("Paris Nord", loadedA.Origin.String())
	s.Equal("Berlin Hbf", loadedB.Origin.String())
}
