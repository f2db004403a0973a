// Package storetest checks a storage.Store implementation against the
// behaviour every backend must share.
package storetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"foodie-site-api/models"
	"foodie-site-api/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Now is the instant factories should pin their clock to.
var Now = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

// Factory returns a fresh, unseeded store using Now as its clock.
type Factory func(t *testing.T) storage.Store

func Run(t *testing.T, newStore Factory) {
	t.Run("SeedIdempotent", func(t *testing.T) { testSeedIdempotent(t, newStore) })
	t.Run("CategoryBySlug", func(t *testing.T) { testCategoryBySlug(t, newStore) })
	t.Run("MenuItemFilter", func(t *testing.T) { testMenuItemFilter(t, newStore) })
	t.Run("Reviews", func(t *testing.T) { testReviews(t, newStore) })
	t.Run("ConcurrentReservations", func(t *testing.T) { testConcurrentReservations(t, newStore) })
	t.Run("ContactMessage", func(t *testing.T) { testContactMessage(t, newStore) })
}

func seeded(t *testing.T, newStore Factory) storage.Store {
	t.Helper()
	s := newStore(t)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Seed(context.Background()))
	return s
}

func testSeedIdempotent(t *testing.T, newStore Factory) {
	s := seeded(t, newStore)
	ctx := context.Background()

	first, err := s.ListCategories(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	require.NoError(t, s.Seed(ctx))
	second, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	slugs := map[string]bool{}
	for _, c := range second {
		assert.False(t, slugs[c.Slug], "duplicate slug %s", c.Slug)
		slugs[c.Slug] = true
	}
}

func testCategoryBySlug(t *testing.T, newStore Factory) {
	s := seeded(t, newStore)
	ctx := context.Background()

	cats, err := s.ListCategories(ctx)
	require.NoError(t, err)
	for _, c := range cats {
		got, err := s.GetCategoryBySlug(ctx, c.Slug)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err = s.GetCategoryBySlug(ctx, "unknown-slug")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testMenuItemFilter(t *testing.T, newStore Factory) {
	s := seeded(t, newStore)
	ctx := context.Background()

	all, err := s.ListMenuItems(ctx, nil)
	require.NoError(t, err)
	require.NotEmpty(t, all)

	cats, err := s.ListCategories(ctx)
	require.NoError(t, err)
	ids := []int64{999, -1}
	for _, c := range cats {
		ids = append(ids, c.ID)
	}

	for _, id := range ids {
		id := id
		want := []models.MenuItem{}
		for _, it := range all {
			if it.CategoryID == id {
				want = append(want, it)
			}
		}
		got, err := s.ListMenuItems(ctx, &id)
		require.NoError(t, err)
		assert.Equal(t, want, got, "category %d", id)

		nested, err := s.ListMenuItemsByCategory(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, nested, "category %d", id)
	}
}

func testReviews(t *testing.T, newStore Factory) {
	s := seeded(t, newStore)
	ctx := context.Background()

	empty, err := s.ListReviews(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	inputs := []models.ReviewInput{
		{Name: "Asha", Rating: 5, Comment: "Excellent food"},
		{Name: "Ravi", Rating: 2, Comment: "Slow service", Location: "Thane"},
		{Name: "Meera", Rating: 4, Comment: "Good thali"},
	}
	var created []models.Review
	for _, in := range inputs {
		r, err := s.CreateReview(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, in, r.ReviewInput)
		assert.Equal(t, Now.Format(storage.DateLayout), r.Date)
		for _, prev := range created {
			assert.NotEqual(t, prev.ID, r.ID)
		}
		created = append(created, r)
	}

	got, err := s.ListReviews(ctx)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func testConcurrentReservations(t *testing.T, newStore Factory) {
	s := seeded(t, newStore)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.CreateReservation(ctx, models.ReservationInput{
				FirstName: "Asha", LastName: "Patil", Email: "asha@example.com", Phone: "9876543210",
				Address: "Station Road", Date: "2026-10-20", Time: "19:30", Guests: 4,
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func testContactMessage(t *testing.T, newStore Factory) {
	s := seeded(t, newStore)
	err := s.CreateContactMessage(context.Background(), models.ContactMessageInput{
		Name: "Ravi", Email: "ravi@example.com", Phone: "9876543210", Message: "Do you cater weddings?",
	})
	assert.NoError(t, err)
}
