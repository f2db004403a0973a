// Package storage defines the persistence boundary shared by every backend.
package storage

import (
	"context"
	"errors"
	"time"

	"foodie-site-api/models"
)

// ErrNotFound is returned when a lookup key has no matching record.
var ErrNotFound = errors.New("not found")

// Store reads the seeded catalog and persists user submissions.
// Contact messages, reservations and reviews are append-only.
type Store interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error)
	// ListMenuItems returns every item when categoryID is nil.
	ListMenuItems(ctx context.Context, categoryID *int64) ([]models.MenuItem, error)
	ListMenuItemsByCategory(ctx context.Context, categoryID int64) ([]models.MenuItem, error)

	CreateContactMessage(ctx context.Context, msg models.ContactMessageInput) error
	CreateReservation(ctx context.Context, res models.ReservationInput) error
	// ListReviews returns reviews in submission order.
	ListReviews(ctx context.Context) ([]models.Review, error)
	CreateReview(ctx context.Context, review models.ReviewInput) (models.Review, error)

	// Seed loads the catalog on first call and does nothing afterwards.
	Seed(ctx context.Context) error
	Close() error
}

// FaultError wraps a failure of the underlying medium (disk or database).
type FaultError struct {
	Op  string
	Err error
}

func (e *FaultError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *FaultError) Unwrap() error { return e.Err }

// Fault wraps err as a *FaultError for op; nil stays nil.
func Fault(op string, err error) error {
	if err == nil {
		return nil
	}
	return &FaultError{Op: op, Err: err}
}

// Clock supplies the time used for server-assigned fields.
type Clock func() time.Time

// DateLayout is the calendar-date format of Review.Date.
const DateLayout = "2006-01-02"

// Today formats the clock's current calendar date.
func (c Clock) Today() string {
	if c == nil {
		return time.Now().Format(DateLayout)
	}
	return c().Format(DateLayout)
}
