// Package filestore keeps the catalog in memory and appends submissions to
// JSON array files under a data directory.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"foodie-site-api/catalog"
	"foodie-site-api/models"
	"foodie-site-api/storage"

	"github.com/sirupsen/logrus"
)

const (
	ReservationsFile    = "reservations.json"
	ReviewsFile         = "reviews.json"
	ContactMessagesFile = "contact_messages.json"
)

type Store struct {
	source *catalog.Catalog
	now    storage.Clock
	log    logrus.FieldLogger

	mu     sync.RWMutex
	seeded *catalog.Catalog

	reservations *jsonLog[models.Reservation]
	reviews      *jsonLog[models.Review]
	contacts     *jsonLog[models.ContactMessage]
}

var _ storage.Store = (*Store)(nil)

type Option func(*Store)

func WithClock(c storage.Clock) Option { return func(s *Store) { s.now = c } }

func WithLogger(l logrus.FieldLogger) Option { return func(s *Store) { s.log = l } }

// New creates dir if needed. The catalog is served only after Seed.
func New(dir string, cat *catalog.Catalog, opts ...Option) (*Store, error) {
	if cat == nil {
		return nil, fmt.Errorf("filestore: catalog is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create data dir: %w", err)
	}

	s := &Store{
		source:       cat,
		now:          time.Now,
		log:          logrus.StandardLogger(),
		reservations: newJSONLog(filepath.Join(dir, ReservationsFile), func(r models.Reservation) int64 { return r.ID }),
		reviews:      newJSONLog(filepath.Join(dir, ReviewsFile), func(r models.Review) int64 { return r.ID }),
		contacts:     newJSONLog(filepath.Join(dir, ContactMessagesFile), func(m models.ContactMessage) int64 { return m.ID }),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Store) catalog() *catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seeded
}

func (s *Store) Seed(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return storage.Fault("seed", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seeded != nil && len(s.seeded.Categories()) > 0 {
		return nil
	}
	s.seeded = s.source
	s.log.WithField("categories", len(s.source.Categories())).
		WithField("items", len(s.source.Items())).
		Info("catalog seeded")
	return nil
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, storage.Fault("list categories", err)
	}
	cat := s.catalog()
	if cat == nil {
		return []models.Category{}, nil
	}
	return cat.Categories(), nil
}

func (s *Store) GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error) {
	if err := ctx.Err(); err != nil {
		return models.Category{}, storage.Fault("get category", err)
	}
	cat := s.catalog()
	if cat == nil {
		return models.Category{}, storage.ErrNotFound
	}
	c, ok := cat.CategoryBySlug(slug)
	if !ok {
		return models.Category{}, storage.ErrNotFound
	}
	return c, nil
}

func (s *Store) ListMenuItems(ctx context.Context, categoryID *int64) ([]models.MenuItem, error) {
	if categoryID != nil {
		return s.ListMenuItemsByCategory(ctx, *categoryID)
	}
	if err := ctx.Err(); err != nil {
		return nil, storage.Fault("list menu items", err)
	}
	cat := s.catalog()
	if cat == nil {
		return []models.MenuItem{}, nil
	}
	items := []models.MenuItem{}
	for _, it := range cat.Items() {
		if cat.HasCategory(it.CategoryID) {
			items = append(items, it)
		}
	}
	return items, nil
}

func (s *Store) ListMenuItemsByCategory(ctx context.Context, categoryID int64) ([]models.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, storage.Fault("list menu items", err)
	}
	cat := s.catalog()
	if cat == nil || !cat.HasCategory(categoryID) {
		return []models.MenuItem{}, nil
	}
	return cat.ItemsInCategory(categoryID), nil
}

func (s *Store) CreateContactMessage(ctx context.Context, msg models.ContactMessageInput) error {
	if err := ctx.Err(); err != nil {
		return storage.Fault("create contact message", err)
	}
	rec, err := s.contacts.appendRecord(func(id int64) models.ContactMessage {
		return models.ContactMessage{ID: id, ContactMessageInput: msg}
	})
	if err != nil {
		return storage.Fault("create contact message", err)
	}
	s.log.WithField("contact_id", rec.ID).Info("contact message stored")
	return nil
}

func (s *Store) CreateReservation(ctx context.Context, res models.ReservationInput) error {
	if err := ctx.Err(); err != nil {
		return storage.Fault("create reservation", err)
	}
	rec, err := s.reservations.appendRecord(func(id int64) models.Reservation {
		return models.Reservation{ID: id, ReservationInput: res}
	})
	if err != nil {
		return storage.Fault("create reservation", err)
	}
	s.log.WithField("reservation_id", rec.ID).
		WithField("date", rec.Date).
		WithField("guests", rec.Guests).
		Info("reservation stored")
	return nil
}

func (s *Store) ListReviews(ctx context.Context) ([]models.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, storage.Fault("list reviews", err)
	}
	reviews, err := s.reviews.all()
	if err != nil {
		return nil, storage.Fault("list reviews", err)
	}
	return reviews, nil
}

func (s *Store) CreateReview(ctx context.Context, review models.ReviewInput) (models.Review, error) {
	if err := ctx.Err(); err != nil {
		return models.Review{}, storage.Fault("create review", err)
	}
	rec, err := s.reviews.appendRecord(func(id int64) models.Review {
		return models.Review{ID: id, ReviewInput: review, Date: s.now.Today()}
	})
	if err != nil {
		return models.Review{}, storage.Fault("create review", err)
	}
	s.log.WithField("review_id", rec.ID).WithField("rating", rec.Rating).Info("review stored")
	return rec, nil
}

// Close is a no-op; every write is flushed before it returns.
func (s *Store) Close() error { return nil }
