// Package sqlstore persists the catalog and submissions in relational tables via gorm.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodie-site-api/catalog"
	"foodie-site-api/models"
	"foodie-site-api/storage"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Store struct {
	db  *gorm.DB
	cat *catalog.Catalog
	now storage.Clock
	log logrus.FieldLogger
}

var _ storage.Store = (*Store)(nil)

type Option func(*Store)

func WithClock(c storage.Clock) Option { return func(s *Store) { s.now = c } }

func WithLogger(l logrus.FieldLogger) Option { return func(s *Store) { s.log = l } }

// OpenSQLite opens (or creates) a sqlite database file using the pure-Go driver.
func OpenSQLite(path string, cat *catalog.Catalog, opts ...Option) (*Store, error) {
	s, err := open(sqlite.Open(path), cat, opts...)
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer; one connection makes concurrent
	// inserts queue instead of failing with "database is locked".
	sqlDB, err := s.db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlstore: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return s, nil
}

func OpenPostgres(dsn string, cat *catalog.Catalog, opts ...Option) (*Store, error) {
	return open(postgres.Open(dsn), cat, opts...)
}

func open(dialector gorm.Dialector, cat *catalog.Catalog, opts ...Option) (*Store, error) {
	if cat == nil {
		return nil, fmt.Errorf("sqlstore: catalog is required")
	}
	s := &Store{cat: cat, now: time.Now, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(s.log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("sqlstore: connect: %w", err)
	}

	err = db.AutoMigrate(
		&models.Category{},
		&models.MenuItem{},
		&models.ContactMessage{},
		&models.Reservation{},
		&models.Review{},
	)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: migrate: %w", err)
	}
	s.db = db
	return s, nil
}

// Seed inserts the catalog in one transaction when the categories table is empty.
func (s *Store) Seed(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		cats := s.cat.Categories()
		if err := tx.Create(&cats).Error; err != nil {
			return err
		}
		items := s.cat.Items()
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		s.log.WithField("categories", len(cats)).WithField("items", len(items)).Info("catalog seeded")
		return nil
	})
	return storage.Fault("seed", err)
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	cats := []models.Category{}
	if err := s.db.WithContext(ctx).Order("id").Find(&cats).Error; err != nil {
		return nil, storage.Fault("list categories", err)
	}
	return cats, nil
}

func (s *Store) GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error) {
	var c models.Category
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Category{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Category{}, storage.Fault("get category", err)
	}
	return c, nil
}

func (s *Store) ListMenuItems(ctx context.Context, categoryID *int64) ([]models.MenuItem, error) {
	db := s.db.WithContext(ctx)
	query := db.Where("category_id IN (?)", db.Model(&models.Category{}).Select("id"))
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	items := []models.MenuItem{}
	if err := query.Order("id").Find(&items).Error; err != nil {
		return nil, storage.Fault("list menu items", err)
	}
	return items, nil
}

func (s *Store) ListMenuItemsByCategory(ctx context.Context, categoryID int64) ([]models.MenuItem, error) {
	return s.ListMenuItems(ctx, &categoryID)
}

func (s *Store) CreateContactMessage(ctx context.Context, msg models.ContactMessageInput) error {
	rec := models.ContactMessage{ContactMessageInput: msg}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return storage.Fault("create contact message", err)
	}
	s.log.WithField("contact_id", rec.ID).Info("contact message stored")
	return nil
}

func (s *Store) CreateReservation(ctx context.Context, res models.ReservationInput) error {
	rec := models.Reservation{ReservationInput: res}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return storage.Fault("create reservation", err)
	}
	s.log.WithField("reservation_id", rec.ID).
		WithField("date", rec.Date).
		WithField("guests", rec.Guests).
		Info("reservation stored")
	return nil
}

func (s *Store) ListReviews(ctx context.Context) ([]models.Review, error) {
	reviews := []models.Review{}
	if err := s.db.WithContext(ctx).Order("id").Find(&reviews).Error; err != nil {
		return nil, storage.Fault("list reviews", err)
	}
	return reviews, nil
}

func (s *Store) CreateReview(ctx context.Context, review models.ReviewInput) (models.Review, error) {
	rec := models.Review{ReviewInput: review, Date: s.now.Today()}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return models.Review{}, storage.Fault("create review", err)
	}
	s.log.WithField("review_id", rec.ID).WithField("rating", rec.Rating).Info("review stored")
	return rec, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
