package database

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/palemoky/tonetrainer/internal/logger"
)

// ErrNoWords is returned when no selectable entry is left in the store.
var ErrNoWords = errors.New("no word with unknown or confirmed pronunciation left")

// ErrEntryNotFound is returned when an update targets a missing key.
var ErrEntryNotFound = errors.New("entry not found")

// RepositoryInterface defines the word store operations used by the quiz
type RepositoryInterface interface {
	RandomAvailable(ctx context.Context) (*Entry, error)
	MarkAvailability(ctx context.Context, simplified string, a Availability) error
	IncrementTested(ctx context.Context, simplified string) error
}

// Repository handles database operations on the toneinfo table
type Repository struct {
	db *DB
}

// NewRepository creates a new repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// notNo matches rows that were not yet ruled out. NULL counts as unknown.
const notNo = "forvo_available IS NULL OR forvo_available <> ?"

// RandomAvailable returns one entry chosen uniformly at random among the
// entries whose availability is not "no".
func (r *Repository) RandomAvailable(ctx context.Context) (*Entry, error) {
	var entry Entry
	err := r.db.WithContext(ctx).
		Where(notNo, AvailabilityNo).
		Order("RANDOM()").
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoWords
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select random entry: %w", err)
	}
	return &entry, nil
}

// GetBySimplified retrieves an entry by its key
func (r *Repository) GetBySimplified(ctx context.Context, simplified string) (*Entry, error) {
	var entry Entry
	err := r.db.WithContext(ctx).Where("simplified = ?", simplified).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// MarkAvailability records the lookup outcome for a word.
// A word already marked "yes" is never rewritten; marking it again is a no-op.
func (r *Repository) MarkAvailability(ctx context.Context, simplified string, a Availability) error {
	if a != AvailabilityYes && a != AvailabilityNo {
		return fmt.Errorf("refusing to set availability to %q", a)
	}

	result := r.db.WithContext(ctx).Model(&Entry{}).
		Where("simplified = ?", simplified).
		Where("forvo_available IS NULL OR forvo_available <> ?", AvailabilityYes).
		Update("forvo_available", a)
	if result.Error != nil {
		return fmt.Errorf("failed to update availability of %s: %w", simplified, result.Error)
	}

	if result.RowsAffected > 0 {
		logger.Debug("Availability updated",
			zap.String("word", simplified),
			zap.String("availability", string(a)),
		)
	}

	return nil
}

// IncrementTested adds one completed round to the entry's counter.
// The increment happens in SQL so a stale in-memory copy can't lose updates.
func (r *Repository) IncrementTested(ctx context.Context, simplified string) error {
	result := r.db.WithContext(ctx).Model(&Entry{}).
		Where("simplified = ?", simplified).
		Update("number_tested", gorm.Expr("COALESCE(number_tested, 0) + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to update times tested of %s: %w", simplified, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, simplified)
	}

	logger.Debug("Times tested incremented", zap.String("word", simplified))
	return nil
}

// ListUnknown returns up to limit entries whose availability was never
// determined. A non-positive limit returns all of them.
func (r *Repository) ListUnknown(ctx context.Context, limit int) ([]Entry, error) {
	var entries []Entry
	query := r.db.WithContext(ctx).
		Where("forvo_available IS NULL OR forvo_available NOT IN ?",
			[]Availability{AvailabilityYes, AvailabilityNo}).
		Order("simplified")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListAll returns every entry ordered by key
func (r *Repository) ListAll(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).Order("simplified").Find(&entries).Error
	return entries, err
}

// GetStatistics returns counts per availability and the most tested words
func (r *Repository) GetStatistics(ctx context.Context, top int) (*Statistics, error) {
	stats := &Statistics{ByAvailability: make(map[Availability]int)}

	var counts []AvailabilityCount
	err := r.db.WithContext(ctx).Model(&Entry{}).
		Select("forvo_available, COUNT(*) AS count").
		Group("forvo_available").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	for _, c := range counts {
		// NULL and "unknown" rows land in the same bucket
		stats.ByAvailability[c.Available] += c.Count
		stats.TotalWords += c.Count
	}

	var tested int64
	err = r.db.WithContext(ctx).Model(&Entry{}).
		Select("COALESCE(SUM(number_tested), 0)").
		Scan(&tested).Error
	if err != nil {
		return nil, err
	}
	stats.TotalTested = int(tested)

	if top > 0 {
		err = r.db.WithContext(ctx).
			Where("number_tested > 0").
			Order("number_tested DESC, simplified").
			Limit(top).
			Find(&stats.MostTested).Error
		if err != nil {
			return nil, err
		}
	}

	return stats, nil
}
