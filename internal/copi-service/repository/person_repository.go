package repository

import (
	"CoPI_Backend/internal/copi-service/model"
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type PersonRepository interface {
	// Ping issues a trivial read-only query against the record store to
	// confirm reachability. It never retries.
	Ping(ctx context.Context) error
	// GetDistinctInstitutions returns distinct non-empty institution values
	// from person records, excluding the record whose id equals excludeID.
	// A non-empty filter narrows the result to case-insensitive substring
	// matches; results are sorted ascending and capped at limit.
	GetDistinctInstitutions(ctx context.Context, filter string, excludeID string, limit int) ([]string, error)
}

type personRepository struct {
	db *gorm.DB
}

func (p *personRepository) Ping(ctx context.Context) error {
	var probe int
	err := p.db.WithContext(ctx).Raw("SELECT 1").Scan(&probe).Error
	if err != nil {
		return fmt.Errorf("PersonRepository.Ping: %w", err)
	}
	return nil
}

// escapeLikePattern escapes LIKE metacharacters so the filter matches
// literally instead of being interpreted as a pattern.
func escapeLikePattern(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (p *personRepository) GetDistinctInstitutions(ctx context.Context, filter string, excludeID string, limit int) ([]string, error) {
	query := p.db.WithContext(ctx).Model(&model.Person{}).
		Where("id <> ?", excludeID).
		Where("institution IS NOT NULL").
		Where("institution <> ''")
	if filter != "" {
		query = query.Where("institution ILIKE ?", "%"+escapeLikePattern(filter)+"%")
	}
	var institutions []string
	result := query.Distinct("institution").
		Order("institution ASC").
		Limit(limit).
		Pluck("institution", &institutions)
	if result.Error != nil {
		return nil, fmt.Errorf("PersonRepository.GetDistinctInstitutions: %w", result.Error)
	}
	return institutions, nil
}

func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &personRepository{
		db: db,
	}
}
