package audit

import (
	"time"

	"gorm.io/gorm"
)

// Repository defines the interface for activity log access
type Repository interface {
	Create(entry *Entry) error
	List(page, pageSize int) ([]Entry, int64, error)
}

// RepositoryImpl implements Repository
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new activity log repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// Create persists one activity entry
func (r *RepositoryImpl) Create(entry *Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	return r.db.Create(entry).Error
}

// List returns entries newest-first with the total count
func (r *RepositoryImpl) List(page, pageSize int) ([]Entry, int64, error) {
	var entries []Entry
	var total int64

	if err := r.db.Model(&Entry{}).Count(&total).Error; err != nil {
		return entries, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&entries).Error

	return entries, total, err
}
