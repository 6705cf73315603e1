package db

import "gorm.io/gorm"

// NotDeleted filters out rows whose deleted_at is set. Models that keep
// soft-deleted rows visible to some queries use this instead of gorm.DeletedAt.
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deleted_at IS NULL")
	}
}

// Paginate applies offset and limit for a 1-based page.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
