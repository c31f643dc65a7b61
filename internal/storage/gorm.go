package storage

import (
	"gorm.io/gorm"
)

// GormStore is the relational adapter behind the Storage interface.
type GormStore struct {
	db *gorm.DB
}

var _ Storage = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}
