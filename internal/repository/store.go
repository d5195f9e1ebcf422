package repository

import "gorm.io/gorm"

// NewMemoryStore creates a volatile store backed by keyed maps.
func NewMemoryStore() *Store {
	return &Store{
		Projects: NewMemoryProjectRepository(),
		Resume:   NewMemoryResumeRepository(),
		Users:    NewMemoryUserRepository(),
	}
}

// NewGormStore creates a store backed by db. Tables must already be migrated.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Projects: NewProjectRepository(db),
		Resume:   NewResumeRepository(db),
		Users:    NewUserRepository(db),
	}
}
