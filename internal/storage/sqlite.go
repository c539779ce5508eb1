package storage

import (
	"context"
	"errors"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Document is one stored collection (or singleton) as a raw JSON value.
type Document struct {
	Key       string         `gorm:"primaryKey;column:key"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (Document) TableName() string { return "documents" }

type sqliteStore struct {
	db *gorm.DB
}

// Open opens (or creates) the sqlite file at path and migrates the documents
// table. The pure-Go sqlite driver keeps the binary CGO-free.
func Open(path string) (Store, *gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, nil, err
	}
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, nil, err
	}
	return &sqliteStore{db: db}, db, nil
}

// NewWithDB wraps an existing gorm handle, used by tests running on an
// in-memory database.
func NewWithDB(db *gorm.DB) (Store, error) {
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc Document
	err := s.db.WithContext(ctx).First(&doc, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(doc.Value), true, nil
}

func (s *sqliteStore) Set(ctx context.Context, key string, value []byte) error {
	doc := Document{
		Key:       key,
		Value:     datatypes.JSON(value),
		UpdatedAt: time.Now().UTC(),
	}
	return s.db.WithContext(ctx).Save(&doc).Error
}

func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Document{}, "key = ?", key).Error
}

func (s *sqliteStore) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).Exec(`DELETE FROM documents`).Error
}
