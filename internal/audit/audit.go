// Package audit keeps an append-only local record of mutating admin actions.
// The remote portal is the system of record for the entities themselves; this
// trail only answers "who did what from this console, and when".
package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Actions recorded by the console.
const (
	ActionJobCreate     = "job.create"
	ActionJobUpdate     = "job.update"
	ActionJobDelete     = "job.delete"
	ActionInquiryRead   = "inquiry.mark_read"
	ActionInquiryDelete = "inquiry.delete"
	ActionLogin         = "auth.login"
	ActionLogout        = "auth.logout"
)

// Entry is one recorded admin action.
type Entry struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Actor     string    `gorm:"index" json:"actor"`
	Action    string    `gorm:"index" json:"action"`
	EntityID  string    `json:"entityId"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

// Recorder is what the controllers depend on. A nil-safe no-op implementation
// exists for tests.
type Recorder interface {
	Record(actor, action, entityID, detail string) error
}

// Store persists entries to a local SQLite file via GORM.
type Store struct {
	db *gorm.DB
}

// Open creates (or opens) the audit database at path and migrates the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create audit dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate audit db: %w", err)
	}

	return &Store{db: db}, nil
}

// Record appends one entry.
func (s *Store) Record(actor, action, entityID, detail string) error {
	entry := Entry{
		ID:        uuid.NewString(),
		Actor:     actor,
		Action:    action,
		EntityID:  entityID,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}
	return nil
}

// Recent returns the newest entries, most recent first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []Entry
	if err := s.db.Order("created_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}

// Nop is a Recorder that discards everything.
type Nop struct{}

// Record implements Recorder.
func (Nop) Record(string, string, string, string) error { return nil }
