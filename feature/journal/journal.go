package journal

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Outcome recorded for a successful operation.
const OutcomeOK = "ok"

// Entry is a single journaled storage operation.
type Entry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RayID      string    `gorm:"column:ray_id;size:64;index" json:"ray_id,omitempty"`
	Operation  string    `gorm:"column:operation;size:64;not null" json:"operation"`
	Bucket     string    `gorm:"column:bucket;size:255" json:"bucket"`
	Key        string    `gorm:"column:object_key;size:1024" json:"key,omitempty"`
	Outcome    string    `gorm:"column:outcome;size:32;not null" json:"outcome"`
	Error      string    `gorm:"column:error;type:text" json:"error,omitempty"`
	DurationMS int64     `gorm:"column:duration_ms" json:"duration_ms"`
	CreatedAt  time.Time `gorm:"column:created_at;index" json:"created_at"`
}

// TableName returns the table name for the Entry model.
func (Entry) TableName() string {
	return "storage_journal"
}

// Recorder persists journal entries.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// Nop discards every entry.
type Nop struct{}

// Record implements Recorder.
func (Nop) Record(context.Context, Entry) error { return nil }

// GormRecorder stores entries in a relational database.
type GormRecorder struct {
	db *gorm.DB
}

// NewGormRecorder creates a recorder backed by db.
func NewGormRecorder(db *gorm.DB) *GormRecorder {
	return &GormRecorder{db: db}
}

// Migrate creates or updates the journal table.
func (r *GormRecorder) Migrate() error {
	return r.db.AutoMigrate(&Entry{})
}

// Record inserts e.
func (r *GormRecorder) Record(ctx context.Context, e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(&e).Error
}

// Recent returns up to limit entries, newest first.
func (r *GormRecorder) Recent(ctx context.Context, limit int) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).Order("id desc").Limit(limit).Find(&entries).Error
	return entries, err
}
