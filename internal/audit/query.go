package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/home-listing/internal/models"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// ListFilter narrows an audit log query. Empty fields are ignored.
type ListFilter struct {
	Action string
	Entity string
	UserID *uint
	From   *time.Time
	To     *time.Time

	Page  int
	Limit int
}

// Normalize clamps paging to sane bounds.
func (f *ListFilter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > MaxPageSize {
		f.Limit = DefaultPageSize
	}
}

// List returns one page of entries, newest first, with the total match count.
func (l *Logger) List(
	ctx context.Context,
	f ListFilter,
) ([]models.AuditLog, int64, error) {

	f.Normalize()

	q := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
