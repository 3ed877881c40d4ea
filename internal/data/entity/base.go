package entity

import (
	"time"
)

// Audit holds the creation and modification stamps of a mutable record.
type Audit struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Stamp sets both stamps to now; used once, at creation.
func (a *Audit) Stamp(now time.Time) {
	a.CreatedAt = now
	a.UpdatedAt = now
}

// Touch refreshes UpdatedAt, never letting it fall behind CreatedAt.
func (a *Audit) Touch(now time.Time) {
	if now.Before(a.CreatedAt) {
		now = a.CreatedAt
	}
	a.UpdatedAt = now
}
