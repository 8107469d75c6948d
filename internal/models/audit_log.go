package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// AuditLog is an append-only record of a mutating action. Rows are written
// once and never changed; the gorm hooks below reject any attempt.
type AuditLog struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID uint `gorm:"not null" json:"user_id"`
	User   User `json:"user"`

	Action    string `gorm:"size:50;not null" json:"action"`
	Table     string `gorm:"column:table_name;size:50;not null" json:"table"`
	RecordID  uint   `json:"record_id"`
	OldValues string `gorm:"type:text" json:"old_values,omitempty"`
	NewValues string `gorm:"type:text" json:"new_values,omitempty"`
}

var errAuditImmutable = errors.New("audit records are immutable")

func (*AuditLog) BeforeUpdate(*gorm.DB) error { return errAuditImmutable }
func (*AuditLog) BeforeDelete(*gorm.DB) error { return errAuditImmutable }
