package database

import (
	"encoding/json"

	"gorm.io/gorm"

	"printcare/internal/logger"
	"printcare/internal/metrics"
	"printcare/internal/models"
)

// WriteAudit appends one audit record for a mutating action. oldValues and
// newValues are serialized to JSON; pass nil when a side has no snapshot
// (creates have no old state, deletes no new state).
//
// The write is synchronous with the mutation it records. A failure is logged
// but does not fail the caller's request.
func WriteAudit(db *gorm.DB, actorID uint, action, table string, recordID uint, oldValues, newValues interface{}) {
	record := models.AuditLog{
		UserID:    actorID,
		Action:    action,
		Table:     table,
		RecordID:  recordID,
		OldValues: marshalValues(oldValues),
		NewValues: marshalValues(newValues),
	}

	if err := db.Create(&record).Error; err != nil {
		log := logger.Get()
		log.Error().
			Err(err).
			Str("action", action).
			Str("table", table).
			Uint("record_id", recordID).
			Msg("failed to write audit record")
		return
	}

	metrics.AuditRecordsTotal.WithLabelValues(table, action).Inc()
}

func marshalValues(v interface{}) string {
	if v == nil {
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
