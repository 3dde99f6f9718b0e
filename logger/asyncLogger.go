package logger

import (
	log_model "courier-booking/models/log"
	"courier-booking/types"

	"gorm.io/gorm"
)

// AsyncLogger persists sanitized request audit records without blocking the
// request path. Entries flow through a buffered channel into the logs table.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.LogEntry
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.LogEntry, 100),
	}
}

// ProcessLog drains the channel and writes rows. Run it in its own goroutine.
func (l *AsyncLogger) ProcessLog() {
	for entry := range l.channel {
		row := log_model.Log{
			Method:          entry.Method,
			URL:             entry.URL,
			RequestBody:     entry.RequestBody,
			ResponseBody:    entry.ResponseBody,
			RequestHeaders:  entry.RequestHeaders,
			ResponseHeaders: entry.ResponseHeaders,
			StatusCode:      entry.StatusCode,
			CreatedAt:       entry.CreatedAt,
		}
		if err := l.db.Create(&row).Error; err != nil {
			Error("Failed to insert audit log entry", err)
		}
	}
}

// Log queues an entry; drops nothing, blocks only when the buffer is full.
func (l *AsyncLogger) Log(entry types.LogEntry) {
	l.channel <- entry
}
