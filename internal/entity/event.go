package entity

import "time"

type RecordKind string

const (
	RecordBook    RecordKind = "book"
	RecordJournal RecordKind = "journal"
	RecordDataset RecordKind = "dataset"
)

type RecordEventType string

const (
	RecordCreated RecordEventType = "created"
	RecordUpdated RecordEventType = "updated"
)

// RecordEvent — событие успешной отправки записи. Публикуется после
// фиксации строки в хранилище, best-effort.
type RecordEvent struct {
	EventID    string          `json:"-" msgpack:"event_id"`
	Kind       RecordKind      `json:"kind" msgpack:"kind"`
	Type       RecordEventType `json:"type" msgpack:"type"`
	RecordID   string          `json:"record_id" msgpack:"record_id"`
	UserID     int             `json:"-" msgpack:"user_id"`
	Title      string          `json:"title" msgpack:"title"`
	OccurredAt time.Time       `json:"-" msgpack:"occurred_at"`
}
