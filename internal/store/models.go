package store

import "time"

type Setting struct {
	Key   string
	Value string
}

// Record is a fixed-key blob.
type Record struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

// Setting keys for the presenter's last-used inputs.
const (
	KeyEventName       = "event_name"
	KeyDurationMinutes = "duration_minutes"
	KeyDurationSeconds = "duration_seconds"
	KeyAlarmDelay      = "alarm_delay"
	KeyAccentColor     = "accent_color"
	KeyScale           = "scale"
)

// RecentSlidesKey addresses the persisted recent-slide list.
const RecentSlidesKey = "recent-slides"
