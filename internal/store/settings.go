package store

import (
	"fmt"
	"strconv"
)

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

func (s *Store) GetAllSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// Preferences are the presenter inputs restored on the next launch.
type Preferences struct {
	EventName  string
	Minutes    int
	Seconds    int
	AlarmDelay string
	Accent     string
	Scale      int
}

// DefaultPreferences mirrors the seeded settings rows.
func DefaultPreferences() Preferences {
	return Preferences{
		EventName:  "meeting",
		Minutes:    5,
		AlarmDelay: "none",
		Accent:     "#60A5FA",
		Scale:      1,
	}
}

// LoadPreferences reads every preference, keeping the default for rows that
// are missing or unreadable.
func (s *Store) LoadPreferences() Preferences {
	p := DefaultPreferences()
	p.EventName = s.getString(KeyEventName, p.EventName)
	p.Minutes = s.getInt(KeyDurationMinutes, p.Minutes)
	p.Seconds = s.getInt(KeyDurationSeconds, p.Seconds)
	p.AlarmDelay = s.getString(KeyAlarmDelay, p.AlarmDelay)
	p.Accent = s.getString(KeyAccentColor, p.Accent)
	p.Scale = s.getInt(KeyScale, p.Scale)
	return p
}

func (s *Store) SavePreferences(p Preferences) error {
	values := []Setting{
		{KeyEventName, p.EventName},
		{KeyDurationMinutes, strconv.Itoa(p.Minutes)},
		{KeyDurationSeconds, strconv.Itoa(p.Seconds)},
		{KeyAlarmDelay, p.AlarmDelay},
		{KeyAccentColor, p.Accent},
		{KeyScale, strconv.Itoa(p.Scale)},
	}
	for _, v := range values {
		if err := s.SetSetting(v.Key, v.Value); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) getString(key, fallback string) string {
	v, err := s.GetSetting(key)
	if err != nil {
		return fallback
	}
	return v
}

func (s *Store) getInt(key string, fallback int) int {
	v, err := s.GetSetting(key)
	if err != nil {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
