package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sadopc/standby/internal/slides"
)

// LoadRecentSlides reads the recent-slide record. A record that was never
// written is an empty list.
func (s *Store) LoadRecentSlides() ([]slides.Image, error) {
	r, err := s.GetRecord(RecentSlidesKey)
	if errors.Is(err, ErrNoRecord) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var imgs []slides.Image
	if err := json.Unmarshal(r.Value, &imgs); err != nil {
		return nil, fmt.Errorf("decode recent slides: %w", err)
	}
	return imgs, nil
}

func (s *Store) SaveRecentSlides(imgs []slides.Image) error {
	if imgs == nil {
		imgs = []slides.Image{}
	}
	data, err := json.Marshal(imgs)
	if err != nil {
		return fmt.Errorf("encode recent slides: %w", err)
	}
	return s.PutRecord(RecentSlidesKey, data)
}
