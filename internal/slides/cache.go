// Package slides keeps the presenter's recently uploaded slide images.
package slides

import (
	"bytes"
	"log"
)

// MaxRecent bounds the history.
const MaxRecent = 5

// Image is one uploaded slide. Name is the dedup key.
type Image struct {
	Name string `json:"name"`
	Data []byte `json:"data"`
}

// Persister stores the recent list between sessions.
type Persister interface {
	LoadRecentSlides() ([]Image, error)
	SaveRecentSlides([]Image) error
}

// Cache is the most-recent-first list of uploaded slides plus the slide
// currently on stage. Persistence errors are logged and never change the
// in-memory list.
type Cache struct {
	p       Persister
	recent  []Image
	current []byte
}

// New returns an empty cache. A nil Persister keeps the list in memory only.
func New(p Persister) *Cache {
	return &Cache{p: p}
}

// LoadPersisted replaces the list with the stored one. A missing record is
// an empty list.
func (c *Cache) LoadPersisted() {
	if c.p == nil {
		return
	}
	stored, err := c.p.LoadRecentSlides()
	if err != nil {
		log.Printf("slides: load recent: %v", err)
		return
	}
	c.recent = normalize(stored)
}

// Add puts the image at the front, replacing any entry with the same name,
// and drops whatever falls past MaxRecent.
func (c *Cache) Add(name string, data []byte) {
	next := make([]Image, 0, len(c.recent)+1)
	next = append(next, Image{Name: name, Data: data})
	for _, img := range c.recent {
		if img.Name != name {
			next = append(next, img)
		}
	}
	if len(next) > MaxRecent {
		next = next[:MaxRecent]
	}
	c.recent = next
	c.dropStaleSelection()
	c.persist()
}

// Remove deletes the entry at index. It reports false for an index outside
// the list.
func (c *Cache) Remove(index int) bool {
	if index < 0 || index >= len(c.recent) {
		return false
	}
	next := make([]Image, 0, len(c.recent)-1)
	next = append(next, c.recent[:index]...)
	next = append(next, c.recent[index+1:]...)
	c.recent = next
	c.dropStaleSelection()
	c.persist()
	return true
}

// Select puts data on stage. History order is untouched.
func (c *Cache) Select(data []byte) {
	c.current = data
}

// SelectIndex puts the entry at index on stage.
func (c *Cache) SelectIndex(index int) bool {
	if index < 0 || index >= len(c.recent) {
		return false
	}
	c.current = c.recent[index].Data
	return true
}

// Clear takes the current slide off stage.
func (c *Cache) Clear() {
	c.current = nil
}

// Current returns the slide on stage.
func (c *Cache) Current() ([]byte, bool) {
	return c.current, c.current != nil
}

// CurrentName is the name of the first entry carrying the current data.
func (c *Cache) CurrentName() string {
	if c.current == nil {
		return ""
	}
	for _, img := range c.recent {
		if bytes.Equal(img.Data, c.current) {
			return img.Name
		}
	}
	return ""
}

// List returns a copy of the history, most recent first.
func (c *Cache) List() []Image {
	out := make([]Image, len(c.recent))
	copy(out, c.recent)
	return out
}

func (c *Cache) Len() int {
	return len(c.recent)
}

func (c *Cache) contains(data []byte) bool {
	for _, img := range c.recent {
		if bytes.Equal(img.Data, data) {
			return true
		}
	}
	return false
}

// dropStaleSelection clears the stage when no entry holds its data anymore.
func (c *Cache) dropStaleSelection() {
	if c.current != nil && !c.contains(c.current) {
		c.current = nil
	}
}

func (c *Cache) persist() {
	if c.p == nil {
		return
	}
	if err := c.p.SaveRecentSlides(c.List()); err != nil {
		log.Printf("slides: save recent: %v", err)
	}
}

// normalize enforces the list invariants on data read back from storage.
func normalize(in []Image) []Image {
	seen := make(map[string]bool, len(in))
	out := make([]Image, 0, min(len(in), MaxRecent))
	for _, img := range in {
		if seen[img.Name] {
			continue
		}
		seen[img.Name] = true
		out = append(out, img)
		if len(out) == MaxRecent {
			break
		}
	}
	return out
}
