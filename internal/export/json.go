package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sadopc/standby/internal/slides"
)

// ManifestName is written next to the exported slide files.
const ManifestName = "manifest.json"

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Slides     []jsonSlide `json:"slides"`
}

type jsonSlide struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	File     string `json:"file"`
	Bytes    int    `json:"bytes"`
	Format   string `json:"format,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// SlidesToDir writes every slide into dir, most recent first, plus a JSON
// manifest describing them.
func SlidesToDir(imgs []slides.Image, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(imgs),
		Slides:     []jsonSlide{},
	}

	for i, img := range imgs {
		file := fileName(i, img.Name)
		if err := os.WriteFile(filepath.Join(dir, file), img.Data, 0o644); err != nil {
			return fmt.Errorf("write slide %s: %w", img.Name, err)
		}
		entry := jsonSlide{
			Position: i,
			Name:     img.Name,
			File:     file,
			Bytes:    len(img.Data),
		}
		if info, err := slides.Describe(img.Data); err == nil {
			entry.Format = info.Format
			entry.Width = info.Width
			entry.Height = info.Height
		}
		export.Slides = append(export.Slides, entry)
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ManifestName), data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// fileName prefixes the position so names stay unique on disk.
func fileName(pos int, name string) string {
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "slide"
	}
	return fmt.Sprintf("%02d-%s", pos+1, base)
}
