package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/sadopc/standby/internal/slides"
)

func samplePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 8, 6))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func sampleData(t *testing.T) []slides.Image {
	return []slides.Image{
		{Name: "agenda.png", Data: samplePNG(t)},
		{Name: "notes.bin", Data: []byte("opaque")},
	}
}

// ============================================================
// Directory + JSON manifest
// ============================================================

func TestSlidesToDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	imgs := sampleData(t)
	if err := SlidesToDir(imgs, dir); err != nil {
		t.Fatalf("SlidesToDir: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "01-agenda.png"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, imgs[0].Data) {
		t.Fatal("slide bytes differ")
	}

	raw, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		t.Fatal(err)
	}
	var m jsonExport
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	if m.Count != 2 || len(m.Slides) != 2 {
		t.Fatalf("manifest count %d slides %d", m.Count, len(m.Slides))
	}
	first := m.Slides[0]
	if first.File != "01-agenda.png" || first.Format != "png" || first.Width != 8 || first.Height != 6 {
		t.Fatalf("unexpected first entry %+v", first)
	}
	if m.Slides[1].Format != "" {
		t.Fatal("undecodable payload should have no format")
	}
	if m.ExportedAt == "" {
		t.Fatal("missing exported_at")
	}
}

func TestSlidesToDirEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := SlidesToDir(nil, dir); err != nil {
		t.Fatal(err)
	}
	raw, _ := os.ReadFile(filepath.Join(dir, ManifestName))
	var m jsonExport
	json.Unmarshal(raw, &m)
	if m.Count != 0 || m.Slides == nil {
		t.Fatalf("unexpected manifest %+v", m)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		pos  int
		name string
		want string
	}{
		{0, "a.png", "01-a.png"},
		{4, "dir/b.jpg", "05-b.jpg"},
		{1, "", "02-slide"},
	}
	for _, tt := range tests {
		if got := fileName(tt.pos, tt.name); got != tt.want {
			t.Errorf("fileName(%d, %q) = %q, want %q", tt.pos, tt.name, got, tt.want)
		}
	}
}

// ============================================================
// CSV
// ============================================================

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slides.csv")
	if err := ToCSV(sampleData(t), path); err != nil {
		t.Fatalf("ToCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 rows (1 header + 2 data), got %d", len(records))
	}
	row := records[1]
	if row[1] != "agenda.png" || row[4] != "png" || row[5] != "8x6" {
		t.Fatalf("unexpected row %v", row)
	}
	if records[2][3] != "6 B" {
		t.Fatalf("size %q", records[2][3])
	}
}

func TestToCSVBadPath(t *testing.T) {
	if err := ToCSV(nil, "/nonexistent/dir/file.csv"); err == nil {
		t.Fatal("expected error for bad path")
	}
}
