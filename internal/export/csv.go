package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sadopc/standby/internal/slides"
)

// ToCSV writes a one-row-per-slide index of the recent list.
func ToCSV(imgs []slides.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Position", "Name", "Bytes", "Size", "Format", "Dimensions"}); err != nil {
		return err
	}

	for i, img := range imgs {
		format, dims := "", ""
		if info, err := slides.Describe(img.Data); err == nil {
			format = info.Format
			dims = fmt.Sprintf("%dx%d", info.Width, info.Height)
		}
		row := []string{
			strconv.Itoa(i),
			img.Name,
			strconv.Itoa(len(img.Data)),
			slides.FormatBytes(len(img.Data)),
			format,
			dims,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

