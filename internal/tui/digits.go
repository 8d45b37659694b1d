package tui

import "strings"

// glyphs is a 3x5 block font for the countdown digits.
var glyphs = map[rune][5]string{
	'0': {"###", "# #", "# #", "# #", "###"},
	'1': {"  #", "  #", "  #", "  #", "  #"},
	'2': {"###", "  #", "###", "#  ", "###"},
	'3': {"###", "  #", "###", "  #", "###"},
	'4': {"# #", "# #", "###", "  #", "  #"},
	'5': {"###", "#  ", "###", "  #", "###"},
	'6': {"###", "#  ", "###", "# #", "###"},
	'7': {"###", "  #", "  #", "  #", "  #"},
	'8': {"###", "# #", "###", "# #", "###"},
	'9': {"###", "# #", "###", "  #", "###"},
	':': {" ", "#", " ", "#", " "},
}

// maxScale bounds the display scale factor.
const maxScale = 3

func clampScale(scale int) int {
	if scale < 1 {
		return 1
	}
	if scale > maxScale {
		return maxScale
	}
	return scale
}

// bigDigits renders s (digits and colons) at the given scale. Scale 1 is the
// plain string; larger scales use the block font, widening every cell by the
// scale and repeating rows scale-1 times.
func bigDigits(s string, scale int) string {
	scale = clampScale(scale)
	if scale == 1 {
		return s
	}
	rowRepeat := scale - 1

	var lines []string
	for row := 0; row < 5; row++ {
		var b strings.Builder
		for i, r := range s {
			g, ok := glyphs[r]
			if !ok {
				continue
			}
			if i > 0 {
				b.WriteString(strings.Repeat(" ", scale))
			}
			for _, cell := range g[row] {
				if cell == '#' {
					b.WriteString(strings.Repeat("█", scale))
				} else {
					b.WriteString(strings.Repeat(" ", scale))
				}
			}
		}
		line := b.String()
		for k := 0; k < rowRepeat; k++ {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
