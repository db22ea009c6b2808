package ladder

import "strings"

const (
	// NoPlayersMessage is rendered for a league without players
	NoPlayersMessage = "No players yet"

	boxInterior = 17
	boxWidth    = boxInterior + 2
)

var boxBorder = strings.Repeat("-", boxWidth)

// Render draws rows as a pyramid of boxes. Each row is centred on the
// widest row, boxes are separated by a single space.
func Render(rows [][]string) string {
	maxWidth := 0
	for _, row := range rows {
		if w := rowWidth(len(row)); w > maxWidth {
			maxWidth = w
		}
	}

	if maxWidth == 0 {
		return NoPlayersMessage
	}

	lines := make([]string, 0, len(rows)*3)
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}

		indent := strings.Repeat(" ", (maxWidth-rowWidth(len(row)))/2)

		borders := make([]string, len(row))
		names := make([]string, len(row))
		for i, name := range row {
			borders[i] = boxBorder
			names[i] = "|" + centre(name) + "|"
		}

		border := indent + strings.Join(borders, " ")
		lines = append(lines, border, indent+strings.Join(names, " "), border)
	}

	return strings.Join(lines, "\n")
}

func rowWidth(n int) int {
	if n == 0 {
		return 0
	}
	return n*boxWidth + n - 1
}

// centre pads name to the box interior, the odd space goes right
func centre(name string) string {
	pad := boxInterior - len(name)
	if pad <= 0 {
		return name
	}

	left := pad / 2
	return strings.Repeat(" ", left) + name + strings.Repeat(" ", pad-left)
}
