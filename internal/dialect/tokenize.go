package dialect

import "strings"

// SplitLine splits one line into ordered, trimmed cells using the active
// delimiter. Consecutive delimiters are preserved as empty cells so column
// alignment survives sparse rows. Bounding single or double quotes are
// stripped best-effort; embedded delimiters inside quoted fields are not
// supported.
func SplitLine(line string, delimiter rune) []string {
	raw := strings.Split(line, string(delimiter))
	cells := make([]string, len(raw))
	for i, cell := range raw {
		cells[i] = cleanCell(cell)
	}
	return cells
}

func cleanCell(cell string) string {
	cell = strings.TrimSpace(cell)
	if len(cell) >= 2 {
		first, last := cell[0], cell[len(cell)-1]
		if first == last && (first == '"' || first == '\'') {
			cell = strings.TrimSpace(cell[1 : len(cell)-1])
		}
	}
	return cell
}
