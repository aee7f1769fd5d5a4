package dialect

// RawTable is the tokenized form of one uploaded file: ordered header labels
// and data rows keyed by those labels. It lives only for the duration of one
// import and is discarded once records have been assembled from it.
type RawTable struct {
	Headers []string
	Rows    []Row
}

// Row maps a header label to the raw cell text under it. Cells beyond the
// header width are dropped; missing cells are simply absent.
type Row map[string]string

// Parse detects the file dialect and tokenizes every data row into a
// RawTable.
func Parse(text string) (*RawTable, Dialect, error) {
	d, lines, err := Detect(text)
	if err != nil {
		return nil, Dialect{}, err
	}

	headers := SplitLine(lines[d.HeaderRow], d.Delimiter)
	table := &RawTable{Headers: headers}

	for _, line := range lines[d.DataStart:] {
		cells := SplitLine(line, d.Delimiter)
		row := make(Row, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if _, seen := row[header]; seen {
				// Duplicate header label: first column wins.
				continue
			}
			if i < len(cells) {
				row[header] = cells[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, d, nil
}
