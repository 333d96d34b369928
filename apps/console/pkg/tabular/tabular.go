// Package tabular reads and writes the delimited text used by the CSV
// import/export screens. Parsing is deliberately forgiving: the codec never
// fails, it only produces rows. Minimum-row checks belong to the caller.
package tabular

import (
	"strings"
)

// DetectDelimiter inspects only the first line of the input and picks
// whichever of tab or comma occurs more often. Comma is the default when
// counts are equal or both zero.
func DetectDelimiter(text string) rune {
	firstLine := text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		firstLine = text[:idx]
	}

	tabs := strings.Count(firstLine, "\t")
	commas := strings.Count(firstLine, ",")

	if tabs > commas {
		return '\t'
	}

	return ','
}

// Parse splits delimited text into rows of cells. A delimiter of 0 means
// auto-detect via DetectDelimiter. Double-quoted cells may contain the
// delimiter, doubled quotes and literal newlines. Cells are trimmed after
// unescaping and rows whose cells are all empty are dropped.
func Parse(text string, delimiter rune) [][]string {
	if delimiter == 0 {
		delimiter = DetectDelimiter(text)
	}

	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	rows := [][]string{}
	row := []string{}
	var cell strings.Builder
	inQuotes := false

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		switch {
		case inQuotes:
			if c == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					cell.WriteRune('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				cell.WriteRune(c)
			}
		case c == '"':
			inQuotes = true
		case c == delimiter:
			row = append(row, strings.TrimSpace(cell.String()))
			cell.Reset()
		case c == '\n':
			row = append(row, strings.TrimSpace(cell.String()))
			cell.Reset()

			if !isBlankRow(row) {
				rows = append(rows, row)
			}
			row = []string{}
		default:
			cell.WriteRune(c)
		}
	}

	row = append(row, strings.TrimSpace(cell.String()))
	if !isBlankRow(row) {
		rows = append(rows, row)
	}

	return rows
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}

	return true
}

// Serialize writes one header line followed by one comma-delimited line per
// row, fields taken in header order. A field is quote-wrapped only when it
// contains a comma, a double quote or a newline.
func Serialize(rows [][]string, headers []string) string {
	var sb strings.Builder

	writeLine(&sb, headers)
	for _, row := range rows {
		line := make([]string, len(headers))
		for i := range headers {
			if i < len(row) {
				line[i] = row[i]
			}
		}
		writeLine(&sb, line)
	}

	return sb.String()
}

func writeLine(sb *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(escapeCell(cell))
	}
	sb.WriteByte('\n')
}

func escapeCell(cell string) string {
	if !strings.ContainsAny(cell, ",\"\n") {
		return cell
	}

	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
