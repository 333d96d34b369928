package services

import (
	"fmt"
	"strconv"
	"strings"

	"admin.townguide.app/apps/console/pkg/tabular"
)

// Helpers shared by the three CSV-backed resource services. Imports are
// all-or-nothing: every row is validated first and any error at all blocks
// the whole write.

// indexColumns maps header names to their column position. Comparison is
// case-insensitive; unknown columns are simply ignored.
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	return columns
}

func missingColumns(columns map[string]int, required []string) []string {
	missing := []string{}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}

	return missing
}

func cellValue(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return row[idx]
}

// rowKey labels validation errors with spreadsheet-style line numbers, where
// the header is line 1.
func rowKey(dataRowIndex int) string {
	return fmt.Sprintf("row %d", dataRowIndex+2)
}

func intCell(value int) string {
	return strconv.Itoa(value)
}

func parseSortOrder(value string) (int, error) {
	if value == "" {
		return 0, nil
	}

	return strconv.Atoi(value)
}

func parseBoolCell(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "", "false", "no", "0":
		return false, nil
	case "true", "yes", "1":
		return true, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", value)
	}
}

// parseImportTable runs the shared structural checks: the codec never fails,
// so "header plus at least one data row" is enforced here, before any
// per-row validation.
func parseImportTable(
	text string,
	required []string,
) ([][]string, map[string]int, map[string]string) {
	rows := tabular.Parse(text, 0)

	//nolint:mnd //header + at least one data row
	if len(rows) < 2 {
		return nil, nil, map[string]string{
			"file": "expected a header row and at least one data row",
		}
	}

	columns := indexColumns(rows[0])
	if missing := missingColumns(columns, required); len(missing) > 0 {
		return nil, nil, map[string]string{
			"file": "missing columns: " + strings.Join(missing, ", "),
		}
	}

	return rows[1:], columns, nil
}
