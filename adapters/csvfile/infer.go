package csvfile

import (
	"strconv"
	"strings"
	"time"

	"csvlens/domain/table"
)

// dateLayouts are tried in order when a column looks like dates
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	time.RFC3339,
}

// inferDType picks the column type from its raw string values. A column is
// numeric only if every non-empty value parses as a float, boolean only if
// every non-empty value is a true/false literal, datetime only if every
// non-empty value matches a known date layout. Everything else is text, and
// an entirely empty column defaults to text.
func inferDType(raw []string) table.DType {
	allNumeric := true
	allBoolean := true
	allDate := true
	seen := false

	for _, value := range raw {
		if value == "" {
			continue
		}
		seen = true

		if allNumeric {
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				allNumeric = false
			}
		}
		if allBoolean && !isBoolLiteral(value) {
			allBoolean = false
		}
		if allDate && !isDateLiteral(value) {
			allDate = false
		}
		if !allNumeric && !allBoolean && !allDate {
			return table.DTypeText
		}
	}

	switch {
	case !seen:
		return table.DTypeText
	case allBoolean:
		return table.DTypeBoolean
	case allNumeric:
		return table.DTypeNumeric
	case allDate:
		return table.DTypeDatetime
	default:
		return table.DTypeText
	}
}

// parseCell converts one raw value into the column's cell representation;
// empty strings become nil (missing)
func parseCell(value string, dtype table.DType) any {
	if value == "" {
		return nil
	}
	switch dtype {
	case table.DTypeNumeric:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil
		}
		return f
	case table.DTypeBoolean:
		return strings.EqualFold(value, "true")
	case table.DTypeDatetime:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t
			}
		}
		return nil
	default:
		return value
	}
}

func isBoolLiteral(value string) bool {
	return strings.EqualFold(value, "true") || strings.EqualFold(value, "false")
}

func isDateLiteral(value string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}
